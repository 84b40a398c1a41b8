package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-contacts-app/internal/service"
	"go-contacts-app/internal/validate"
)

func newUpsertCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upsert <name> <phone_number> <email>",
		Short: "Create a contact, or update the one already holding the phone number",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, phone, email := args[0], args[1], args[2]

			// the CLI plays the client role, so the full schema applies here,
			// AU/NZ prefix included
			if verr := validate.ContactForm(name, phone, email); verr != nil {
				for field, msgs := range verr.Fields {
					for _, m := range msgs {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, m)
					}
				}
				return fmt.Errorf("invalid input")
			}

			env, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.cleanup()

			in := service.ContactInput{Name: name, PhoneNumber: phone, Email: email}
			existing, err := env.svc.GetByPhone(cmd.Context(), phone)
			if err != nil {
				return fmt.Errorf("upserting contact: %w", err)
			}

			if existing != nil {
				updated, err := env.svc.Update(cmd.Context(), existing, in)
				if err != nil {
					return fmt.Errorf("upserting contact: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Contact %s updated successfully!\n", updated.Name)
				return nil
			}

			created, err := env.svc.Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("upserting contact: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact %s created successfully!\n", created.Name)
			return nil
		},
	}
}
