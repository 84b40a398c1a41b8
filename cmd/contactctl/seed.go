package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-contacts-app/internal/service"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed a few AU/NZ sample contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.cleanup()

			seeds := []service.ContactInput{
				{Name: "Alice Johnson", PhoneNumber: "+61412345678", Email: "alice.johnson@example.com"},
				{Name: "Bob Williams", PhoneNumber: "+64219876543", Email: "bob.williams@company.net"},
				{Name: "Charlie Brown", PhoneNumber: "+61298765432", Email: "charlie@domain.org"},
			}

			for _, in := range seeds {
				if _, err := env.svc.Create(cmd.Context(), in); err != nil {
					return fmt.Errorf("seeding %s: %w", in.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created contact: %s\n", in.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d contacts seeded successfully!\n", len(seeds))
			return nil
		},
	}
}
