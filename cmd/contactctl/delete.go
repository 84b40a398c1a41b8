package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|phone_number>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.cleanup()

			c, err := env.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			if err := env.svc.Delete(cmd.Context(), c); err != nil {
				return fmt.Errorf("deleting contact: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact '%s' (ID: %d) deleted successfully!\n", c.Name, c.ID)
			return nil
		},
	}
}
