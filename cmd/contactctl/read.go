package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReadCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id|phone_number>",
		Short: "Display a single contact",
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

			fmt.Fprintln(cmd.OutOrStdout(), "Contact Details:")
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\t%d\n", c.ID)
			fmt.Fprintf(w, "Name\t%s\n", c.Name)
			fmt.Fprintf(w, "Phone Number\t%s\n", c.PhoneNumber)
			fmt.Fprintf(w, "Email\t%s\n", c.Email)
			fmt.Fprintf(w, "Created At\t%s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "Updated At\t%s\n", c.UpdatedAt.Format("2006-01-02 15:04:05"))
			return w.Flush()
		},
	}
}
