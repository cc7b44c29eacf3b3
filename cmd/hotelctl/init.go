package main

import (
	"github.com/spf13/cobra"
)

func (h *cli) initCmd() *cobra.Command {
	var empty bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the store and load the sample data",
		Long: `init creates the six tables and inserts the sample hotels, rooms, clients
and reservations. It does nothing when the store already has tables.

With --empty only the tables are created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if empty {
				if err := h.store.CreateSchema(ctx); err != nil {
					return fail(err)
				}
				return h.confirm(cmd.OutOrStdout(), "Database schema created", 0)
			}
			created, err := h.c.InitializeStore(ctx)
			if err != nil {
				return fail(err)
			}
			if !created {
				return h.confirm(cmd.OutOrStdout(), "Database already initialized", 0)
			}
			return h.confirm(cmd.OutOrStdout(), "Database created with sample data", 0)
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "create tables without sample data")
	return cmd
}
