package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show reservation, client and room counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := h.q.Stats(cmd.Context())
			if err != nil {
				return fail(err)
			}
			if h.asJSON {
				return printJSON(cmd.OutOrStdout(), st)
			}
			return printTable(cmd.OutOrStdout(), "RESERVATIONS\tCLIENTS\tROOMS", []string{
				fmt.Sprintf("%d\t%d\t%d", st.Reservations, st.Clients, st.Rooms),
			})
		},
	}
}
