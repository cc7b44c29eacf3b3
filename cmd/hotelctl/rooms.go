package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hotel_manager/internal/domain"
)

func (h *cli) roomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rooms",
		Aliases: []string{"room"},
		Short:   "Browse rooms and search availability",
	}
	cmd.AddCommand(h.roomsListCmd(), h.roomsAvailableCmd())
	return cmd
}

func (h *cli) roomsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every room with its hotel and type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := h.q.ListRooms(cmd.Context())
			if err != nil {
				return fail(err)
			}
			return h.printRooms(cmd.OutOrStdout(), rooms)
		},
	}
}

func (h *cli) roomsAvailableCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:     "available",
		Short:   "List rooms free for a date range",
		Example: `  hotelctl rooms available --start 2025-05-27 --end 2025-05-28`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := h.q.FindAvailableRooms(cmd.Context(), start, end)
			if err != nil {
				return fail(err)
			}
			if len(rooms) == 0 && !h.asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No room available for these dates")
				return err
			}
			return h.printRooms(cmd.OutOrStdout(), rooms)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "departure date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func (h *cli) printRooms(w io.Writer, rooms []domain.RoomView) error {
	if h.asJSON {
		if rooms == nil {
			rooms = []domain.RoomView{}
		}
		return printJSON(w, rooms)
	}
	rows := make([]string, 0, len(rooms))
	for _, r := range rooms {
		sea := "no"
		if r.SeaView {
			sea = "yes"
		}
		rows = append(rows, fmt.Sprintf("%d\t%d\t%d\t%s\t%s\t%s\t%.2f", r.ID, r.Number, r.Floor, sea, r.HotelCity, r.TypeLabel, r.BasePrice))
	}
	return printTable(w, "ID\tNUMBER\tFLOOR\tSEA VIEW\tCITY\tTYPE\tPRICE", rows)
}
