package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hotel_manager/internal/domain"
)

func (h *cli) reservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservation", "res"},
		Short:   "List, create, edit and delete reservations",
	}
	cmd.AddCommand(
		h.reservationsListCmd(),
		h.reservationsCreateCmd(),
		h.reservationsUpdateCmd(),
		h.reservationsDeleteCmd(),
	)
	return cmd
}

func (h *cli) reservationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reservations, latest start date first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := h.q.ListReservations(cmd.Context())
			if err != nil {
				return fail(err)
			}
			if h.asJSON {
				if list == nil {
					list = []domain.ReservationView{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			}
			rows := make([]string, 0, len(list))
			for _, r := range list {
				rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%s", r.ID, r.Start, r.End, r.ClientName, r.RoomNumber, r.HotelCity))
			}
			return printTable(cmd.OutOrStdout(), "ID\tSTART\tEND\tCLIENT\tROOM\tCITY", rows)
		},
	}
}

func (h *cli) reservationsCreateCmd() *cobra.Command {
	var in domain.NewReservation
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Book a room for a client",
		Example: `  hotelctl reservations create --client 1 --room 4 --start 2025-09-01 --end 2025-09-03`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := h.c.CreateReservation(cmd.Context(), in)
			if err != nil {
				return fail(err)
			}
			return h.confirm(cmd.OutOrStdout(), fmt.Sprintf("Reservation #%d confirmed", id), id)
		},
	}
	cmd.Flags().Int64Var(&in.ClientID, "client", 0, "client id")
	cmd.Flags().Int64Var(&in.RoomID, "room", 0, "room id")
	cmd.Flags().StringVar(&in.Start, "start", "", "arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.End, "end", "", "departure date (YYYY-MM-DD)")
	for _, f := range []string{"client", "room", "start", "end"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (h *cli) reservationsUpdateCmd() *cobra.Command {
	var ch domain.ReservationChange
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the dates and room of a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("reservation", args[0])
			if err != nil {
				return err
			}
			ch.ID = id
			if err := h.c.UpdateReservation(cmd.Context(), ch); err != nil {
				return fail(err)
			}
			return h.confirm(cmd.OutOrStdout(), fmt.Sprintf("Reservation #%d updated", id), id)
		},
	}
	cmd.Flags().Int64Var(&ch.RoomID, "room", 0, "room id")
	cmd.Flags().StringVar(&ch.Start, "start", "", "arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ch.End, "end", "", "departure date (YYYY-MM-DD)")
	for _, f := range []string{"room", "start", "end"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (h *cli) reservationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reservation and its room link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("reservation", args[0])
			if err != nil {
				return err
			}
			if err := h.c.DeleteReservation(cmd.Context(), id); err != nil {
				return fail(err)
			}
			return h.confirm(cmd.OutOrStdout(), fmt.Sprintf("Reservation #%d deleted", id), id)
		},
	}
}

func parseID(entity, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, userError(domain.Invalid(fmt.Sprintf("%s id %q must be a positive integer", entity, s)))
	}
	return id, nil
}
