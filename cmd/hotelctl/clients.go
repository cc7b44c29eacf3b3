package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotel_manager/internal/domain"
)

func (h *cli) clientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "List, add and delete clients",
	}
	cmd.AddCommand(h.clientsListCmd(), h.clientsCreateCmd(), h.clientsDeleteCmd())
	return cmd
}

func (h *cli) clientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := h.q.ListClients(cmd.Context())
			if err != nil {
				return fail(err)
			}
			if h.asJSON {
				if list == nil {
					list = []domain.Client{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			}
			rows := make([]string, 0, len(list))
			for _, c := range list {
				rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%s\t%s", c.ID, c.Name, c.Address, c.City, c.PostalCode, c.Email, c.Phone))
			}
			return printTable(cmd.OutOrStdout(), "ID\tNAME\tADDRESS\tCITY\tPOSTAL\tEMAIL\tPHONE", rows)
		},
	}
}

func (h *cli) clientsCreateCmd() *cobra.Command {
	var in domain.NewClient
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a client; every field is required",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := h.c.CreateClient(cmd.Context(), in)
			if err != nil {
				return fail(err)
			}
			return h.confirm(cmd.OutOrStdout(), fmt.Sprintf("Client %s added with id %d", in.Name, id), id)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Address, "address", "", "street address")
	cmd.Flags().StringVar(&in.City, "city", "", "city")
	cmd.Flags().IntVar(&in.PostalCode, "postal-code", 0, "postal code")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	return cmd
}

func (h *cli) clientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client without reservations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client", args[0])
			if err != nil {
				return err
			}
			if err := h.c.DeleteClient(cmd.Context(), id); err != nil {
				return fail(err)
			}
			return h.confirm(cmd.OutOrStdout(), fmt.Sprintf("Client %d deleted", id), id)
		},
	}
}
