package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) barbersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "barbers",
		Short: "List registered barbers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			barbers, err := a.client.ListBarbers(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing barbers: %w", err)
			}
			if len(barbers) == 0 {
				fmt.Println("No barbers registered.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%-4s %-24s %-20s %-14s %s", "ID", "NAME", "SPECIALTY", "PHONE", "STATUS")))
			for _, b := range barbers {
				line := fmt.Sprintf("%-4d %-24s %-20s %-14s ", b.ID, b.Name, b.Specialty, b.Phone)
				if b.Active {
					fmt.Println(line + formatFree("active"))
				} else {
					fmt.Println(formatMuted(line + "inactive"))
				}
			}
			return nil
		},
	}
}

func (a *App) customersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List registered customers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			customers, err := a.client.ListCustomers(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}
			if len(customers) == 0 {
				fmt.Println("No customers registered.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%-4s %-24s %-16s %s", "ID", "NAME", "DOCUMENT", "PHONE")))
			for _, c := range customers {
				fmt.Printf("%-4d %-24s %-16s %s\n", c.ID, c.Name, c.Document, c.Phone)
			}
			return nil
		},
	}
}

func (a *App) servicesCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services and prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := a.client.ListServices(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing services: %w", err)
			}

			fmt.Println(formatHeader(fmt.Sprintf("%-4s %-28s %10s  %s", "ID", "NAME", "PRICE", "STATUS")))
			shown := 0
			for _, s := range services {
				if !s.Active && !showAll {
					continue
				}
				shown++
				line := fmt.Sprintf("%-4d %-28s %10.2f  ", s.ID, s.Name, s.Price)
				if s.Active {
					fmt.Println(line + formatFree("active"))
				} else {
					fmt.Println(formatMuted(line + "inactive"))
				}
			}
			if shown == 0 {
				fmt.Println("No services found.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include deactivated services")
	return cmd
}
