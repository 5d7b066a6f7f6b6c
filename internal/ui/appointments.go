package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) appointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List appointments, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appts, err := a.client.ListAppointments(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}
			if len(appts) == 0 {
				fmt.Println("No appointments.")
				return nil
			}

			sort.SliceStable(appts, func(i, j int) bool {
				return appts[i].Start.After(appts[j].Start.Time)
			})

			width := termWidth()
			now := time.Now()
			fmt.Println(formatHeader(truncate(fmt.Sprintf("%-4s %-16s %-20s %-16s %-16s %s", "ID", "WHEN", "CUSTOMER", "SERVICE", "BARBER", "PAYMENT"), width)))
			for _, appt := range appts {
				customer, service, barber := "-", "-", "-"
				if appt.Customer != nil {
					customer = appt.Customer.Name
				}
				if appt.Service != nil {
					service = appt.Service.Name
				}
				if appt.Barber != nil {
					barber = appt.Barber.Name
				}
				when := fmt.Sprintf("%s %s", appt.Start.Format("02 Jan"), appt.Start.Format("15:04"))
				line := truncate(fmt.Sprintf("%-4d %-16s %-20s %-16s %-16s ", appt.ID, when, customer, service, barber), width)

				switch {
				case appt.Paid:
					fmt.Println(line + formatFree("paid"))
				case appt.End.Before(now):
					fmt.Println(line + formatDue("due"))
				default:
					fmt.Println(line + formatMuted("upcoming"))
				}
			}
			return nil
		},
	}
}
