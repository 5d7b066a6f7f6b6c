package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
)

func (a *App) bookCmd() *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "book <customer-id> <barber-id> <service-id>",
		Short: "Book an appointment at an arbitrary date and time",
		Long: `Book an appointment without going through the agenda grid.

The end time defaults to one hour after the start. Appointments must be
at least one hour long and must end after they start.`,
		Example: `  figaro book 3 1 2 --date=2025-03-12 --start=10:00
  figaro book 3 1 2 --date=2025-03-12 --start=10:00 --end=12:00`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}
			barberID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid barber id %q", args[1])
			}
			serviceID, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid service id %q", args[2])
			}

			day, err := time.ParseInLocation("2006-01-02", date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}
			startMin, err := parseClock(start)
			if err != nil {
				return err
			}
			endMin := startMin + int(schedule.MinAppointmentDuration.Minutes())
			if end != "" {
				endMin, err = parseClock(end)
				if err != nil {
					return err
				}
			}
			if endMin <= startMin {
				return fmt.Errorf("end %q must be after start %q", end, start)
			}
			if endMin-startMin < int(schedule.MinAppointmentDuration.Minutes()) {
				return fmt.Errorf("appointments must be at least %d minutes long", int(schedule.MinAppointmentDuration.Minutes()))
			}

			startAt := day.Add(time.Duration(startMin) * time.Minute)
			endAt := day.Add(time.Duration(endMin) * time.Minute)

			appt, err := a.client.CreateAppointment(cmd.Context(), api.CreateAppointmentRequest{
				CustomerID: customerID,
				BarberID:   barberID,
				ServiceID:  serviceID,
				Start:      api.NewLocalTime(startAt),
				End:        api.NewLocalTime(endAt),
			})
			if err != nil {
				if api.IsConflict(err) {
					return errors.New(api.UserMessage(err))
				}
				return fmt.Errorf("booking: %w", err)
			}

			fmt.Printf("Booked appointment #%d: %s %s-%s\n",
				appt.ID,
				schedule.ISODate(day),
				schedule.MinutesToTime(startMin),
				schedule.MinutesToTime(endMin),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Appointment day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, defaults to one hour after start)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("start")
	return cmd
}
