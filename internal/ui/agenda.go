package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/figaro/internal/schedule"
)

func (a *App) agendaCmd() *cobra.Command {
	var date, week string

	cmd := &cobra.Command{
		Use:   "agenda <barber-id>",
		Short: "Print a barber's agenda for one day or one week",
		Long: `Print a barber's slot grid.

By default the grid covers today. --date picks another single day;
--week prints all seven days of the week containing the given date,
anchored to its Monday.`,
		Example: `  figaro agenda 1
  figaro agenda 1 --date=2025-03-12
  figaro agenda 1 --week=2025-03-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barberID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid barber id %q", args[0])
			}
			if date != "" && week != "" {
				return fmt.Errorf("--date and --week are mutually exclusive")
			}

			if week != "" {
				anchor, err := time.ParseInLocation("2006-01-02", week, time.Local)
				if err != nil {
					return fmt.Errorf("invalid week %q, want YYYY-MM-DD", week)
				}
				w := schedule.NewWeek(anchor)
				fmt.Println(formatHeader(fmt.Sprintf("Agenda for barber %d, week of %s", barberID, schedule.ISODate(w.Start))))
				for i, day := range w.Days() {
					fmt.Printf("\n%s %s\n", schedule.WeekdayName(i), schedule.ISODate(day))
					if err := a.printDayGrid(cmd.Context(), barberID, day); err != nil {
						return err
					}
				}
				return nil
			}

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}
			fmt.Println(formatHeader(fmt.Sprintf("Agenda for barber %d, %s", barberID, schedule.ISODate(day))))
			return a.printDayGrid(cmd.Context(), barberID, day)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&week, "week", "", "Show the whole week containing this date (YYYY-MM-DD)")
	return cmd
}

// printDayGrid fetches one day of a barber's agenda and prints its slot grid.
func (a *App) printDayGrid(ctx context.Context, barberID int64, day time.Time) error {
	iso := schedule.ISODate(day)
	appts, err := a.client.DayAgenda(ctx, barberID, iso)
	if err != nil {
		return fmt.Errorf("loading agenda for %s: %w", iso, err)
	}

	intervals := make([]schedule.Interval, 0, len(appts))
	for _, appt := range appts {
		intervals = append(intervals, schedule.Interval{Start: appt.Start.Time, End: appt.End.Time})
	}

	slots := schedule.BuildSlots(a.config.Schedule.DayStart, a.config.Schedule.DayEnd, a.config.Schedule.SlotMinutes)
	for _, state := range schedule.Classify(slots, intervals) {
		if state.Occupied {
			fmt.Printf("  %s  %s\n", state.Label, formatBooked("booked"))
		} else {
			fmt.Printf("  %s  %s\n", state.Label, formatFree("free"))
		}
	}
	return nil
}
