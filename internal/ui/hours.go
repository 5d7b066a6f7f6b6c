package ui

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
)

// parseClock parses a wall-clock argument and returns minutes of day.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// hoursFile is the TOML document accepted by "hours apply".
type hoursFile struct {
	BarberID int64 `toml:"barber_id"`
	Hours    []struct {
		Weekday int    `toml:"weekday"` // 1=Monday .. 7=Sunday
		Start   string `toml:"start"`   // "HH:MM"
		End     string `toml:"end"`     // "HH:MM"
	} `toml:"hours"`
}

func (a *App) hoursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Manage barber availability",
	}
	cmd.AddCommand(a.hoursShowCmd())
	cmd.AddCommand(a.hoursAddCmd())
	cmd.AddCommand(a.hoursApplyCmd())
	return cmd
}

func (a *App) hoursShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <barber-id>",
		Short: "Print a barber's weekly availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barberID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid barber id %q", args[0])
			}

			hours, err := a.client.BarberHours(cmd.Context(), barberID)
			if err != nil {
				return fmt.Errorf("loading availability: %w", err)
			}
			if len(hours) == 0 {
				fmt.Println("No availability configured.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("Availability for barber %d", barberID)))
			for _, h := range hours {
				fmt.Printf("  %-9s %s-%s\n", schedule.WeekdayName(h.Weekday-1), h.Start, h.End)
			}
			return nil
		},
	}
}

func (a *App) hoursAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <barber-id> <weekday> <start> <end>",
		Short: "Add one weekly availability window for a barber",
		Example: `  figaro hours add 1 1 09:00 18:00
  figaro hours add 1 6 10:00 14:00`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			barberID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid barber id %q", args[0])
			}
			weekday, err := strconv.Atoi(args[1])
			if err != nil || weekday < 1 || weekday > 7 {
				return fmt.Errorf("weekday %q out of range 1-7", args[1])
			}
			startMin, err := parseClock(args[2])
			if err != nil {
				return err
			}
			endMin, err := parseClock(args[3])
			if err != nil {
				return err
			}
			if startMin >= endMin {
				return fmt.Errorf("start %q must be before end %q", args[2], args[3])
			}

			added, err := a.client.AddWorkingHours(cmd.Context(), barberID, api.WorkingHours{
				Weekday: weekday,
				Start:   args[2],
				End:     args[3],
			})
			if err != nil {
				return fmt.Errorf("adding availability: %w", err)
			}

			fmt.Printf("Added %s %s-%s for barber %d\n", schedule.WeekdayName(added.Weekday-1), added.Start, added.End, barberID)
			return nil
		},
	}
}

func (a *App) hoursApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file.toml>",
		Short: "Replace a barber's weekly availability from a TOML file",
		Long: `Replace a barber's full weekly availability with the windows in a
TOML file.

The file names the barber and one [[hours]] block per weekday window:

  barber_id = 1

  [[hours]]
  weekday = 1        # 1=Monday .. 7=Sunday
  start = "09:00"
  end = "18:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var file hoursFile
			if err := toml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			if file.BarberID <= 0 {
				return fmt.Errorf("barber_id must be set")
			}

			update := api.AvailabilityUpdate{BarberID: file.BarberID}
			for i, h := range file.Hours {
				if h.Weekday < 1 || h.Weekday > 7 {
					return fmt.Errorf("hours[%d]: weekday %d out of range 1-7", i, h.Weekday)
				}
				startMin, err := parseClock(h.Start)
				if err != nil {
					return fmt.Errorf("hours[%d]: %w", i, err)
				}
				endMin, err := parseClock(h.End)
				if err != nil {
					return fmt.Errorf("hours[%d]: %w", i, err)
				}
				if startMin >= endMin {
					return fmt.Errorf("hours[%d]: start %q must be before end %q", i, h.Start, h.End)
				}
				update.Hours = append(update.Hours, api.WorkingHours{
					Weekday: h.Weekday,
					Start:   h.Start,
					End:     h.End,
				})
			}

			if err := a.client.SetAvailability(cmd.Context(), update); err != nil {
				return fmt.Errorf("applying availability: %w", err)
			}

			fmt.Printf("Applied %d availability windows for barber %d\n", len(update.Hours), file.BarberID)
			return nil
		},
	}
}
