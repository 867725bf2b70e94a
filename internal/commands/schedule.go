package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"billkit/internal/domain"
	"billkit/internal/schedule"
)

func newScheduleCommand() *cobra.Command {
	var start string
	var frequency string
	var count int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List upcoming generation dates for a recurrence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("start %q: %w", start, domain.ErrInvalidDate)
			}
			return runSchedule(cmd.OutOrStdout(), startDate, domain.Frequency(frequency), count)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first generation date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	cmd.Flags().StringVar(&frequency, "frequency", string(domain.FrequencyMonthly), "daily, weekly, monthly or yearly")
	cmd.Flags().IntVar(&count, "count", 12, "number of dates to print")

	return cmd
}

func runSchedule(w io.Writer, start time.Time, freq domain.Frequency, count int) error {
	if !freq.Valid() {
		return fmt.Errorf("%q: %w", freq, domain.ErrInvalidFrequency)
	}
	for n := 0; n < count; n++ {
		d, err := schedule.Occurrence(start, freq, n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, d.Format("2006-01-02")); err != nil {
			return err
		}
	}
	return nil
}
