package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/timeline"
	"github.com/spf13/cobra"
)

// parseDayArg resolves an optional YYYY-MM-DD argument, defaulting to
// today.
func parseDayArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", args[0], err)
	}
	return date, nil
}

// loadDay fetches a day's records and reconciles them onto the fixed grid.
func loadDay(ctx context.Context, app *App, date time.Time) ([]domain.TimeBucket, error) {
	buckets := timeline.BuildDay(date, app.Owner)
	records, err := app.Records.FetchRange(ctx, timeline.DayStart(date), timeline.NextDayStart(date))
	if err != nil {
		return nil, err
	}
	return timeline.Reconcile(buckets, records), nil
}

// categoryResolver builds a formatter resolver over the stored legend.
func categoryResolver(ctx context.Context, app *App) (formatter.CategoryResolver, error) {
	cats, err := app.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	return func(id *string) *domain.Category {
		if id == nil {
			return nil
		}
		return byID[*id]
	}, nil
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Print one day's timeline grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDayArg(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			buckets, err := loadDay(ctx, app, date)
			if err != nil {
				return err
			}
			resolve, err := categoryResolver(ctx, app)
			if err != nil {
				return err
			}

			out := formatter.DayHeader(timeline.DayStart(date), false, "") + "\n\n"
			out += formatter.GridRow(buckets, resolve, -1, cellWidth, 0, 0) + "\n"
			out += formatter.HourAxis(buckets, cellWidth, 0, 0) + "\n\n"
			for _, b := range buckets {
				if !b.Empty() {
					out += formatter.BucketDetail(b, resolve) + "\n"
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report [YYYY-MM-DD]",
		Short: "Summarize a day's logged time per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDayArg(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			buckets, err := loadDay(ctx, app, date)
			if err != nil {
				return err
			}
			resolve, err := categoryResolver(ctx, app)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.DayReport(timeline.DayStart(date), buckets, resolve))
			return nil
		},
	}
}
