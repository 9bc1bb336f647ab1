package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zmz-dd/kids-vocab-learning/internal/adapter/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/app"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/config"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// timeCmd controls the persisted logical-clock offset. A running server picks
// the offset up at its next start; the HTTP API changes it live.
var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Inspect or shift the engine's logical clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		offsetFlag, _ := cmd.Flags().GetString("offset")
		dateFlag, _ := cmd.Flags().GetString("date")
		reset, _ := cmd.Flags().GetBool("reset")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		store, cleanup, err := app.NewStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer cleanup()

		clk := clock.NewSimulated()
		timeUC := usecase.NewTimeUsecase(clk, repository.NewTimeOffsetRepository(store))
		ctx := cmd.Context()
		if err := timeUC.Restore(ctx); err != nil {
			return fmt.Errorf("restore offset: %w", err)
		}

		var status *usecase.TimeStatus
		switch {
		case reset:
			status, err = timeUC.Reset(ctx)
		case offsetFlag != "":
			var offset time.Duration
			if offset, err = time.ParseDuration(offsetFlag); err != nil {
				return fmt.Errorf("parse offset: %w", err)
			}
			status, err = timeUC.SetOffset(ctx, offset)
		case dateFlag != "":
			var target time.Time
			if target, err = time.ParseInLocation("2006-01-02", dateFlag, time.Local); err != nil {
				return fmt.Errorf("parse date: %w", err)
			}
			status, err = timeUC.Travel(ctx, target)
		default:
			status, err = timeUC.Status(ctx)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "now: %s\noffset: %s\nsimulated: %v\n",
			status.Now.Format(time.RFC3339), status.Offset, status.Simulated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)

	timeCmd.Flags().String("offset", "", "shift the clock by a duration, e.g. 72h")
	timeCmd.Flags().String("date", "", "travel to a date (YYYY-MM-DD, local midnight)")
	timeCmd.Flags().Bool("reset", false, "return the clock to real time")
}
