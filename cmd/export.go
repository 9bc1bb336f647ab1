package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zmz-dd/kids-vocab-learning/internal/adapter/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/app"
	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/config"
)

// userSnapshot is the export document: everything the engine stores for one
// user, in one self-contained JSON file.
type userSnapshot struct {
	UserID   string               `json:"user_id"`
	Plan     *entity.PlanSettings `json:"plan,omitempty"`
	DayState *entity.PlanDayState `json:"day_state,omitempty"`
	Progress entity.ProgressMap   `json:"progress"`
	History  []*entity.TestRecord `json:"history"`
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one user's progress snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		output, _ := cmd.Flags().GetString("output")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		store, cleanup, err := app.NewStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer cleanup()

		ctx := cmd.Context()
		plans := repository.NewPlanRepository(store)
		snapshot := userSnapshot{UserID: userID}

		if snapshot.Plan, err = plans.GetSettings(ctx, userID); err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if snapshot.DayState, err = plans.GetDayState(ctx, userID); err != nil {
			return fmt.Errorf("load day state: %w", err)
		}
		if snapshot.Progress, err = repository.NewProgressRepository(store).Load(ctx, userID); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if snapshot.History, err = repository.NewHistoryRepository(store).List(ctx, userID); err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		writer := cmd.OutOrStdout()
		if output != "" && output != "-" {
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer file.Close()
			writer = file
		}

		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("user", "", "user id to export")
	exportCmd.Flags().String("output", "", "output file, - or empty for stdout")
}
