package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aristath/dcf-builder/internal/database"
	"github.com/aristath/dcf-builder/internal/database/repositories"
)

var historyCmd = &cobra.Command{
	Use:   "history [TICKER]",
	Short: "List recent workbook generation runs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	repo := repositories.NewRunRepository(db.Conn(), log)

	var runs []repositories.ModelRun
	if len(args) == 1 {
		runs, err = repo.ByTicker(args[0], historyLimit)
	} else {
		runs, err = repo.Recent(historyLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-20s %-8s %-8s %10s %8s %10s  %s\n",
		"DATE", "TICKER", "CASE", "PRICE", "WACC", "DCF", "OUTPUT")
	for _, run := range runs {
		fmt.Printf("%-20s %-8s %-8s %10s %8s %10s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Ticker,
			run.Scenario,
			formatOptional(run.Price, "$%.2f"),
			formatOptional(run.WACC, "%.2f%%", 100),
			formatOptional(run.DCFValue, "$%.2f"),
			run.OutputPath,
		)
	}
	return nil
}

// formatOptional renders a nullable metric, scaling it first when a
// multiplier is given.
func formatOptional(value *float64, format string, scale ...float64) string {
	if value == nil {
		return "n/a"
	}
	v := *value
	if len(scale) == 1 {
		v *= scale[0]
	}
	return fmt.Sprintf(format, v)
}
