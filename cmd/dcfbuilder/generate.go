package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aristath/dcf-builder/internal/database"
	"github.com/aristath/dcf-builder/internal/database/repositories"
	"github.com/aristath/dcf-builder/internal/workbook"
	"github.com/aristath/dcf-builder/pkg/formulas"
)

var generateCmd = &cobra.Command{
	Use:   "generate TICKER",
	Short: "Generate a DCF model workbook for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var (
	generateOutput   string
	generateScenario string
	generateNoRecord bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path (default DCF_{TICKER}_{date}.xlsx)")
	generateCmd.Flags().StringVarP(&generateScenario, "scenario", "s", "base", "Scenario: bull, base or bear")
	generateCmd.Flags().BoolVar(&generateNoRecord, "no-record", false, "Skip recording the run in history")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ticker := args[0]
	scenario := formulas.ScenarioByName(generateScenario)

	builder := workbook.New(ticker, scenario, fetch, cfg, log)
	path, err := builder.Generate(generateOutput)
	if err != nil {
		return err
	}

	summary := builder.Summary()
	inputs := builder.Inputs()

	if !generateNoRecord {
		recordRun(ticker, scenario.Name, path, inputs.WACC, summary.ValuePerShare)
	}

	fmt.Printf("Workbook written to %s\n", path)
	fmt.Printf("  Scenario:         %s\n", scenario.Name)
	fmt.Printf("  WACC:             %.2f%%\n", inputs.WACC*100)
	fmt.Printf("  Value per share:  $%.2f\n", summary.ValuePerShare)
	fmt.Printf("  Risk-free rate:   %.2f%%\n", fetch.RiskFreeRate()*100)
	return nil
}

// recordRun appends the run to the history database. History is best
// effort; a failure never fails the generation.
func recordRun(ticker, scenario, path string, wacc, value float64) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open history database")
		return
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Warn().Err(err).Msg("Failed to migrate history database")
		return
	}

	repo := repositories.NewRunRepository(db.Conn(), log)
	run := &repositories.ModelRun{
		Ticker:     ticker,
		Scenario:   scenario,
		OutputPath: path,
		WACC:       &wacc,
		DCFValue:   &value,
	}
	if price, err := fetch.Price(ticker); err == nil {
		run.Price = price
	}
	if _, err := repo.Record(run); err != nil {
		log.Warn().Err(err).Msg("Failed to record run")
	}
}
