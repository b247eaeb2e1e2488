package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh [TICKER...]",
	Short: "Clear the cache and optionally re-warm it for tickers",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	if err := fetch.ClearCache(); err != nil {
		return err
	}
	fmt.Println("Cache cleared")

	if len(args) > 0 {
		fetch.WarmTickers(args)
		fmt.Printf("Re-fetched %d ticker(s)\n", len(args))
	}
	return nil
}
