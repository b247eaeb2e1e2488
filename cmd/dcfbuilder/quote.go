package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price TICKER",
	Short: "Print the current price for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrice,
}

var infoCmd = &cobra.Command{
	Use:   "info TICKER",
	Short: "Print the market snapshot for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(infoCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	price, err := fetch.Price(args[0])
	if err != nil {
		return err
	}
	if price == nil {
		return fmt.Errorf("no price available for %s", args[0])
	}
	fmt.Printf("%s: $%.2f\n", args[0], *price)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	ticker := args[0]
	info, err := fetch.StockInfo(ticker)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", info.DisplayName(ticker))
	printOptional("Price", info.Price, "$%.2f")
	printOptionalMillions("Market Cap", info.MarketCap)
	printOptional("Beta", info.Beta, "%.2f")
	printOptionalMillions("Shares Outstanding", info.SharesOutstanding)
	printOptional("52-Week High", info.FiftyTwoWeekHigh, "$%.2f")
	printOptional("52-Week Low", info.FiftyTwoWeekLow, "$%.2f")
	printOptionalMillions("Enterprise Value", info.EnterpriseValue)
	printOptional("Trailing P/E", info.TrailingPE, "%.1fx")
	printOptional("Forward P/E", info.ForwardPE, "%.1fx")
	if info.Sector != nil {
		fmt.Printf("  %-20s %s\n", "Sector", *info.Sector)
	}
	if info.Industry != nil {
		fmt.Printf("  %-20s %s\n", "Industry", *info.Industry)
	}

	if wacc, err := fetch.WACC(ticker); err == nil && wacc != nil {
		fmt.Printf("  %-20s %.2f%%\n", "WACC", *wacc*100)
	}
	fmt.Printf("  %-20s %.2f%%\n", "Risk-Free Rate", fetch.RiskFreeRate()*100)
	return nil
}

func printOptional(label string, value *float64, format string) {
	if value == nil {
		fmt.Printf("  %-20s n/a\n", label)
		return
	}
	fmt.Printf("  %-20s "+format+"\n", label, *value)
}

func printOptionalMillions(label string, value *float64) {
	if value == nil {
		fmt.Printf("  %-20s n/a\n", label)
		return
	}
	fmt.Printf("  %-20s %.1fM\n", label, *value/1e6)
}
