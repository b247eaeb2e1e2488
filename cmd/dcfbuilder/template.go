package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aristath/dcf-builder/internal/workbook"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty pre-formatted model template",
	Args:  cobra.NoArgs,
	RunE:  runTemplate,
}

var templateOutput string

func init() {
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output path (default dcf_model_template.xlsx)")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path, err := workbook.WriteBaseTemplate(templateOutput)
	if err != nil {
		return err
	}
	fmt.Printf("Template written to %s\n", path)
	return nil
}
