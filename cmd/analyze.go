package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"autopostr/internal/content"

	"github.com/spf13/cobra"
)

var (
	analyzeBrand     string
	analyzeBrandFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Show extracted entities, tone, keywords and hashtags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		if err := content.Validate(description); err != nil {
			return err
		}
		brand, err := resolveBrand(context.Background(), GetConfig(), analyzeBrand, analyzeBrandFile)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(content.Analyze(description, brand))
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeBrand, "brand", "", "stored brand profile name")
	analyzeCmd.Flags().StringVar(&analyzeBrandFile, "brand-file", "", "brand profile YAML file")
	rootCmd.AddCommand(analyzeCmd)
}
