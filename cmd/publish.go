package cmd

import (
	"context"
	"fmt"
	"time"

	"autopostr/internal/publish"

	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <markdown_path>",
	Short: "Publish an exported markdown file through the publishing API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		cli, err := newPublisher(cfg)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		mdPath := args[0]
		id, err := publish.PublishMarkdownFile(ctx, cli, mdPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %s as %s\n", mdPath, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
