package cmd

import (
	"fmt"
	"os"
	"strings"

	"autopostr/internal/markdown"

	"github.com/spf13/cobra"
)

var debugParseCmd = &cobra.Command{
	Use:   "debug-parse <markdown_path>",
	Short: "Debug: parse an exported markdown and print its header and caption",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := markdown.ParseFile(args[0])
		if err != nil {
			return err
		}
		meta, err := doc.Meta()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "title: %s\n", meta.Title)
		fmt.Fprintf(os.Stdout, "tone: %s\n", meta.Tone)
		fmt.Fprintf(os.Stdout, "datetime: %s\n", meta.Datetime)
		fmt.Fprintf(os.Stdout, "hashtags: %s\n", strings.Join(meta.Hashtags, " "))
		fmt.Fprintf(os.Stdout, "caption chars: %d\n", len([]rune(doc.Caption())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugParseCmd)
}
