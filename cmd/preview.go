package cmd

import (
	"fmt"

	"autopostr/internal/markdown"
	"autopostr/internal/model"
	"autopostr/internal/preview"

	"github.com/spf13/cobra"
)

var (
	previewPlatforms []string
	previewOut       string
)

// previewCmd groups platform preview subcommands.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fit captions and images to social platforms",
}

var previewImageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Resize an image to each platform canvas and save it as WebP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := previewOut
		if out == "" {
			out = cfg.Preview.OutputDir
		}
		paths, err := preview.Render(args[0], out, previewPlatforms, cfg.Preview.WebPQuality)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

var previewCaptionCmd = &cobra.Command{
	Use:   "caption <export.md>",
	Short: "Show how an exported caption fits each platform",
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
		for _, platform := range previewPlatforms {
			p := preview.Caption(platform, doc.Caption(), meta.Hashtags)
			flag := ""
			if p.Truncated {
				flag = " (truncated)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "== %s%s ==\n%s\n\n", p.Platform, flag, p.Caption)
		}
		return nil
	},
}

func init() {
	previewCmd.PersistentFlags().StringSliceVar(&previewPlatforms, "platform", model.Platforms, "target platforms")
	previewImageCmd.Flags().StringVar(&previewOut, "out", "", "output directory (default: preview.output_dir)")
	previewCmd.AddCommand(previewImageCmd, previewCaptionCmd)
	rootCmd.AddCommand(previewCmd)
}
