package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"autopostr/internal/content"
	"autopostr/internal/export"
	"autopostr/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	genBrand     string
	genBrandFile string
	genTone      string
	genExport    bool
	genSave      bool
	genJSON      bool
)

// generateCmd produces captions, hashtags and CTAs for a campaign description.
var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate captions, hashtags and calls-to-action",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		description := strings.Join(args, " ")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// reject bad input before touching redis or the moderation API
		if err := content.Validate(description); err != nil {
			return err
		}
		brand, err := resolveBrand(ctx, cfg, genBrand, genBrandFile)
		if err != nil {
			return err
		}
		if err := newModerator(cfg).Check(ctx, description); err != nil {
			return err
		}
		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		gc, err := gen.Generate(ctx, description, brand)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if genJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(gc); err != nil {
				return err
			}
		} else {
			printContent(cmd, gc, genTone)
		}

		brandName := ""
		if brand != nil {
			brandName = brand.Name
		}
		if genSave {
			store, rdb, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer rdb.Close()
			entry := model.HistoryEntry{Description: description, BrandName: brandName, Content: *gc}
			if err := store.AddHistory(ctx, entry, cfg.Generator.HistoryLimit); err != nil {
				return err
			}
			slog.Info("generate: saved to history")
		}
		if genExport {
			now := time.Now()
			id := uuid.NewString()
			tones := []model.ToneType{model.ToneFormal, model.ToneCasual, model.ToneFunny}
			if genTone != "" {
				tones = []model.ToneType{model.ParseToneType(genTone)}
			}
			for _, t := range tones {
				d := export.FromContent(gc, t, description, brandName, cfg.Export.TitleTemplate, now, id)
				path, err := export.WriteFile(cfg.Export.OutputDir, d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %s\n", path)
			}
		}
		return nil
	},
}

func printContent(cmd *cobra.Command, gc *model.GeneratedContent, tone string) {
	out := cmd.OutOrStdout()
	tones := []model.ToneType{model.ToneFormal, model.ToneCasual, model.ToneFunny}
	if tone != "" {
		tones = []model.ToneType{model.ParseToneType(tone)}
	}
	for _, t := range tones {
		fmt.Fprintf(out, "== %s ==\n%s\n", t, gc.Caption(t))
		if cta := gc.CTA(t); cta != "" {
			fmt.Fprintf(out, "CTA: %s\n", cta)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Hashtags: %s\n", strings.Join(gc.Hashtags, " "))
}

func init() {
	generateCmd.Flags().StringVar(&genBrand, "brand", "", "stored brand profile name")
	generateCmd.Flags().StringVar(&genBrandFile, "brand-file", "", "brand profile YAML file")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "only show one register: formal, casual or funny")
	generateCmd.Flags().BoolVar(&genExport, "export", false, "write Markdown files to export.output_dir")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "record the generation in history")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "print JSON instead of text")
	rootCmd.AddCommand(generateCmd)
}
