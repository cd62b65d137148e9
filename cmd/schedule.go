package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autopostr/internal/markdown"
	"autopostr/internal/model"
	"autopostr/internal/schedule"

	"github.com/spf13/cobra"
)

var (
	schedAt        string
	schedPlatforms []string
	schedRepeat    string
	schedCount     int
	schedDays      int
	suggestN       int
	suggestPlat    string

	editAt        string
	editTitle     string
	editCaption   string
	editPlatforms []string
	editRepeat    string
)

// scheduleCmd groups post scheduling subcommands.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule exported posts",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <export.md>",
	Short: "Queue an exported post for publishing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if schedAt == "" {
			return errors.New("--at is required (YYYY-MM-DD HH:MM)")
		}
		at, err := parseLocalTime(schedAt)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		for _, p := range schedPlatforms {
			if !model.IsPlatform(p) {
				return fmt.Errorf("unknown platform %q (want one of %s)", p, strings.Join(model.Platforms, ", "))
			}
		}
		f, err := schedule.ParseFrequency(schedRepeat)
		if err != nil {
			return err
		}
		doc, err := markdown.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("read markdown: %w", err)
		}
		meta, err := doc.Meta()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		tmpl := model.ScheduledPost{
			Title:       meta.Title,
			Caption:     doc.Caption(),
			Hashtags:    meta.Hashtags,
			Platforms:   schedPlatforms,
			ScheduledAt: at.UTC(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		for _, p := range schedule.Expand(tmpl, f, schedCount) {
			if err := store.SchedulePost(ctx, &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s at %s\n", p.ID, p.ScheduledAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled posts for the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		var to time.Time
		if schedDays > 0 {
			to = time.Now().AddDate(0, 0, schedDays)
		}
		posts, err := store.ListPosts(ctx, time.Time{}, to)
		if err != nil {
			return err
		}
		for _, p := range posts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%-9s\t%s\t%s\n",
				p.ScheduledAt.Local().Format("2006-01-02 15:04"),
				p.ID, p.Status, strings.Join(p.Platforms, ","), p.Title)
		}
		return nil
	},
}

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a scheduled post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		if err := store.DeletePost(ctx, args[0]); err != nil {
			return fmt.Errorf("post %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

// postEdit holds the fields of an edit; nil or empty means unchanged.
type postEdit struct {
	At        *time.Time
	Title     *string
	Caption   *string
	Platforms []string
	Repeat    *string
}

// applyEdit changes p in place. Moving a post or editing a failed one queues it again.
func applyEdit(p *model.ScheduledPost, e postEdit) error {
	for _, pl := range e.Platforms {
		if !model.IsPlatform(pl) {
			return fmt.Errorf("unknown platform %q (want one of %s)", pl, strings.Join(model.Platforms, ", "))
		}
	}
	if e.Caption != nil && strings.TrimSpace(*e.Caption) == "" {
		return errors.New("caption cannot be empty")
	}
	if e.Repeat != nil {
		f, err := schedule.ParseFrequency(*e.Repeat)
		if err != nil {
			return err
		}
		*p = schedule.Expand(*p, f, 1)[0]
	}
	if e.Title != nil {
		p.Title = *e.Title
	}
	if e.Caption != nil {
		p.Caption = *e.Caption
	}
	if len(e.Platforms) > 0 {
		p.Platforms = e.Platforms
	}
	moved := e.At != nil && !e.At.Equal(p.ScheduledAt)
	if e.At != nil {
		p.ScheduledAt = e.At.UTC()
	}
	if moved || p.Status == model.StatusFailed {
		p.Status = model.StatusScheduled
		p.Notes = ""
	}
	return nil
}

var scheduleEditCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"move"},
	Short:   "Edit or reschedule a queued post",
	Example: `  autopostr schedule move 3f1c9a2e-... --at "2026-11-02 09:00"
  autopostr schedule edit 3f1c9a2e-... --caption "New copy" --platform linkedin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e postEdit
		flags := cmd.Flags()
		if flags.Changed("at") {
			at, err := parseLocalTime(editAt)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			e.At = &at
		}
		if flags.Changed("title") {
			e.Title = &editTitle
		}
		if flags.Changed("caption") {
			e.Caption = &editCaption
		}
		if flags.Changed("platform") {
			e.Platforms = editPlatforms
		}
		if flags.Changed("repeat") {
			e.Repeat = &editRepeat
		}
		if e.At == nil && e.Title == nil && e.Caption == nil && e.Platforms == nil && e.Repeat == nil {
			return errors.New("nothing to change: pass --at, --title, --caption, --platform or --repeat")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		p, err := store.GetPost(ctx, args[0])
		if err != nil {
			return fmt.Errorf("post %s: %w", args[0], err)
		}
		if err := applyEdit(p, e); err != nil {
			return err
		}
		if err := store.UpdatePost(ctx, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s at %s\n", p.ID, p.Status, p.ScheduledAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var scheduleSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest posting slots for a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range schedule.Suggest(time.Now(), suggestPlat, suggestN) {
			fmt.Fprintln(cmd.OutOrStdout(), t.Format("Mon 2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	scheduleAddCmd.Flags().StringVar(&schedAt, "at", "", "publish time, YYYY-MM-DD HH:MM (local)")
	scheduleAddCmd.Flags().StringSliceVar(&schedPlatforms, "platform", []string{"instagram"}, "target platforms")
	scheduleAddCmd.Flags().StringVar(&schedRepeat, "repeat", "none", "none, daily, weekly, biweekly or monthly")
	scheduleAddCmd.Flags().IntVar(&schedCount, "count", 0, "expand the recurrence into this many one-off posts")
	scheduleListCmd.Flags().IntVar(&schedDays, "days", 0, "only show posts up to this many days ahead (0 = all)")
	scheduleEditCmd.Flags().StringVar(&editAt, "at", "", "new publish time, YYYY-MM-DD HH:MM (local)")
	scheduleEditCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	scheduleEditCmd.Flags().StringVar(&editCaption, "caption", "", "new caption")
	scheduleEditCmd.Flags().StringSliceVar(&editPlatforms, "platform", nil, "new target platforms")
	scheduleEditCmd.Flags().StringVar(&editRepeat, "repeat", "", "none, daily, weekly, biweekly or monthly")
	scheduleSuggestCmd.Flags().StringVar(&suggestPlat, "platform", "instagram", "target platform")
	scheduleSuggestCmd.Flags().IntVar(&suggestN, "n", 5, "number of slots")
	scheduleCmd.AddCommand(scheduleAddCmd, scheduleListCmd, scheduleEditCmd, scheduleDeleteCmd, scheduleSuggestCmd)
	rootCmd.AddCommand(scheduleCmd)
}
