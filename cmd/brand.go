package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// brandCmd groups brand profile subcommands.
var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage stored brand profiles",
}

var brandSetCmd = &cobra.Command{
	Use:   "set <profile.yaml>",
	Short: "Store a brand profile from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBrandFile(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		if err := store.SaveBrand(ctx, *b); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved brand %s\n", b.Name)
		return nil
	},
}

var brandGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a stored brand profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		b, err := store.GetBrand(ctx, args[0])
		if err != nil {
			return fmt.Errorf("brand %q: %w", args[0], err)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(b)
	},
}

var brandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored brand profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		brands, err := store.ListBrands(ctx)
		if err != nil {
			return err
		}
		for _, b := range brands {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.Name, b.Industry, strings.Join(b.KeyValues, ", "))
		}
		return nil
	},
}

var brandDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored brand profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, rdb, err := openStore(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer rdb.Close()
		if err := store.DeleteBrand(ctx, args[0]); err != nil {
			return fmt.Errorf("brand %q: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted brand %s\n", args[0])
		return nil
	},
}

func init() {
	brandCmd.AddCommand(brandSetCmd, brandGetCmd, brandListCmd, brandDeleteCmd)
	rootCmd.AddCommand(brandCmd)
}
