package cmd

import (
	"context"
	"fmt"
	"time"

	"autopostr/internal/redisclient"

	"github.com/spf13/cobra"
)

// pingCmd checks that the configured Redis answers.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping Redis and print PONG with the round-trip time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		start := time.Now()
		rdb, err := redisclient.Connect(context.Background(), cfg.Redis, 2*time.Second)
		if err != nil {
			return err
		}
		defer rdb.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "PONG %s db=%d in %s\n", cfg.Redis.Addr, cfg.Redis.DB, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd)
}
