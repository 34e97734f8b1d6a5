package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"housepriced/internal/store"
)

func newPingDBCmd(opts *options) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "ping-db",
		Short: "Check connectivity to the prediction store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			rec, err := store.Open(ctx, storeConfig(cfg, log))
			if err != nil {
				return err
			}
			defer rec.Close(context.Background())
			if err := rec.Ping(ctx); err != nil {
				return fmt.Errorf("%s store unreachable: %w", rec.Backend(), err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s store reachable\n", rec.Backend())
			return err
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Give up after this long")
	return cmd
}
