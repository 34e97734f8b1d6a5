package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"housepriced/internal/manager"
	"housepriced/internal/registry"
	"housepriced/internal/store"
	"housepriced/pkg/types"
)

func newPredictCmd(opts *options) *cobra.Command {
	var (
		f      types.HouseFeatures
		asJSON bool
		record bool
	)
	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Run the three models once and print the comparison",
		Example: "  housepriced predict --size 2000 --bedrooms 3 --age 10 --location 5",
		Args:    cobra.NoArgs,
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

			var rec store.Recorder = store.None{}
			if record {
				if rec, err = store.Open(ctx, storeConfig(cfg, log)); err != nil {
					return err
				}
			}
			mgr := manager.NewWithConfig(manager.ManagerConfig{Recorder: rec, Logger: log})
			defer mgr.Close(context.Background())

			artifacts, err := registry.LoadDir(cfg.ModelsDir)
			if err != nil {
				return err
			}
			if err := mgr.LoadModels(artifacts); err != nil {
				return err
			}
			p, err := mgr.Predict(ctx, f, types.SourceCLI)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p.Response())
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tPREDICTION\tPERFORMANCE")
			for _, row := range p.Comparison() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Model, row.Prediction, row.Performance)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "best model: %s (%s)\n", p.Best.Name, p.Best.Reason)
			return err
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.Size, "size", 0, "Living area in square feet")
	fl.IntVar(&f.Bedrooms, "bedrooms", 0, "Number of bedrooms")
	fl.IntVar(&f.Age, "age", 0, "House age in years")
	fl.IntVar(&f.Location, "location", 0, "Location rating (1-10)")
	fl.BoolVar(&asJSON, "json", false, "Print the /predict JSON response")
	fl.BoolVar(&record, "record", false, "Write the prediction to the configured store")
	for _, name := range []string{"size", "bedrooms", "age", "location"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
