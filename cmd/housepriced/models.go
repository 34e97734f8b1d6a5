package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"housepriced/internal/manager"
	"housepriced/internal/registry"
)

func newModelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List model artifacts found in the models directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			artifacts, err := registry.LoadDir(cfg.ModelsDir)
			if err != nil {
				return err
			}
			// Decoding fills in kind and width; fall back to the raw scan.
			ms, loadErr := manager.LoadModelSet(artifacts)
			if loadErr == nil {
				artifacts = ms.Artifacts
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFORMAT\tKIND\tFEATURES\tPATH")
			for _, a := range artifacts {
				kind, width := a.Kind, "-"
				if kind == "" {
					kind = "-"
				}
				if a.Features > 0 {
					width = fmt.Sprint(a.Features)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Format, kind, width, a.Path)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return loadErr
		},
	}
}
