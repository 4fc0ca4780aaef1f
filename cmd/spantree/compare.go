package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/katalvlaran/spantree/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// weightTolerance absorbs float summation order differences between engines.
const weightTolerance = 1e-9

// forestResult is one engine's output.
type forestResult struct {
	method string
	forest []*core.Edge
	total  float64
}

func NewCompareCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "compare"
	cmd.Short = "Run Prim and Kruskal side by side and check their weights agree"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runCompare(cmd, v, fs)
	}

	return cmd
}

func runCompare(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format, false); err != nil {
		return err
	}
	lg, err := loadGraph(fs, v.GetString("graph"))
	if err != nil {
		return err
	}
	nodes, edges := lg.graph.Nodes(), lg.graph.Edges()

	// engines share read-only inputs and own their frontier/union-find
	results := make([]forestResult, 2)
	var eg errgroup.Group
	for i, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		eg.Go(func() error {
			run := prim_kruskal.Kruskal
			if method == prim_kruskal.MethodPrim {
				run = prim_kruskal.Prim
			}
			forest, total, err := run(nodes, edges, prim_kruskal.WithLogger(slog.Default()))
			if err != nil {
				return errors.Wrapf(err, "%s", method)
			}
			results[i] = forestResult{method: method, forest: forest, total: total}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Method", "Edges", "Weight"})
	for _, r := range results {
		t.AppendRow(table.Row{r.method, len(r.forest), fmt.Sprintf("%.2f", r.total)})
	}
	if err := render.Emit(t, format); err != nil {
		return err
	}

	if d := math.Abs(results[0].total - results[1].total); d > weightTolerance {
		return errors.Newf("weights disagree: prim=%g kruskal=%g", results[0].total, results[1].total)
	}
	slog.Info("engines agree", "weight", results[0].total)

	return nil
}
