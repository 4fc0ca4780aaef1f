package main

import (
	"log/slog"

	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/katalvlaran/spantree/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewPrimCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "prim"
	cmd.Short = "Compute the minimum spanning forest with Prim's algorithm"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runMST(cmd, v, fs, prim_kruskal.MethodPrim)
	}

	cmd.Flags().String("root", "", "The `name` of the node to grow the first tree from")
	_ = v.BindPFlag("root", cmd.Flags().Lookup("root"))

	return cmd
}

func NewKruskalCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "kruskal"
	cmd.Short = "Compute the minimum spanning forest with Kruskal's algorithm"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runMST(cmd, v, fs, prim_kruskal.MethodKruskal)
	}

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, method string) error {
	format := v.GetString("format")
	if err := checkFormat(format, true); err != nil {
		return err
	}
	lg, err := loadGraph(fs, v.GetString("graph"))
	if err != nil {
		return err
	}

	opts := prim_kruskal.DefaultOptions()
	opts.Method = method
	opts.Logger = slog.Default()
	if name := v.GetString("root"); name != "" && method == prim_kruskal.MethodPrim {
		if opts.Root, err = lg.node(name); err != nil {
			return err
		}
	}

	forest, total, err := prim_kruskal.Compute(lg.graph, opts)
	if err != nil {
		return err
	}
	nodes := lg.graph.Nodes()
	trees, err := prim_kruskal.Components(nodes, forest)
	if err != nil {
		return err
	}
	slog.Info("spanning forest computed", "method", method, "edges", len(forest), "weight", total, "components", trees)

	if format == formatDOT {
		return render.DOT(cmd.OutOrStdout(), render.Scene{
			Title:     lg.title,
			Nodes:     nodes,
			Edges:     lg.graph.Edges(),
			Forest:    forest,
			Locations: lg.locations,
		})
	}

	return render.Table(cmd.OutOrStdout(), forest, format)
}
