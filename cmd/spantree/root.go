package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "spantree"
	cmd.Short = "spantree computes minimum spanning trees with Prim's and Kruskal's algorithms"
	cmd.Version = version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return setup(cmd, v)
	}

	cmd.PersistentFlags().StringP("graph", "g", "", "The YAML `file` describing nodes and edges")
	cmd.PersistentFlags().StringP("format", "f", "table", "The output format {table|md|csv|tsv|html|simple|dot}")
	cmd.PersistentFlags().String("config", "", "The config `file` to read flag defaults from")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colorized log output")
	cmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	_ = cmd.MarkPersistentFlagFilename("graph", "yaml", "yml")
	_ = v.BindPFlags(cmd.PersistentFlags())

	v.SetEnvPrefix("SPANTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(NewPrimCmd(v, fs))
	cmd.AddCommand(NewKruskalCmd(v, fs))
	cmd.AddCommand(NewCompareCmd(v, fs))
	cmd.AddCommand(NewGenCmd(v, fs))

	return cmd
}

// setup reads the optional config file (through the viper Fs) and installs
// the default logger.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfg)
		}
	}

	color.NoColor = color.NoColor || v.GetBool("no-color")
	l := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{Level: verbosityLevel(v), NoColor: color.NoColor, TimeFormat: time.Kitchen}))
	slog.SetDefault(l)

	return nil
}

// verbosityLevel maps the -v count to a slog level.
func verbosityLevel(v *viper.Viper) slog.Level {
	switch n := v.GetInt("verbose"); {
	case n <= 0:
		return slog.LevelWarn
	case n == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
