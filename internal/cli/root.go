/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cli implements the gaussum command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/fentec-project/gaussum/internal/config"
	"github.com/fentec-project/gaussum/internal/logger"
	"github.com/spf13/cobra"
)

// Execute runs the gaussum command and exits with a non-zero status
// on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the values of the flags shared by every command.
type options struct {
	configPath string
	debug      bool
	logFormat  string
	// flags holds parameter values given on the command line; only
	// flags that were set override the loaded configuration.
	flags config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "gaussum",
		Short:        "Demonstrate that the sum of two independent Gaussians is Gaussian",
		SilenceUsage: true,
	}

	def := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.logFormat, "log-format", def.LogFormat, "log format: text|json")
	pf.Float64Var(&opts.flags.Mean1, "mean1", def.Mean1, "mean of the first distribution [-10, 10]")
	pf.Float64Var(&opts.flags.Std1, "std1", def.Std1, "standard deviation of the first distribution [0, 10]")
	pf.Float64Var(&opts.flags.Mean2, "mean2", def.Mean2, "mean of the second distribution [-10, 10]")
	pf.Float64Var(&opts.flags.Std2, "std2", def.Std2, "standard deviation of the second distribution [0, 10]")
	pf.IntVarP(&opts.flags.Samples, "samples", "n", def.Samples, "number of samples, a power of ten in [10, 10^8]")
	pf.IntVar(&opts.flags.Bins, "bins", def.Bins, "number of histogram bins")
	pf.Uint64Var(&opts.flags.Seed, "seed", def.Seed, "seed of the random source")
	pf.StringVarP(&opts.flags.Output, "output", "o", def.Output, "output image file")
	pf.StringVar(&opts.flags.Format, "format", def.Format, "image format (derived from the output extension when empty)")
	pf.Float64Var(&opts.flags.Width, "width", def.Width, "image width in centimeters")
	pf.Float64Var(&opts.flags.Height, "height", def.Height, "image height in centimeters")

	cmd.AddCommand(renderCmd(opts))
	cmd.AddCommand(watchCmd(opts))
	cmd.AddCommand(statsCmd(opts))

	return cmd
}

// load resolves the configuration of cmd: defaults, then the config
// file, then the environment, then the flags that were set.
func (o *options) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	o.apply(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	log, err := logger.New(cmd.ErrOrStderr(), logger.Config{
		Format: cfg.LogFormat,
		Debug:  o.debug,
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	log.Debug("config.loaded", "path", o.configPath, "params", cfg.Params(), "seed", cfg.Seed)

	return cfg, log, nil
}

func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, f func()) {
		if fs.Changed(name) {
			f()
		}
	}

	set("log-format", func() { cfg.LogFormat = o.logFormat })
	set("mean1", func() { cfg.Mean1 = o.flags.Mean1 })
	set("std1", func() { cfg.Std1 = o.flags.Std1 })
	set("mean2", func() { cfg.Mean2 = o.flags.Mean2 })
	set("std2", func() { cfg.Std2 = o.flags.Std2 })
	set("samples", func() { cfg.Samples = o.flags.Samples })
	set("bins", func() { cfg.Bins = o.flags.Bins })
	set("seed", func() { cfg.Seed = o.flags.Seed })
	set("output", func() { cfg.Output = o.flags.Output })
	set("format", func() { cfg.Format = o.flags.Format })
	set("width", func() { cfg.Width = o.flags.Width })
	set("height", func() { cfg.Height = o.flags.Height })
}
