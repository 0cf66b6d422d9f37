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

package cli

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/fentec-project/gaussum/internal/config"
	"github.com/fentec-project/gaussum/sample"
	"github.com/fentec-project/gaussum/sumgauss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func renderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the sum-of-Gaussians figure once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}

			if err := render(cfg, sample.NewSource(cfg.Seed), log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.Output)
			return nil
		},
	}
}

// render draws a figure for cfg from src and writes it to cfg.Output.
func render(cfg config.Config, src rand.Source, log *slog.Logger) error {
	start := time.Now()

	fig, err := sumgauss.RenderSumOfGaussians(cfg.Params(), src)
	if err != nil {
		return err
	}

	format, err := cfg.ImageFormat()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "error creating output directory")
		}
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "error creating output file")
	}

	w, h := cfg.Size()
	n, err := fig.WriteTo(f, w, h, format)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "error closing output file")
	}
	if err != nil {
		return err
	}

	sum := fig.SumEmpirical.Summary()
	log.Info("render.done",
		"path", cfg.Output,
		"format", format,
		"bytes", n,
		"samples", cfg.Samples,
		"sum_mean", sum.Mean,
		"sum_variance", sum.Variance,
		"duration", time.Since(start),
	)
	return nil
}
