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
	"bufio"
	"fmt"
	"strings"

	"github.com/fentec-project/gaussum/internal/config"
	"github.com/fentec-project/gaussum/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func watchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render the figure whenever parameters are updated on stdin",
		Long: `Renders the figure, then reads parameter updates from stdin, one
line at a time, and re-renders after every line. A line holds one or
more key=value pairs separated by spaces, e.g. "mean1=2.5 std2=0.3".
Keys are mean1, std1, mean2, std2, samples, bins and seed. Updating the
seed re-seeds the random source. Invalid updates are reported and
discarded. "quit" or end of input stops watching.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			src := sample.NewSource(cfg.Seed)
			if err := render(cfg, src, log); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", cfg.Output)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}

				next, err := update(cfg, line)
				if err != nil {
					log.Warn("watch.update_rejected", "line", line, "err", err)
					fmt.Fprintf(out, "rejected %q: %v\n", line, err)
					continue
				}
				if next.Seed != cfg.Seed {
					src.Seed(next.Seed)
				}
				cfg = next

				log.Debug("watch.update", "params", cfg.Params(), "seed", cfg.Seed)
				if err := render(cfg, src, log); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", cfg.Output)
			}

			return errors.Wrap(scanner.Err(), "error reading updates")
		},
	}
}

// update returns a copy of cfg with the key=value pairs of line applied.
// The copy is validated, so that a bad update leaves cfg in effect.
func update(cfg config.Config, line string) (config.Config, error) {
	for _, field := range strings.Fields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return cfg, errors.Errorf("expected key=value, got %q", field)
		}
		if err := cfg.Set(key, value); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
