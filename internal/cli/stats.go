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
	"io"
	"strconv"

	"github.com/fentec-project/gaussum/data"
	"github.com/fentec-project/gaussum/sample"
	"github.com/fentec-project/gaussum/sumgauss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func statsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print empirical against theoretical moments of every series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}

			s, err := sumgauss.Draw(cfg.Params(), sample.NewSource(cfg.Seed))
			if err != nil {
				return err
			}
			log.Debug("stats.drawn", "samples", cfg.Samples)

			printStats(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printStats(w io.Writer, s *sumgauss.Samples) {
	p := s.Params
	labels := s.Labels()
	summaries := s.Summaries()
	expected := [4][2]float64{
		{p.Mean1, p.Std1 * p.Std1},
		{p.Mean2, p.Std2 * p.Std2},
		{p.SumMean(), p.SumStd() * p.SumStd()},
		{p.SumMean(), p.SumStd() * p.SumStd()},
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"series", "n", "mean", "expected mean", "variance", "expected variance"})
	for i, sum := range summaries {
		table.Append(row(labels[i], sum, expected[i][0], expected[i][1]))
	}
	table.Render()
}

func row(label string, s data.Summary, mean, variance float64) []string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
	return []string{label, strconv.Itoa(s.N), f(s.Mean), f(mean), f(s.Variance), f(variance)}
}
