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

package sumgauss

import (
	"math/rand/v2"

	"github.com/fentec-project/gaussum/data"
	"github.com/fentec-project/gaussum/figure"
	"github.com/fentec-project/gaussum/histogram"
	"github.com/pkg/errors"
)

// Title is the shared title of the rendered figure.
const Title = "Sum of two independent Gaussians"

// Figure is the rendered demonstration together with the series
// it was built from.
type Figure struct {
	*figure.Figure
	*Samples
}

// RenderSumOfGaussians draws the samples for p from src and composes
// them into a three panel figure: the histograms of the two summands
// side by side on top, and the histogram of their empirical sum
// overlaid on the histogram of the independent reference sample
// below. All histograms are density-normalized.
//
// Invalid parameters are reported with ErrInvalidParameter before
// anything is drawn from src.
func RenderSumOfGaussians(p Params, src rand.Source) (*Figure, error) {
	s, err := Draw(p, src)
	if err != nil {
		return nil, err
	}

	f, err := Compose(s)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Figure:  f,
		Samples: s,
	}, nil
}

// Compose bins the series of s and lays them out as a figure. The
// bottom panel also carries the closed-form density of the sum.
func Compose(s *Samples) (*figure.Figure, error) {
	labels := s.Labels()
	bins := s.Params.bins()

	first, err := densities(bins, histogram.Entry{Label: labels[0], Series: s.First})
	if err != nil {
		return nil, err
	}
	second, err := densities(bins, histogram.Entry{Label: labels[1], Series: s.Second})
	if err != nil {
		return nil, err
	}
	sum, err := densities(bins,
		histogram.Entry{Label: labels[2], Series: s.SumEmpirical},
		histogram.Entry{Label: labels[3], Series: s.SumTheoretical},
	)
	if err != nil {
		return nil, err
	}

	bottom := &figure.Panel{
		Title:  "X1 + X2 vs. " + labels[3],
		XLabel: "x1 + x2",
		Hists:  sum,
		Colors: figure.Palette[2:4],
	}
	// a point mass has no density to draw
	if d := s.dists[2]; d.StdDev() > 0 {
		bottom.Curves = []figure.Curve{{
			Label: "density of " + d.String(),
			F:     d.Prob,
		}}
	}

	return figure.New(Title,
		&figure.Panel{
			Title:  labels[0],
			XLabel: "x1",
			Hists:  first,
			Colors: figure.Palette[0:1],
		},
		&figure.Panel{
			Title:  labels[1],
			XLabel: "x2",
			Hists:  second,
			Colors: figure.Palette[1:2],
		},
		bottom,
	), nil
}

func densities(bins int, entries ...histogram.Entry) ([]*histogram.Density, error) {
	d, err := histogram.New(bins, entries...)
	if err != nil {
		return nil, errors.Wrap(err, "error while binning")
	}
	return d, nil
}

// Summaries returns the descriptive statistics of First, Second,
// SumEmpirical and SumTheoretical.
func (s *Samples) Summaries() [4]data.Summary {
	return [4]data.Summary{
		s.First.Summary(),
		s.Second.Summary(),
		s.SumEmpirical.Summary(),
		s.SumTheoretical.Summary(),
	}
}
