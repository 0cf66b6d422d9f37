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

// Package histogram bins sample series into density-normalized
// histograms, so that they can be compared directly with a
// probability density function and with each other.
package histogram

import (
	"math"

	"github.com/fentec-project/gaussum/data"
	"github.com/fentec-project/gaussum/internal"
	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
)

// DefaultBins is the number of bins used when none is requested.
const DefaultBins = 50

// Entry is a labeled series to be binned.
type Entry struct {
	Label  string
	Series data.Series
}

// Density is a histogram whose bin heights are scaled so that
// the total bin area equals 1.
type Density struct {
	Label string
	Hist  *hbook.H1D
}

// Range returns the interval [lo, hi) covering every element of
// the given series with half a bin of margin on both sides.
// Series without spread get a range of unit width centered on
// their value. The margin is never smaller than two units in the
// last place of the bounds, so that the extreme elements stay inside
// the range at any magnitude.
func Range(bins int, series ...data.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		lo = math.Min(lo, s.Min())
		hi = math.Max(hi, s.Max())
	}
	if lo > hi {
		return -0.5, 0.5
	}

	minHalf := 2 * ulp(math.Max(math.Abs(lo), math.Abs(hi)))
	half := 0.5
	if lo != hi {
		half = (hi - lo) / float64(bins) / 2
	}
	half = math.Max(half, minHalf)

	smallest, largest := lo, hi
	lo, hi = lo-half, hi+half
	if hi <= largest {
		hi = math.Nextafter(largest, math.Inf(1))
	}
	if lo > smallest {
		lo = smallest
	}
	return lo, hi
}

// ulp returns the distance from x to the next larger float64.
func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}

// New bins every entry into a Density with the given number of bins.
// All returned histograms share the same binning, so they can be
// overlaid on a common axis.
func New(bins int, entries ...Entry) ([]*Density, error) {
	if bins < 1 {
		return nil, internal.InvalidParameter("bins", bins, "should be positive")
	}
	if len(entries) == 0 {
		return nil, errors.New("no series to bin")
	}

	series := make([]data.Series, len(entries))
	for i, e := range entries {
		if len(e.Series) == 0 {
			return nil, internal.InvalidParameter("series "+e.Label, 0, "should not be empty")
		}
		for _, v := range e.Series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(internal.ErrNonFinite, "series %s holds %v", e.Label, v)
			}
		}
		series[i] = e.Series
	}
	lo, hi := Range(bins, series...)
	if math.IsInf(hi-lo, 0) {
		return nil, errors.Wrapf(internal.ErrNonFinite, "range [%v, %v) is too wide to bin", lo, hi)
	}

	res := make([]*Density, len(entries))
	for i, e := range entries {
		h := hbook.NewH1D(bins, lo, hi)
		for _, v := range e.Series {
			h.Fill(v, 1)
		}
		normalize(h)
		res[i] = &Density{
			Label: e.Label,
			Hist:  h,
		}
	}

	return res, nil
}

// Area returns the total bin area of the histogram.
func (d *Density) Area() float64 {
	return area(d.Hist)
}

// Heights returns the bin heights of the histogram.
func (d *Density) Heights() []float64 {
	bins := d.Hist.Binning.Bins
	res := make([]float64, len(bins))
	for i, b := range bins {
		res[i] = b.SumW()
	}
	return res
}

// normalize scales h so that its bins integrate to 1.
func normalize(h *hbook.H1D) {
	a := area(h)
	if a == 0 {
		return
	}
	h.Scale(1 / a)
}

func area(h *hbook.H1D) float64 {
	a := 0.0
	for _, b := range h.Binning.Bins {
		a += b.SumW() * b.XWidth()
	}
	return a
}
