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

package histogram_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gaussum/data"
	"github.com/fentec-project/gaussum/histogram"
	"github.com/fentec-project/gaussum/internal"
	"github.com/fentec-project/gaussum/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSeries(t *testing.T, n int, mu, sigma float64, seed uint64) data.Series {
	s, err := sample.NewNormal(mu, sigma, sample.NewSource(seed))
	require.NoError(t, err)
	series, err := data.NewRandomSeries(n, s)
	require.NoError(t, err)
	return series
}

func TestNew_DensityNormalized(t *testing.T) {
	var tests = []struct {
		name  string
		bins  int
		mu    float64
		sigma float64
	}{
		{name: "standard", bins: 50, mu: 0, sigma: 1},
		{name: "shifted wide", bins: 20, mu: 5, sigma: 8},
		{name: "single bin", bins: 1, mu: -1, sigma: 0.1},
		{name: "point mass", bins: 50, mu: 3, sigma: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			series := randomSeries(t, 10000, test.mu, test.sigma, 1)
			hists, err := histogram.New(test.bins, histogram.Entry{Label: test.name, Series: series})
			require.NoError(t, err)
			require.Len(t, hists, 1)

			h := hists[0]
			assert.Equal(t, test.name, h.Label)
			assert.Len(t, h.Heights(), test.bins)
			assert.InDelta(t, 1.0, h.Area(), 1e-9)
		})
	}
}

func TestNew_SharedBinning(t *testing.T) {
	a := randomSeries(t, 1000, 0, 1, 1)
	b := randomSeries(t, 1000, 10, 1, 2)

	hists, err := histogram.New(30,
		histogram.Entry{Label: "a", Series: a},
		histogram.Entry{Label: "b", Series: b},
	)
	require.NoError(t, err)
	require.Len(t, hists, 2)

	assert.Equal(t, hists[0].Hist.XMin(), hists[1].Hist.XMin())
	assert.Equal(t, hists[0].Hist.XMax(), hists[1].Hist.XMax())
	assert.LessOrEqual(t, hists[0].Hist.XMin(), a.Min())
	assert.GreaterOrEqual(t, hists[1].Hist.XMax(), b.Max())
	assert.InDelta(t, 1.0, hists[0].Area(), 1e-9)
	assert.InDelta(t, 1.0, hists[1].Area(), 1e-9)
}

func TestRange(t *testing.T) {
	lo, hi := histogram.Range(10, data.Series{0, 10})
	assert.InDelta(t, -0.5, lo, 1e-12)
	assert.InDelta(t, 10.5, hi, 1e-12)

	lo, hi = histogram.Range(10, data.Series{2, 2, 2})
	assert.Equal(t, 1.5, lo)
	assert.Equal(t, 2.5, hi)

	lo, hi = histogram.Range(10)
	assert.Equal(t, -0.5, lo)
	assert.Equal(t, 0.5, hi)
}

func TestNew_Invalid(t *testing.T) {
	_, err := histogram.New(0, histogram.Entry{Series: data.Series{1}})
	assert.ErrorIs(t, err, internal.ErrInvalidParameter)

	_, err = histogram.New(10, histogram.Entry{Label: "empty"})
	assert.ErrorIs(t, err, internal.ErrInvalidParameter)

	_, err = histogram.New(10)
	assert.Error(t, err)
}

func entries(d *histogram.Density) int64 {
	var n int64
	for _, b := range d.Hist.Binning.Bins {
		n += b.Entries()
	}
	return n
}

func TestNew_LargeMagnitude(t *testing.T) {
	var tests = []struct {
		name   string
		series data.Series
	}{
		{name: "normal around 1e16", series: randomSeries(t, 10000, 1e16, 3, 5)},
		{name: "consecutive floats", series: data.Series{1e16, 1e16 + 2, 1e16 + 4}},
		{name: "constant 1e16", series: data.Series{1e16, 1e16, 1e16}},
		{name: "negative constant", series: data.Series{-3e200, -3e200}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lo, hi := histogram.Range(histogram.DefaultBins, test.series)
			assert.LessOrEqual(t, lo, test.series.Min())
			assert.Greater(t, hi, test.series.Max())

			hists, err := histogram.New(histogram.DefaultBins, histogram.Entry{Series: test.series})
			require.NoError(t, err)
			assert.Equal(t, int64(len(test.series)), entries(hists[0]), "every sample should fall in a bin")
			assert.InDelta(t, 1.0, hists[0].Area(), 1e-9)
		})
	}
}

func TestNew_NonFinite(t *testing.T) {
	var tests = []struct {
		name   string
		series data.Series
	}{
		{name: "infinite sample", series: data.Series{1, math.Inf(1)}},
		{name: "NaN sample", series: data.Series{math.NaN(), 2}},
		{name: "range overflows", series: data.Series{-1e308, 1e308}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := histogram.New(10, histogram.Entry{Label: test.name, Series: test.series})
			assert.ErrorIs(t, err, internal.ErrNonFinite)
		})
	}
}
