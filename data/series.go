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

package data

import (
	"math"

	"github.com/fentec-project/gaussum/internal"
	"github.com/fentec-project/gaussum/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series wraps an ordered slice of samples.
type Series []float64

// Summary holds descriptive statistics of a Series.
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// NewRandomSeries returns a new Series instance of length n
// with random elements sampled by the provided sample.Sampler.
func NewRandomSeries(n int, sampler sample.Sampler) (Series, error) {
	if n < 1 {
		return nil, internal.InvalidParameter("sample count", n, "should be positive")
	}

	s := make(Series, n)
	for i := range s {
		s[i] = sampler.Rand()
	}

	return s, nil
}

// Copy creates a new series with the same values.
func (s Series) Copy() Series {
	newSeries := make(Series, len(s))
	copy(newSeries, s)

	return newSeries
}

// Add adds series s and other element-wise.
// The result is returned in a new Series.
func (s Series) Add(other Series) (Series, error) {
	if len(s) != len(other) {
		return nil, errors.Wrapf(internal.ErrLengthMismatch, "%d != %d", len(s), len(other))
	}

	sum := s.Copy()
	floats.Add(sum, other)

	return sum, nil
}

// Mean returns the empirical mean of the series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return stat.Mean(s, nil)
}

// Variance returns the empirical (population) variance of the series,
// i.e. the mean squared deviation from the empirical mean.
func (s Series) Variance() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	_, v := stat.PopMeanVariance(s, nil)
	return v
}

// Min returns the smallest element of the series.
func (s Series) Min() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return floats.Min(s)
}

// Max returns the largest element of the series.
func (s Series) Max() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return floats.Max(s)
}

// Summary computes the descriptive statistics of the series.
func (s Series) Summary() Summary {
	v := s.Variance()
	return Summary{
		N:        len(s),
		Mean:     s.Mean(),
		Variance: v,
		StdDev:   math.Sqrt(v),
		Min:      s.Min(),
		Max:      s.Max(),
	}
}
