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

// Package sumgauss demonstrates that the sum of two independent
// Gaussian random variables is itself Gaussian, with the means and
// the variances of the summands adding up.
//
// Given X1 ~ N(mu1, sigma1^2) and X2 ~ N(mu2, sigma2^2), it draws
// samples of X1 and X2, forms their element-wise sum, and draws an
// independent reference sample from N(mu1+mu2, sigma1^2+sigma2^2).
// The histograms of the empirical sum and of the reference sample
// coincide as the number of samples grows.
package sumgauss

import (
	"math"
	"math/rand/v2"

	"github.com/fentec-project/gaussum/data"
	"github.com/fentec-project/gaussum/histogram"
	"github.com/fentec-project/gaussum/internal"
	"github.com/fentec-project/gaussum/sample"
)

// ErrInvalidParameter is returned when a standard deviation is
// negative, the sample count is not positive, the number of bins is
// negative, or the parameters are so large that samples could
// overflow.
var ErrInvalidParameter = internal.ErrInvalidParameter

// DefaultBins is the number of histogram bins used when Params.Bins is 0.
const DefaultBins = histogram.DefaultBins

// tailSigmas bounds the distance, in standard deviations, between a
// sample and its mean. Normal samples farther out than this do not
// occur in practice.
const tailSigmas = 40

// Params holds the parameters of the two summed distributions.
type Params struct {
	Mean1       float64
	Std1        float64
	Mean2       float64
	Std2        float64
	SampleCount int
	// Bins is the number of histogram bins, 0 selects DefaultBins.
	Bins int
}

// Validate checks the parameters without drawing any samples.
func (p Params) Validate() error {
	for _, m := range []struct {
		name string
		v    float64
	}{{"mean1", p.Mean1}, {"mean2", p.Mean2}} {
		if math.IsNaN(m.v) || math.IsInf(m.v, 0) {
			return internal.InvalidParameter(m.name, m.v, "should be a finite number")
		}
	}
	for _, s := range []struct {
		name string
		v    float64
	}{{"std1", p.Std1}, {"std2", p.Std2}} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return internal.InvalidParameter(s.name, s.v, "should be a finite non-negative number")
		}
	}
	// samples and the histogram range must stay finite
	if extent := math.Abs(p.Mean1) + math.Abs(p.Mean2) + tailSigmas*(p.Std1+p.Std2); math.IsInf(2*extent, 0) {
		return internal.InvalidParameter("parameters", p, "samples would overflow")
	}
	if p.SampleCount < 1 {
		return internal.InvalidParameter("sample count", p.SampleCount, "should be positive")
	}
	if p.Bins < 0 {
		return internal.InvalidParameter("bins", p.Bins, "should not be negative")
	}
	return nil
}

// SumMean returns the mean of the sum distribution.
func (p Params) SumMean() float64 {
	return p.Mean1 + p.Mean2
}

// SumStd returns the standard deviation of the sum distribution.
func (p Params) SumStd() float64 {
	return math.Hypot(p.Std1, p.Std2)
}

func (p Params) bins() int {
	if p.Bins == 0 {
		return DefaultBins
	}
	return p.Bins
}

// Samples holds the series drawn for one demonstration.
type Samples struct {
	Params Params
	// First and Second are drawn from the two summands.
	First  data.Series
	Second data.Series
	// SumEmpirical is the element-wise sum of First and Second.
	SumEmpirical data.Series
	// SumTheoretical is drawn independently from the closed-form
	// distribution of the sum.
	SumTheoretical data.Series

	dists [3]*sample.Normal
}

// Draw draws all series for p from src. Draws happen in a fixed
// order (First, Second, SumTheoretical), so re-seeding src with the
// same seed reproduces the same samples.
func Draw(p Params, src rand.Source) (*Samples, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, internal.InvalidParameter("source", src, "should not be nil")
	}

	d1, err := sample.NewNormal(p.Mean1, p.Std1, src)
	if err != nil {
		return nil, err
	}
	d2, err := sample.NewNormal(p.Mean2, p.Std2, src)
	if err != nil {
		return nil, err
	}
	dSum, err := sample.NewNormalSum(d1, d2, src)
	if err != nil {
		return nil, err
	}

	first, err := data.NewRandomSeries(p.SampleCount, d1)
	if err != nil {
		return nil, err
	}
	second, err := data.NewRandomSeries(p.SampleCount, d2)
	if err != nil {
		return nil, err
	}
	theoretical, err := data.NewRandomSeries(p.SampleCount, dSum)
	if err != nil {
		return nil, err
	}
	empirical, err := first.Add(second)
	if err != nil {
		return nil, err
	}

	return &Samples{
		Params:         p,
		First:          first,
		Second:         second,
		SumEmpirical:   empirical,
		SumTheoretical: theoretical,
		dists:          [3]*sample.Normal{d1, d2, dSum},
	}, nil
}

// Labels returns the legend labels of First, Second, SumEmpirical
// and SumTheoretical, with parameters rounded to two decimals.
func (s *Samples) Labels() [4]string {
	return [4]string{
		"X1 ~ " + s.dists[0].String(),
		"X2 ~ " + s.dists[1].String(),
		"X1 + X2",
		"Y ~ " + s.dists[2].String(),
	}
}
