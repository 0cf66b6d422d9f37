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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gaussum/internal"
	"github.com/fentec-project/gaussum/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

func mean(vec []float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	me := mean(vec)
	sum := 0.0
	for _, v := range vec {
		sum += (v - me) * (v - me)
	}
	return sum / float64(len(vec))
}

func testNormalSampler(t *testing.T, s sample.Sampler, expect paramBounds) {
	vec := make([]float64, 100000)
	for i := range vec {
		vec[i] = s.Rand()
	}
	me := mean(vec)
	v := variance(vec)

	assert.True(t, me < expect.meanHigh, "mean value of the normal distribution is too big")
	assert.True(t, me > expect.meanLow, "mean value of the normal distribution is too small")
	assert.True(t, v < expect.varHigh, "variance of the normal distribution is too big")
	assert.True(t, v > expect.varLow, "variance of the normal distribution is too small")
}

func TestNormal(t *testing.T) {
	var tests = []struct {
		name   string
		mu     float64
		sigma  float64
		expect paramBounds
	}{
		{
			name:  "mu=0, sigma=1",
			mu:    0,
			sigma: 1,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.95,
				varHigh:  1.05,
			},
		},
		{
			name:  "mu=-3, sigma=10",
			mu:    -3,
			sigma: 10,
			expect: paramBounds{
				meanLow:  -3.5,
				meanHigh: -2.5,
				varLow:   95,
				varHigh:  105,
			},
		},
		{
			name:  "mu=7.5, sigma=0.25",
			mu:    7.5,
			sigma: 0.25,
			expect: paramBounds{
				meanLow:  7.45,
				meanHigh: 7.55,
				varLow:   0.055,
				varHigh:  0.07,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := sample.NewNormal(test.mu, test.sigma, sample.NewSource(42))
			require.NoError(t, err)
			assert.Equal(t, test.mu, s.Mean())
			assert.Equal(t, test.sigma*test.sigma, s.Variance())
			testNormalSampler(t, s, test.expect)
		})
	}
}

func TestNormal_ZeroSigma(t *testing.T) {
	s, err := sample.NewNormal(2.5, 0, sample.NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, 2.5, s.Rand())
	}
	assert.True(t, math.IsInf(s.Prob(2.5), 1))
	assert.Equal(t, 0.0, s.Prob(2.4))
}

func TestNewNormal_Invalid(t *testing.T) {
	var tests = []struct {
		name   string
		mu     float64
		sigma  float64
		nilSrc bool
	}{
		{name: "negative sigma", mu: 0, sigma: -1},
		{name: "NaN sigma", mu: 0, sigma: math.NaN()},
		{name: "infinite mean", mu: math.Inf(-1), sigma: 1},
		{name: "nil source", mu: 0, sigma: 1, nilSrc: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := sample.NewSource(0)
			var err error
			if test.nilSrc {
				_, err = sample.NewNormal(test.mu, test.sigma, nil)
			} else {
				_, err = sample.NewNormal(test.mu, test.sigma, src)
			}
			assert.ErrorIs(t, err, internal.ErrInvalidParameter)
		})
	}
}

func TestNewNormalSum(t *testing.T) {
	src := sample.NewSource(7)
	a, err := sample.NewNormal(1, 3, src)
	require.NoError(t, err)
	b, err := sample.NewNormal(-2, 4, src)
	require.NoError(t, err)

	sum, err := sample.NewNormalSum(a, b, src)
	require.NoError(t, err)

	assert.Equal(t, -1.0, sum.Mean())
	assert.InDelta(t, 5.0, sum.StdDev(), 1e-12)
	assert.InDelta(t, 25.0, sum.Variance(), 1e-12)
	assert.Equal(t, "N(-1.00, 5.00²)", sum.String())
}

func TestNormal_String(t *testing.T) {
	s, err := sample.NewNormal(1.23456, 0.5, sample.NewSource(0))
	require.NoError(t, err)
	assert.Equal(t, "N(1.23, 0.50²)", s.String())
}

func TestNormal_Prob(t *testing.T) {
	s, err := sample.NewNormal(1, 2, sample.NewSource(0))
	require.NoError(t, err)

	peak := 1 / (2 * math.Sqrt(2*math.Pi))
	assert.InDelta(t, peak, s.Prob(1), 1e-12)
	assert.InDelta(t, peak*math.Exp(-0.5), s.Prob(3), 1e-12)
	assert.InDelta(t, s.Prob(-1), s.Prob(3), 1e-12)
}
