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

package sample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/fentec-project/gaussum/internal"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution N(mu, sigma^2).
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler drawing its
// randomness from src. Sigma = 0 is allowed and yields a point
// mass at mu.
func NewNormal(mu, sigma float64, src rand.Source) (*Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, internal.InvalidParameter("mean", mu, "should be a finite number")
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, internal.InvalidParameter("standard deviation", sigma, "should be a finite non-negative number")
	}
	if src == nil {
		return nil, internal.InvalidParameter("source", src, "should not be nil")
	}

	return &Normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src,
		},
	}, nil
}

// NewNormalSum returns a sampler for the distribution of X + Y, where
// X and Y are independent and distributed according to a and b.
// The sum of independent normal variables is normal with
// mean a.Mean() + b.Mean() and variance a.Variance() + b.Variance().
func NewNormalSum(a, b *Normal, src rand.Source) (*Normal, error) {
	return NewNormal(a.Mean()+b.Mean(), math.Hypot(a.StdDev(), b.StdDev()), src)
}

// Rand returns a random value from the distribution.
func (n *Normal) Rand() float64 {
	return n.dist.Rand()
}

// Mean returns the mean of the distribution.
func (n *Normal) Mean() float64 {
	return n.dist.Mu
}

// StdDev returns the standard deviation of the distribution.
func (n *Normal) StdDev() float64 {
	return n.dist.Sigma
}

// Variance returns the variance of the distribution.
func (n *Normal) Variance() float64 {
	return n.dist.Sigma * n.dist.Sigma
}

// Prob returns the probability density of the distribution at x.
func (n *Normal) Prob(x float64) float64 {
	if n.dist.Sigma == 0 {
		if x == n.dist.Mu {
			return math.Inf(1)
		}
		return 0
	}
	return n.dist.Prob(x)
}

// String returns the distribution with its parameters
// rounded to two decimals, e.g. N(1.00, 0.50²).
func (n *Normal) String() string {
	return fmt.Sprintf("N(%.2f, %.2f²)", n.dist.Mu, n.dist.Sigma)
}
