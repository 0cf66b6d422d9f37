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

// Package sample includes samplers for sampling random values
// from normal (Gaussian) probability distributions.
//
// Package sample provides the Sampler interface along with
// the Normal implementation of it, and Source, a deterministic
// pseudo-random source derived from the Salsa20 key stream.
// Samplers never own their randomness: the source is passed in
// by the caller, so that a computation can be reproduced by
// re-seeding the source with the same seed.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill data.Series with the desired random data.
package sample
