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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// blockSize is the number of key stream bytes produced per nonce.
const blockSize = 512

// Source is a deterministic pseudo-random source. It outputs the
// Salsa20 key stream for a key derived from the seed; consecutive
// blocks of the stream are produced with consecutive nonces.
// Source implements math/rand/v2.Source. It is not safe for
// concurrent use.
type Source struct {
	key   [32]byte
	nonce uint64
	buf   [blockSize]byte
	pos   int
}

// NewSource returns an instance of Source seeded with seed.
func NewSource(seed uint64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the source to the beginning of the key stream
// determined by seed.
func (s *Source) Seed(seed uint64) {
	s.key = [32]byte{}
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.reset()
}

// Uint64 returns the next 8 bytes of the key stream.
func (s *Source) Uint64() uint64 {
	if s.pos == blockSize {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

func (s *Source) reset() {
	s.nonce = 0
	s.pos = blockSize
}

// refill encrypts a block of zeros, which yields the raw key stream.
func (s *Source) refill() {
	var in [blockSize]byte
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)

	salsa20.XORKeyStream(s.buf[:], in[:], nonce, &s.key)

	s.nonce++
	s.pos = 0
}
