// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package v2 implements the original Sodium-based PASETO construction:
// XChaCha20-Poly1305 for local tokens (with a BLAKE2b message-derived
// nonce), Ed25519 for public tokens. Neither purpose supports an implicit
// assertion; that parameter was introduced in v3/v4.
package v2

const (
	// KeyLength is the requested symmetric key size.
	KeyLength = 32
)

const (
	nonceLength   = 24
	signatureSize = 64

	LocalPrefix  = "v2.local."
	PublicPrefix = "v2.public."
)

// LocalKey represents a key for symmetric encryption (local).
type LocalKey [32]byte

// Zero overwrites the key material with zero bytes. Callers should invoke it
// once a key is no longer needed.
func (k *LocalKey) Zero() {
	for i := range k {
		k[i] = 0
	}
}
