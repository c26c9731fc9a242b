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

// Package v4x is an alternate v4.local profile that swaps the blake2b KDF/MAC
// pair for BLAKE3, keeping the same XChaCha20 stream cipher. Unlike v4, which
// derives its authentication key with keyed blake2b, v4x takes the
// authentication key from the first block of the encryption keystream.
package v4x

const (
	// KeyLength is the requested symmetric key size.
	KeyLength = 32
)

const (
	nonceLength         = 32
	macLength           = 32
	encryptionKDFLength = 56 // 32-byte Ek + 24-byte XChaCha20 nonce2

	// LocalPrefix is the v4x local header. Kept distinct from v4.local's
	// wire prefix so a v4x token can never be mistaken for, or decrypted
	// as, a standard v4.local token.
	LocalPrefix = "v4x.local."
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
