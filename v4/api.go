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

package v4

const (
	// KeyLength is the requested symmetric key size.
	KeyLength = 32
)

const (
	nonceLength             = 32
	macLength               = 32
	encryptionKDFLength     = 56 // 32-byte Ek + 24-byte XChaCha20 nonce2
	authenticationKeyLength = 32

	// LocalPrefix is the v4.local header.
	LocalPrefix = "v4.local."

	// PublicPrefix is the v4.public header.
	PublicPrefix = "v4.public."
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
