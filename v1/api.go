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

// Package v1 implements the original NIST-based PASETO construction:
// AES-256-CTR with an HMAC-SHA384 re-derived nonce for local tokens, and
// RSA-PSS for public tokens. Deprecated by the PASETO protocol in favor of
// v3, but kept here for backward compatibility.
package v1

const (
	// KeyLength is the requested encryption key size.
	KeyLength = 32
)

const (
	nonceLength     = 32
	nonceSaltLength = 16
	macLength       = 48
	kdfOutputLength = 32

	LocalPrefix  = "v1.local."
	PublicPrefix = "v1.public."
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
