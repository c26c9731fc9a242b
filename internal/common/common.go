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

package common

import (
	"bytes"
	"crypto/subtle"
	"encoding/binary"
)

// PreAuthenticationEncoding implements PAE: the canonical length-prefixed
// serialization every (version, purpose) kernel binds into its MAC or
// signature input.
//
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Common.md#authentication-padding
func PreAuthenticationEncoding(pieces ...[]byte) []byte {
	output := &bytes.Buffer{}

	// bytes.Buffer.Write never fails; binary.Write over it can't either.
	_ = binary.Write(output, binary.LittleEndian, le64(uint64(len(pieces))))

	for i := range pieces {
		_ = binary.Write(output, binary.LittleEndian, le64(uint64(len(pieces[i]))))
		output.Write(pieces[i])
	}

	return output.Bytes()
}

// le64 clears the MSB per the PAE definition, so piece counts/lengths can
// never be read back as negative on platforms that treat this as signed.
func le64(n uint64) uint64 {
	return n &^ (1 << 63)
}

// SecureCompare uses a constant time function to compare the two given arrays.
func SecureCompare(given, actual []byte) bool {
	if subtle.ConstantTimeEq(int32(len(given)), int32(len(actual))) == 1 {
		return subtle.ConstantTimeCompare(given, actual) == 1
	}
	// Securely compare actual to itself to keep constant time, but always return false.
	if subtle.ConstantTimeCompare(actual, actual) == 1 {
		return false
	}

	return false
}

// Zeroize overwrites b in place with zero bytes. No kernel package calls
// it: the sub-keys derived inside Encrypt/Decrypt are not scrubbed after use.
//
//go:noinline
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
