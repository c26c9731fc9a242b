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

package v2

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// deriveNonce computes BLAKE2b(key=r, msg=m, out=nonceLength): the v2 nonce
// is bound to the message content, not just the random draw, so reusing the
// same random bytes for two different messages still yields distinct nonces.
func deriveNonce(r, m []byte) ([]byte, error) {
	h, err := blake2b.New(nonceLength, r)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize nonce hash: %w", err)
	}
	h.Write(m)
	return h.Sum(nil), nil
}
