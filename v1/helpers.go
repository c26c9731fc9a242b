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

package v1

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/ordible/paseto/internal/common"
)

// deriveNonce recomputes the v1 nonce as HMAC-SHA384(key=nonceSalt, msg=m),
// truncated to 32 bytes. Re-deriving the nonce from the message (instead of
// using the drawn randomness directly) is the defining trait of the v1
// construction: it makes the scheme nonce-misuse resistant at the cost of
// requiring two passes over the plaintext conceptually (the hash pass and
// the cipher pass).
func deriveNonce(nonceSalt, m []byte) []byte {
	mac := hmac.New(sha512.New384, nonceSalt)
	mac.Write(m)
	return mac.Sum(nil)[:nonceLength]
}

func kdf(key *LocalKey, salt []byte) (ek, ak []byte, err error) {
	if key == nil {
		return nil, nil, errors.New("unable to derive keys from a nil seed")
	}

	encKDF := hkdf.New(sha512.New384, key[:], salt, []byte("paseto-encryption-key"))
	ek = make([]byte, kdfOutputLength)
	if _, err := io.ReadFull(encKDF, ek); err != nil {
		return nil, nil, fmt.Errorf("unable to generate encryption key from seed: %w", err)
	}

	authKDF := hkdf.New(sha512.New384, key[:], salt, []byte("paseto-auth-key-for-aead"))
	ak = make([]byte, kdfOutputLength)
	if _, err := io.ReadFull(authKDF, ak); err != nil {
		return nil, nil, fmt.Errorf("unable to generate authentication key from seed: %w", err)
	}

	return ek, ak, nil
}

func mac(ak, h, n, c, f []byte) []byte {
	preAuth := common.PreAuthenticationEncoding(h, n, c, f)

	mac := hmac.New(sha512.New384, ak)
	mac.Write(preAuth)

	return mac.Sum(nil)
}
