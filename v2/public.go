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
	"bytes"
	"crypto/ed25519"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ordible/paseto/internal/common"
)

// Sign a message (m) with the private key (sk).
// PASETO v2 public signature primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#sign
func Sign(m []byte, sk ed25519.PrivateKey, f []byte) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("paseto: invalid private key length, it must be %d bytes long", ed25519.PrivateKeySize)
	}

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f)
	sig := ed25519.Sign(sk, m2)

	body := make([]byte, 0, len(m)+signatureSize)
	body = append(body, m...)
	body = append(body, sig...)

	tokenLen := base64.RawURLEncoding.EncodedLen(len(body))
	footerLen := 0
	if len(f) > 0 {
		footerLen = base64.RawURLEncoding.EncodedLen(len(f)) + 1
		tokenLen += footerLen
	}

	final := make([]byte, len(PublicPrefix)+tokenLen)
	copy(final, PublicPrefix)
	base64.RawURLEncoding.Encode(final[len(PublicPrefix):], body)

	if len(f) > 0 {
		final[len(PublicPrefix)+tokenLen-footerLen] = '.'
		base64.RawURLEncoding.Encode(final[len(PublicPrefix)+tokenLen-footerLen+1:], f)
	}

	return string(final), nil
}

// Verify a PASETO v2 public signature.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#verify
func Verify(t string, pk ed25519.PublicKey, f []byte) ([]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("paseto: invalid public key length, it must be %d bytes long", ed25519.PublicKeySize)
	}

	rawToken := []byte(t)
	if !bytes.HasPrefix(rawToken, []byte(PublicPrefix)) {
		return nil, errors.New("paseto: invalid token")
	}
	rawToken = rawToken[len(PublicPrefix):]

	if len(f) > 0 {
		footerIdx := bytes.Index(rawToken, []byte("."))
		if footerIdx == 0 {
			return nil, errors.New("paseto: invalid token, footer is missing but expected")
		}

		footer := make([]byte, base64.RawURLEncoding.DecodedLen(len(rawToken[footerIdx+1:])))
		if _, err := base64.RawURLEncoding.Decode(footer, rawToken[footerIdx+1:]); err != nil {
			return nil, fmt.Errorf("paseto: invalid token, footer has invalid encoding: %w", err)
		}

		if subtle.ConstantTimeCompare(f, footer) == 0 {
			return nil, errors.New("paseto: invalid token, footer mismatch")
		}

		rawToken = rawToken[:footerIdx]
	}

	raw := make([]byte, base64.RawURLEncoding.DecodedLen(len(rawToken)))
	if _, err := base64.RawURLEncoding.Decode(raw, rawToken); err != nil {
		return nil, fmt.Errorf("paseto: invalid token body: %w", err)
	}
	if len(raw) < signatureSize {
		return nil, errors.New("paseto: invalid token body")
	}

	m := raw[:len(raw)-signatureSize]
	sig := raw[len(raw)-signatureSize:]

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f)
	if !ed25519.Verify(pk, m2, sig) {
		return nil, errors.New("paseto: invalid token signature")
	}

	return m, nil
}
