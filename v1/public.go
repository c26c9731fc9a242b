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
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ordible/paseto/internal/common"
)

// rsaSignatureSize is the signature width for a 2048-bit RSA-PSS key.
const rsaSignatureSize = 256

// Sign a message (m) with the RSA private key (sk).
// PASETO v1 public signature primitive (RSA-PSS, SHA-384, MGF1).
func Sign(m []byte, sk *rsa.PrivateKey, f []byte) (string, error) {
	if sk == nil {
		return "", errors.New("paseto: unable to sign with a nil private key")
	}
	if sk.N.BitLen() != 2048 {
		return "", errors.New("paseto: v1.public requires a 2048-bit RSA key")
	}

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f)
	digest := sha512.Sum384(m2)

	sig, err := rsa.SignPSS(rand.Reader, sk, crypto.SHA384, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       crypto.SHA384,
	})
	if err != nil {
		return "", fmt.Errorf("paseto: unable to sign payload: %w", err)
	}

	body := make([]byte, 0, len(m)+len(sig))
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

// Verify a PASETO v1 public token against the RSA public key (pk).
func Verify(t string, pk *rsa.PublicKey, f []byte) ([]byte, error) {
	if pk == nil {
		return nil, errors.New("paseto: public key is nil")
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
	if len(raw) < rsaSignatureSize {
		return nil, errors.New("paseto: invalid token body")
	}

	m := raw[:len(raw)-rsaSignatureSize]
	sig := raw[len(raw)-rsaSignatureSize:]

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f)
	digest := sha512.Sum384(m2)

	if err := rsa.VerifyPSS(pk, crypto.SHA384, digest[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       crypto.SHA384,
	}); err != nil {
		return nil, errors.New("paseto: invalid token signature")
	}

	return m, nil
}
