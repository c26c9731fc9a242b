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
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/ordible/paseto/internal/common"
)

// GenerateLocalKey generates a key for local encryption.
func GenerateLocalKey(r io.Reader) (*LocalKey, error) {
	var key LocalKey
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return nil, fmt.Errorf("paseto: unable to generate a random key: %w", err)
	}

	return &key, nil
}

// LocalKeyFromSeed creates a local key from given input data.
func LocalKeyFromSeed(seed []byte) (*LocalKey, error) {
	if len(seed) < KeyLength {
		return nil, fmt.Errorf("paseto: invalid seed length, it must be %d bytes long at least", KeyLength)
	}

	var key LocalKey
	copy(key[:], seed[:KeyLength])

	return &key, nil
}

// Encrypt is the PASETO v2 symmetric encryption primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#encrypt
func Encrypt(r io.Reader, key *LocalKey, m, f []byte) (string, error) {
	if key == nil {
		return "", errors.New("paseto: key is nil")
	}
	if len(key) != KeyLength {
		return "", fmt.Errorf("paseto: invalid key length, it must be %d bytes long", KeyLength)
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return "", fmt.Errorf("paseto: unable to initialize AEAD: %w", err)
	}

	var seed [nonceLength]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return "", fmt.Errorf("paseto: unable to generate random seed: %w", err)
	}

	nonce, err := deriveNonce(seed[:], m)
	if err != nil {
		return "", fmt.Errorf("paseto: unable to derive nonce: %w", err)
	}

	preAuth := common.PreAuthenticationEncoding([]byte(LocalPrefix), nonce, f)

	body := aead.Seal(nil, nonce, m, preAuth)

	nc := make([]byte, 0, len(nonce)+len(body))
	nc = append(nc, nonce...)
	nc = append(nc, body...)

	tokenLen := base64.RawURLEncoding.EncodedLen(len(nc))
	footerLen := 0
	if len(f) > 0 {
		footerLen = base64.RawURLEncoding.EncodedLen(len(f)) + 1
		tokenLen += footerLen
	}

	final := make([]byte, len(LocalPrefix)+tokenLen)
	copy(final, LocalPrefix)
	base64.RawURLEncoding.Encode(final[len(LocalPrefix):], nc)

	if len(f) > 0 {
		final[len(LocalPrefix)+tokenLen-footerLen] = '.'
		base64.RawURLEncoding.Encode(final[len(LocalPrefix)+tokenLen-footerLen+1:], f)
	}

	return string(final), nil
}

// Decrypt is the PASETO v2 symmetric decryption primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#decrypt
func Decrypt(key *LocalKey, token string, f []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.New("paseto: key is nil")
	}
	if len(key) != KeyLength {
		return nil, fmt.Errorf("paseto: invalid key length, it must be %d bytes long", KeyLength)
	}
	if token == "" {
		return nil, errors.New("paseto: token is blank")
	}

	rawToken := []byte(token)
	if !bytes.HasPrefix(rawToken, []byte(LocalPrefix)) {
		return nil, errors.New("paseto: invalid token")
	}
	rawToken = rawToken[len(LocalPrefix):]

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
	if len(raw) < nonceLength {
		return nil, errors.New("paseto: invalid token body")
	}

	nonce := raw[:nonceLength]
	c := raw[nonceLength:]

	preAuth := common.PreAuthenticationEncoding([]byte(LocalPrefix), nonce, f)

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize AEAD: %w", err)
	}

	m, err := aead.Open(nil, nonce, c, preAuth)
	if err != nil {
		return nil, errors.New("paseto: invalid pre-authentication header")
	}

	return m, nil
}
