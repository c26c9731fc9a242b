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

package paseto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/ordible/paseto/v1"
	"github.com/ordible/paseto/v2"
	"github.com/ordible/paseto/v3"
	"github.com/ordible/paseto/v4"
)

// encode runs the encrypt/sign primitive matching key's version and purpose.
func encode(key Key, m, f, i []byte) (string, error) {
	switch key.purpose {
	case Local:
		return encodeLocal(key, m, f, i)
	case Public:
		return encodeSign(key, m, f, i)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPurpose, key.purpose)
	}
}

// decode runs the decrypt/verify primitive matching key's version and
// purpose, returning the authenticated payload.
func decode(key Key, token string, f, i []byte) ([]byte, error) {
	switch key.purpose {
	case Local:
		return decodeLocal(key, token, f, i)
	case Public:
		return decodeVerify(key, token, f, i)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPurpose, key.purpose)
	}
}

func encodeLocal(key Key, m, f, i []byte) (string, error) {
	switch key.version {
	case Version1:
		if len(i) > 0 {
			return "", ErrImplicitAssertionUnsupported
		}
		lk, ok := key.material.(*v1.LocalKey)
		if !ok {
			return "", fmt.Errorf("%w: v1.local", ErrKeyMaterialMismatch)
		}
		return v1.Encrypt(rand.Reader, lk, m, f)
	case Version2:
		if len(i) > 0 {
			return "", ErrImplicitAssertionUnsupported
		}
		lk, ok := key.material.(*v2.LocalKey)
		if !ok {
			return "", fmt.Errorf("%w: v2.local", ErrKeyMaterialMismatch)
		}
		return v2.Encrypt(rand.Reader, lk, m, f)
	case Version3:
		lk, ok := key.material.(*v3.LocalKey)
		if !ok {
			return "", fmt.Errorf("%w: v3.local", ErrKeyMaterialMismatch)
		}
		return v3.Encrypt(rand.Reader, lk, m, f, i)
	case Version4:
		lk, ok := key.material.(*v4.LocalKey)
		if !ok {
			return "", fmt.Errorf("%w: v4.local", ErrKeyMaterialMismatch)
		}
		return v4.Encrypt(rand.Reader, lk, m, f, i)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedVersion, key.version)
	}
}

func decodeLocal(key Key, token string, f, i []byte) ([]byte, error) {
	switch key.version {
	case Version1:
		if len(i) > 0 {
			return nil, ErrImplicitAssertionUnsupported
		}
		lk, ok := key.material.(*v1.LocalKey)
		if !ok {
			return nil, fmt.Errorf("%w: v1.local", ErrKeyMaterialMismatch)
		}
		return opaque(v1.Decrypt(lk, token, f))
	case Version2:
		if len(i) > 0 {
			return nil, ErrImplicitAssertionUnsupported
		}
		lk, ok := key.material.(*v2.LocalKey)
		if !ok {
			return nil, fmt.Errorf("%w: v2.local", ErrKeyMaterialMismatch)
		}
		return opaque(v2.Decrypt(lk, token, f))
	case Version3:
		lk, ok := key.material.(*v3.LocalKey)
		if !ok {
			return nil, fmt.Errorf("%w: v3.local", ErrKeyMaterialMismatch)
		}
		return opaque(v3.Decrypt(lk, token, f, i))
	case Version4:
		lk, ok := key.material.(*v4.LocalKey)
		if !ok {
			return nil, fmt.Errorf("%w: v4.local", ErrKeyMaterialMismatch)
		}
		return opaque(v4.Decrypt(lk, token, f, i))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, key.version)
	}
}

// opaque collapses a kernel's base64/shape/crypto failure into the single
// public ErrInvalidToken, so callers at the paseto package boundary can't
// distinguish a bad footer from a bad MAC from a malformed base64 body (all
// are just "invalid token") and kernel-internal error strings never leak
// out of the façade.
func opaque(payload []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("%w", ErrInvalidToken)
	}
	return payload, nil
}

func encodeSign(key Key, m, f, i []byte) (string, error) {
	switch key.version {
	case Version1:
		if len(i) > 0 {
			return "", ErrImplicitAssertionUnsupported
		}
		sk, ok := key.material.(*rsa.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: v1.public", ErrKeyMaterialMismatch)
		}
		return v1.Sign(m, sk, f)
	case Version2:
		if len(i) > 0 {
			return "", ErrImplicitAssertionUnsupported
		}
		sk, ok := key.material.(ed25519.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: v2.public", ErrKeyMaterialMismatch)
		}
		return v2.Sign(m, sk, f)
	case Version3:
		sk, ok := key.material.(*ecdsa.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: v3.public", ErrKeyMaterialMismatch)
		}
		return v3.Sign(m, sk, f, i)
	case Version4:
		sk, ok := key.material.(ed25519.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: v4.public", ErrKeyMaterialMismatch)
		}
		return v4.Sign(m, sk, f, i)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedVersion, key.version)
	}
}

func decodeVerify(key Key, token string, f, i []byte) ([]byte, error) {
	switch key.version {
	case Version1:
		if len(i) > 0 {
			return nil, ErrImplicitAssertionUnsupported
		}
		pk, ok := key.material.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: v1.public", ErrKeyMaterialMismatch)
		}
		return opaque(v1.Verify(token, pk, f))
	case Version2:
		if len(i) > 0 {
			return nil, ErrImplicitAssertionUnsupported
		}
		pk, ok := key.material.(ed25519.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: v2.public", ErrKeyMaterialMismatch)
		}
		return opaque(v2.Verify(token, pk, f))
	case Version3:
		pk, ok := key.material.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: v3.public", ErrKeyMaterialMismatch)
		}
		return opaque(v3.Verify(token, pk, f, i))
	case Version4:
		pk, ok := key.material.(ed25519.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: v4.public", ErrKeyMaterialMismatch)
		}
		return opaque(v4.Verify(token, pk, f, i))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, key.version)
	}
}
