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

// Package paseto is a façade over the v1, v2, v3 and v4 kernels: it adds the
// claim-aware Builder/Parser, a version/purpose-tagged Key so callers don't
// import a specific kernel package directly, and UntrustedFooterPeek for
// key-rotation lookups.
package paseto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/ordible/paseto/v1"
	"github.com/ordible/paseto/v2"
	"github.com/ordible/paseto/v3"
	"github.com/ordible/paseto/v4"
)

// Version identifies a PASETO protocol version.
type Version string

// Supported protocol versions.
const (
	Version1 Version = "v1"
	Version2 Version = "v2"
	Version3 Version = "v3"
	Version4 Version = "v4"
)

// Purpose identifies what a Key is used for.
type Purpose string

// Supported purposes.
const (
	// Local is symmetric encryption.
	Local Purpose = "local"
	// Public is asymmetric signing.
	Public Purpose = "public"
)

// Key is an opaque, version- and purpose-tagged key. It is produced by the
// Generate*/New* constructors below and consumed by Builder/Parser; callers
// never need to know the concrete Go crypto type backing a given version.
type Key struct {
	version  Version
	purpose  Purpose
	material interface{}
}

// Version reports the protocol version this key was constructed for.
func (k Key) Version() Version { return k.version }

// Purpose reports whether this key encrypts (Local) or signs (Public).
func (k Key) Purpose() Purpose { return k.purpose }

// Destroy overwrites the underlying symmetric key material with zero bytes.
// It has no effect on Public keys: Go's asymmetric private key types (e.g.
// *rsa.PrivateKey, *ecdsa.PrivateKey) hold their material in big.Int fields
// that are not safe to zero in place, so those are left to the garbage
// collector as usual.
func (k Key) Destroy() {
	switch lk := k.material.(type) {
	case *v1.LocalKey:
		lk.Zero()
	case *v2.LocalKey:
		lk.Zero()
	case *v3.LocalKey:
		lk.Zero()
	case *v4.LocalKey:
		lk.Zero()
	}
}

// GenerateLocalKey draws a fresh random symmetric key for the given version.
func GenerateLocalKey(version Version, r io.Reader) (Key, error) {
	switch version {
	case Version1:
		k, err := v1.GenerateLocalKey(r)
		return Key{version: version, purpose: Local, material: k}, err
	case Version2:
		k, err := v2.GenerateLocalKey(r)
		return Key{version: version, purpose: Local, material: k}, err
	case Version3:
		k, err := v3.GenerateLocalKey(r)
		return Key{version: version, purpose: Local, material: k}, err
	case Version4:
		k, err := v4.GenerateLocalKey(r)
		return Key{version: version, purpose: Local, material: k}, err
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
}

// LocalKeyFromSeed derives a symmetric key deterministically from seed, for
// the given version. Intended for test fixtures and conformance vectors.
func LocalKeyFromSeed(version Version, seed []byte) (Key, error) {
	switch version {
	case Version1:
		k, err := v1.LocalKeyFromSeed(seed)
		return Key{version: version, purpose: Local, material: k}, err
	case Version2:
		k, err := v2.LocalKeyFromSeed(seed)
		return Key{version: version, purpose: Local, material: k}, err
	case Version3:
		k, err := v3.LocalKeyFromSeed(seed)
		return Key{version: version, purpose: Local, material: k}, err
	case Version4:
		k, err := v4.LocalKeyFromSeed(seed)
		return Key{version: version, purpose: Local, material: k}, err
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
}

// NewPrivateKey wraps a signing key for the given version: *rsa.PrivateKey
// for Version1, ed25519.PrivateKey for Version2/Version4, *ecdsa.PrivateKey
// (P-384) for Version3.
func NewPrivateKey(version Version, private interface{}) (Key, error) {
	switch version {
	case Version1:
		if _, ok := private.(*rsa.PrivateKey); !ok {
			return Key{}, fmt.Errorf("%w: v1.public requires *rsa.PrivateKey", ErrKeyMaterialMismatch)
		}
	case Version2, Version4:
		if _, ok := private.(ed25519.PrivateKey); !ok {
			return Key{}, fmt.Errorf("%w: %s.public requires ed25519.PrivateKey", ErrKeyMaterialMismatch, version)
		}
	case Version3:
		if _, ok := private.(*ecdsa.PrivateKey); !ok {
			return Key{}, fmt.Errorf("%w: v3.public requires *ecdsa.PrivateKey", ErrKeyMaterialMismatch)
		}
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
	return Key{version: version, purpose: Public, material: private}, nil
}

// NewPublicKey wraps a verification key for the given version: *rsa.PublicKey
// for Version1, ed25519.PublicKey for Version2/Version4, *ecdsa.PublicKey
// (P-384) for Version3.
func NewPublicKey(version Version, public interface{}) (Key, error) {
	switch version {
	case Version1:
		if _, ok := public.(*rsa.PublicKey); !ok {
			return Key{}, fmt.Errorf("%w: v1.public requires *rsa.PublicKey", ErrKeyMaterialMismatch)
		}
	case Version2, Version4:
		if _, ok := public.(ed25519.PublicKey); !ok {
			return Key{}, fmt.Errorf("%w: %s.public requires ed25519.PublicKey", ErrKeyMaterialMismatch, version)
		}
	case Version3:
		if _, ok := public.(*ecdsa.PublicKey); !ok {
			return Key{}, fmt.Errorf("%w: v3.public requires *ecdsa.PublicKey", ErrKeyMaterialMismatch)
		}
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
	return Key{version: version, purpose: Public, material: public}, nil
}
