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

import "errors"

var (
	// ErrUnsupportedVersion is raised when a Version value isn't one of
	// Version1..Version4.
	ErrUnsupportedVersion = errors.New("paseto: unsupported version")

	// ErrUnsupportedPurpose is raised when a Purpose value isn't Local or
	// Public.
	ErrUnsupportedPurpose = errors.New("paseto: unsupported purpose")

	// ErrKeyMaterialMismatch is raised when the Go type backing a Key
	// doesn't match what its Version/Purpose requires (e.g. an ed25519 key
	// handed to a v3 Builder).
	ErrKeyMaterialMismatch = errors.New("paseto: key material does not match version/purpose")

	// ErrImplicitAssertionUnsupported is raised when a non-empty implicit
	// assertion is used with v1 or v2, which have no such concept.
	ErrImplicitAssertionUnsupported = errors.New("paseto: implicit assertions are not supported by this version")

	// ErrInvalidToken is raised by UntrustedFooterPeek when a token doesn't
	// have the expected dot-separated shape, and by the core dispatch for
	// every decrypt or verify failure (bad encoding, footer, MAC or
	// signature alike).
	ErrInvalidToken = errors.New("paseto: invalid token")
)
