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

package claims

import "errors"

var (
	// ErrReservedClaim is raised when a caller attempts to set a reserved
	// claim name through the generic Set path instead of its dedicated
	// constructor.
	ErrReservedClaim = errors.New("claims: reserved claim name, use the dedicated setter")

	// ErrInvalidPayload is raised when the decrypted/verified payload is not
	// a JSON object.
	ErrInvalidPayload = errors.New("claims: payload is not a JSON object")

	// ErrMissingClaim is raised when a required claim is absent.
	ErrMissingClaim = errors.New("claims: required claim is missing")

	// ErrInvalidExpiration is raised when the exp claim is present but is
	// not a valid RFC 3339 timestamp.
	ErrInvalidExpiration = errors.New("claims: exp claim is not a valid timestamp")

	// ErrInvalidTimestamp is raised when a non-exp timestamp claim (iat,
	// nbf) is present but is not a valid RFC 3339 timestamp.
	ErrInvalidTimestamp = errors.New("claims: claim is not a valid timestamp")

	// ErrTokenExpired is raised when exp is in the past relative to the
	// parser's clock.
	ErrTokenExpired = errors.New("claims: token has expired")

	// ErrTokenNotYetValid is raised when nbf is in the future relative to
	// the parser's clock.
	ErrTokenNotYetValid = errors.New("claims: token is not yet valid")

	// ErrClaimMismatch is raised by CheckClaim when the stored value
	// doesn't match the expected one.
	ErrClaimMismatch = errors.New("claims: claim value mismatch")
)
