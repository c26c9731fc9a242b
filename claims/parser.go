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

import (
	"encoding/json"
	"fmt"
	"time"
)

// Claims is the decoded, still-raw claim set returned by Parse. Use the
// String/Time/Unmarshal helpers, or ValidateClaim predicates, to pull typed
// values out of it.
type Claims map[string]json.RawMessage

// String decodes a claim as a JSON string.
func (c Claims) String(name string) (string, bool, error) {
	raw, ok := c[name]
	if !ok {
		return "", false, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", true, fmt.Errorf("claims: %q is not a string: %w", name, err)
	}
	return v, true, nil
}

// Time decodes a claim as an RFC 3339 timestamp string.
func (c Claims) Time(name string) (time.Time, bool, error) {
	s, ok, err := c.String(name)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, true, fmt.Errorf("claims: %q is not an RFC3339 timestamp: %w", name, err)
	}
	return t, true, nil
}

// Predicate validates a claim's raw JSON value.
type Predicate func(raw json.RawMessage) error

// Parser validates a decoded claim payload against caller-supplied
// expectations. A Parser carries no secret material: the footer and implicit
// assertion it holds are handed to the Core decrypt/verify call, which binds
// them into the MAC or signature; Parse itself only inspects the payload
// returned once that cryptographic check has already succeeded.
type Parser struct {
	footer       []byte
	implicit     []byte
	allowNoExp   bool
	clock        Clock
	validations  []namedPredicate
}

type namedPredicate struct {
	name string
	fn   Predicate
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserClock overrides the clock used to evaluate exp/nbf. Defaults to
// SystemClock.
func WithParserClock(c Clock) ParserOption {
	return func(p *Parser) { p.clock = c }
}

// AllowNoExpiration disables the requirement that exp be present. Use only
// for tokens explicitly built with Builder.WithoutExpiration.
func AllowNoExpiration() ParserOption {
	return func(p *Parser) { p.allowNoExp = true }
}

// WithFooter records the footer expected to be bound into the token. The
// caller is responsible for passing Footer() to the Core decrypt/verify call;
// Parser does not perform the comparison itself since the footer is
// authenticated by Core, not by the claims layer.
func WithFooter(f []byte) ParserOption {
	return func(p *Parser) { p.footer = f }
}

// WithImplicitAssertion records the implicit assertion expected to be bound
// into the token (v3/v4 only). See WithFooter for why Parser only stores it.
func WithImplicitAssertion(i []byte) ParserOption {
	return func(p *Parser) { p.implicit = i }
}

// CheckClaim requires the named claim to be present and equal to expected.
func CheckClaim(name string, expected interface{}) ParserOption {
	return func(p *Parser) {
		p.validations = append(p.validations, namedPredicate{
			name: name,
			fn: func(raw json.RawMessage) error {
				wantRaw, err := json.Marshal(expected)
				if err != nil {
					return fmt.Errorf("claims: unable to encode expected value for %q: %w", name, err)
				}
				var want, got interface{}
				if err := json.Unmarshal(wantRaw, &want); err != nil {
					return err
				}
				if err := json.Unmarshal(raw, &got); err != nil {
					return fmt.Errorf("claims: %q: %w", name, err)
				}
				if !jsonEqual(want, got) {
					return fmt.Errorf("%w: %q", ErrClaimMismatch, name)
				}
				return nil
			},
		})
	}
}

// ValidateClaim requires the named claim to be present and to satisfy fn.
func ValidateClaim(name string, fn Predicate) ParserOption {
	return func(p *Parser) {
		p.validations = append(p.validations, namedPredicate{name: name, fn: fn})
	}
}

// NewParser creates a claims Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{clock: SystemClock{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Footer returns the footer the caller should pass to Core's decrypt/verify.
func (p *Parser) Footer() []byte {
	return p.footer
}

// ImplicitAssertion returns the implicit assertion the caller should pass to
// Core's decrypt/verify.
func (p *Parser) ImplicitAssertion() []byte {
	return p.implicit
}

// Parse decodes an already-authenticated PASETO payload (the output of a
// Core decrypt/verify call) into Claims, enforcing exp/nbf and any
// registered CheckClaim/ValidateClaim expectations.
func (p *Parser) Parse(payload []byte) (Claims, error) {
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		if err == nil {
			err = ErrInvalidPayload
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	now := p.clock.Now()

	if !p.allowNoExp {
		exp, ok, err := claims.Time("exp")
		if err != nil {
			return nil, ErrInvalidExpiration
		}
		if !ok {
			return nil, fmt.Errorf("%w: exp", ErrMissingClaim)
		}
		if !exp.After(now) {
			return nil, ErrTokenExpired
		}
	}

	if _, ok, err := claims.Time("iat"); ok && err != nil {
		return nil, fmt.Errorf("%w: iat", ErrInvalidTimestamp)
	}

	if nbf, ok, err := claims.Time("nbf"); ok {
		if err != nil {
			return nil, fmt.Errorf("%w: nbf", ErrInvalidTimestamp)
		}
		if now.Before(nbf) {
			return nil, ErrTokenNotYetValid
		}
	}

	for _, v := range p.validations {
		raw, ok := claims[v.name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClaim, v.name)
		}
		if err := v.fn(raw); err != nil {
			return nil, err
		}
	}

	return claims, nil
}

func jsonEqual(a, b interface{}) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}
