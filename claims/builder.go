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
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// defaultTTL is the lifetime assigned to the exp default when the caller
// hasn't set one explicitly and hasn't opted out via WithoutExpiration.
const defaultTTL = 1 * time.Hour

var reservedClaims = map[string]struct{}{
	"iss": {}, "sub": {}, "aud": {}, "exp": {}, "nbf": {}, "iat": {}, "jti": {},
}

// Builder accumulates claims in insertion order and serializes them to a
// JSON object suitable for use as a PASETO message.
type Builder struct {
	order  []string
	values map[string]json.RawMessage

	clock        Clock
	ttl          time.Duration
	noExpiration bool
	err          error
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuilderClock overrides the clock used to compute default iat/nbf/exp
// values. Defaults to SystemClock.
func WithBuilderClock(c Clock) BuilderOption {
	return func(b *Builder) { b.clock = c }
}

// WithExpirationTTL overrides the lifetime used for the default exp claim.
// Defaults to one hour.
func WithExpirationTTL(d time.Duration) BuilderOption {
	return func(b *Builder) { b.ttl = d }
}

// NewBuilder creates a claim Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		values: map[string]json.RawMessage{},
		clock:  SystemClock{},
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) set(name string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		b.err = fmt.Errorf("claims: unable to encode claim %q: %w", name, err)
		return
	}
	if _, exists := b.values[name]; !exists {
		b.order = append(b.order, name)
	}
	b.values[name] = raw
}

// Set assigns a custom, non-reserved claim. Attempting to set a reserved
// claim name through Set fails the builder with ErrReservedClaim; use the
// dedicated setter instead.
func (b *Builder) Set(name string, value interface{}) *Builder {
	if _, reserved := reservedClaims[name]; reserved {
		b.err = fmt.Errorf("%w: %q", ErrReservedClaim, name)
		return b
	}
	b.set(name, value)
	return b
}

// Issuer sets the iss claim.
func (b *Builder) Issuer(v string) *Builder {
	b.set("iss", v)
	return b
}

// Subject sets the sub claim.
func (b *Builder) Subject(v string) *Builder {
	b.set("sub", v)
	return b
}

// Audience sets the aud claim.
func (b *Builder) Audience(v string) *Builder {
	b.set("aud", v)
	return b
}

// TokenID sets the jti claim. When never called, Build assigns a random one.
func (b *Builder) TokenID(v string) *Builder {
	b.set("jti", v)
	return b
}

// IssuedAt sets the iat claim, overriding the default.
func (b *Builder) IssuedAt(t time.Time) *Builder {
	b.set("iat", t.UTC().Format(time.RFC3339))
	return b
}

// NotBefore sets the nbf claim, overriding the default.
func (b *Builder) NotBefore(t time.Time) *Builder {
	b.set("nbf", t.UTC().Format(time.RFC3339))
	return b
}

// ExpiresAt sets the exp claim, overriding the default.
func (b *Builder) ExpiresAt(t time.Time) *Builder {
	b.set("exp", t.UTC().Format(time.RFC3339))
	return b
}

// WithoutExpiration acknowledges that the resulting token carries no exp
// claim. Without calling this, Build always injects one.
func (b *Builder) WithoutExpiration() *Builder {
	b.noExpiration = true
	return b
}

// Build finalizes the claim set: iat and nbf default to now, exp defaults to
// now+ttl unless WithoutExpiration was called, and jti defaults to a random
// UUID. The result is the ordered JSON object ready to hand to a Core
// encrypt/sign call.
func (b *Builder) Build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	now := b.clock.Now()
	if _, ok := b.values["iat"]; !ok {
		b.set("iat", now.UTC().Format(time.RFC3339))
	}
	if _, ok := b.values["nbf"]; !ok {
		b.set("nbf", now.UTC().Format(time.RFC3339))
	}
	if _, ok := b.values["exp"]; !ok && !b.noExpiration {
		b.set("exp", now.Add(b.ttl).UTC().Format(time.RFC3339))
	}
	if _, ok := b.values["jti"]; !ok {
		b.set("jti", uuid.NewString())
	}

	if b.err != nil {
		return nil, b.err
	}

	return marshalOrdered(b.order, b.values)
}

func marshalOrdered(order []string, values map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("claims: unable to encode claim name %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
