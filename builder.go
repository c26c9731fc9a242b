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

import "github.com/ordible/paseto/claims"

// Builder assembles a claim set and encrypts/signs it with key in a single
// call, dispatching to whichever kernel key.Version/key.Purpose name.
type Builder struct {
	key      Key
	claims   *claims.Builder
	footer   []byte
	implicit []byte
}

// NewBuilder creates a Builder bound to key. Additional claims.BuilderOption
// values configure the underlying claim set (clock, TTL, ...).
func NewBuilder(key Key, opts ...claims.BuilderOption) *Builder {
	return &Builder{
		key:    key,
		claims: claims.NewBuilder(opts...),
	}
}

// Claims exposes the underlying claim builder for setting reserved and
// custom claims before Build.
func (b *Builder) Claims() *claims.Builder {
	return b.claims
}

// SetFooter attaches a footer, which is authenticated but not encrypted.
func (b *Builder) SetFooter(f []byte) *Builder {
	b.footer = f
	return b
}

// SetImplicitAssertion attaches an implicit assertion. Only meaningful for
// Version3/Version4 keys; Build fails if set on a Version1/Version2 key.
func (b *Builder) SetImplicitAssertion(i []byte) *Builder {
	b.implicit = i
	return b
}

// Build serializes the accumulated claims and runs the encrypt/sign
// primitive matching the bound key, returning the finished token.
func (b *Builder) Build() (string, error) {
	payload, err := b.claims.Build()
	if err != nil {
		return "", err
	}
	return encode(b.key, payload, b.footer, b.implicit)
}
