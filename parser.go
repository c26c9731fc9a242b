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

// Parser decrypts/verifies a token with key, then validates the resulting
// claim set, dispatching to whichever kernel key.Version/key.Purpose name.
type Parser struct {
	key      Key
	claims   *claims.Parser
	footer   []byte
	implicit []byte
}

// NewParser creates a Parser bound to key. Additional claims.ParserOption
// values (CheckClaim, ValidateClaim, AllowNoExpiration, WithParserClock)
// configure claim validation.
func NewParser(key Key, opts ...claims.ParserOption) *Parser {
	return &Parser{
		key:    key,
		claims: claims.NewParser(opts...),
	}
}

// SetFooter requires the token to carry exactly this footer. The comparison
// itself happens inside the decrypt/verify primitive, which binds the
// footer into the MAC or signature.
func (p *Parser) SetFooter(f []byte) *Parser {
	p.footer = f
	return p
}

// SetImplicitAssertion requires the token to have been bound with exactly
// this implicit assertion. Only meaningful for Version3/Version4 keys; Parse
// fails if set on a Version1/Version2 key.
func (p *Parser) SetImplicitAssertion(i []byte) *Parser {
	p.implicit = i
	return p
}

// Parse authenticates token against the bound key and footer/implicit
// assertion, then validates and returns its claim set.
func (p *Parser) Parse(token string) (claims.Claims, error) {
	payload, err := decode(p.key, token, p.footer, p.implicit)
	if err != nil {
		return nil, err
	}
	return p.claims.Parse(payload)
}
