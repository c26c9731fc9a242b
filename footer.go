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
	"encoding/base64"
	"fmt"
	"strings"
)

// UntrustedFooterPeek extracts a token's footer WITHOUT verifying the token
// in any way: no MAC or signature is checked, and the returned bytes must
// not be trusted for anything beyond picking which key to use to actually
// decrypt/verify the token (e.g. a kid embedded in the footer). Every
// kernel's Decrypt/Verify already splits the footer off this same way before
// it authenticates the rest of the token; this exposes that split on its
// own.
func UntrustedFooterPeek(token string) ([]byte, error) {
	parts := strings.Split(token, ".")
	switch len(parts) {
	case 3:
		// version.purpose.payload, no footer.
		return nil, nil
	case 4:
		footer, err := base64.RawURLEncoding.DecodeString(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: footer has invalid encoding: %v", ErrInvalidToken, err)
		}
		return footer, nil
	default:
		return nil, ErrInvalidToken
	}
}
