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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Builder_DefaultsInjected(t *testing.T) {
	clock := FixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	raw, err := NewBuilder(WithBuilderClock(clock)).Subject("user-1").Build()
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "user-1", decoded["sub"])
	assert.Equal(t, "2024-01-01T00:00:00Z", decoded["iat"])
	assert.Equal(t, "2024-01-01T00:00:00Z", decoded["nbf"])
	assert.Equal(t, "2024-01-01T01:00:00Z", decoded["exp"])
	assert.NotEmpty(t, decoded["jti"])
}

func Test_Builder_WithoutExpiration(t *testing.T) {
	clock := FixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	raw, err := NewBuilder(WithBuilderClock(clock)).WithoutExpiration().Build()
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	_, hasExp := decoded["exp"]
	assert.False(t, hasExp)
	_, hasIat := decoded["iat"]
	assert.True(t, hasIat)
}

func Test_Builder_RejectsReservedClaimViaSet(t *testing.T) {
	_, err := NewBuilder().Set("exp", "2024-01-01T00:00:00Z").Build()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrReservedClaim))
}

func Test_Builder_LaterSetterOverridesEarlier(t *testing.T) {
	raw, err := NewBuilder().Issuer("a").Issuer("b").Build()
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "b", decoded["iss"])
}

func Test_Builder_OrderedOutput(t *testing.T) {
	raw, err := NewBuilder().WithoutExpiration().Issuer("iss-1").Subject("sub-1").Set("role", "admin").Build()
	assert.NoError(t, err)

	// iss and sub were set before the defaults (iat/nbf/jti) are appended;
	// the custom "role" claim, set last, should trail them.
	assert.Contains(t, string(raw), `"iss":"iss-1"`)
	issIdx := indexOf(string(raw), `"iss"`)
	subIdx := indexOf(string(raw), `"sub"`)
	roleIdx := indexOf(string(raw), `"role"`)
	assert.True(t, issIdx < subIdx)
	assert.True(t, subIdx < roleIdx)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
