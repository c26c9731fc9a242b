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

package v2

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Paseto_Public_SignVerify(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err)

	m := []byte(`{"data":"this is a signed message","exp":"2022-01-01T00:00:00+00:00"}`)
	f := []byte(`{"kid":"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN"}`)

	token, err := Sign(m, sk, f)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	payload, err := Verify(token, pk, f)
	assert.NoError(t, err)
	assert.Equal(t, m, payload)
}

func Test_Paseto_Public_FooterMismatch(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err)

	token, err := Sign([]byte("message"), sk, []byte("footer-a"))
	assert.NoError(t, err)

	_, err = Verify(token, pk, []byte("footer-b"))
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------

func benchmarkSign(m []byte, sk ed25519.PrivateKey, f []byte, b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := Sign(m, sk, f)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Paseto_Sign(b *testing.B) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(b, err)

	m := []byte(`{"data":"this is a signed message","exp":"2022-01-01T00:00:00+00:00"}`)
	f := []byte(`{"kid":"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN"}`)

	b.ReportAllocs()
	b.ResetTimer()

	benchmarkSign(m, sk, f, b)
}
