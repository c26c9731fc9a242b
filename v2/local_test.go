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
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// https://github.com/paseto-standard/test-vectors/blob/master/v2.json
func Test_Paseto_LocalVector(t *testing.T) {
	testCases := []struct {
		name       string
		expectFail bool
		key        string
		seed       string
		token      string
		payload    []byte
		footer     []byte
	}{
		{
			name:    "2-E-1",
			key:     "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f",
			seed:    "000000000000000000000000000000000000000000000000000000000000",
			token:   "v2.local.gKom2-BPj7Kf6aPJ6YnwQY1FREr_pFzVVj5wb-3fYpoLGYUBEXyad0KnkkqaCOWpB79YcZinvdlHarxVPTYZgh0r7FlRgehf8MmjvtGAf8quYE3JXodxPrCtdapHQqwJ1On8K1ku4X4Vl_5Lcw",
			payload: []byte(`{"data":"this is a secret message","exp":"2022-01-01T00:00:00+00:00"}`),
			footer:  []byte(""),
		},
		{
			name:    "2-E-2",
			key:     "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f",
			seed:    "000000000000000000000000000000000000000000000000000000000000",
			token:   "v2.local.sJ9KUPujugZplJrI4VQZl3EIjw2KS1UMLZsVH6d-JKk73JhvoJd8rbrWMsCO3YlutNaSluonPl2Bawwi_3zEtFcJh2wqovrkh1mp9vX5ZKID_cCmzy2VxVDql8-YL3KcoT-2MU0WY_QGCQrIKQ",
			payload: []byte(`{"data":"this is a hidden message","exp":"2022-01-01T00:00:00+00:00"}`),
			footer:  []byte(""),
		},
	}

	for _, tc := range testCases {
		testCase := tc
		t.Run(testCase.name, func(t *testing.T) {
			keyRaw, err := hex.DecodeString(testCase.key)
			assert.NoError(t, err)
			key, err := LocalKeyFromSeed(keyRaw)
			assert.NoError(t, err)

			seed, err := hex.DecodeString(testCase.seed)
			assert.NoError(t, err)

			token, err := Encrypt(bytes.NewReader(seed), key, testCase.payload, testCase.footer)
			if (err != nil) != testCase.expectFail {
				t.Errorf("error during the encrypt call, error = %v, wantErr %v", err, testCase.expectFail)
				return
			}
			assert.Equal(t, testCase.token, token)

			message, err := Decrypt(key, testCase.token, testCase.footer)
			if (err != nil) != testCase.expectFail {
				t.Errorf("error during the decrypt call, error = %v, wantErr %v", err, testCase.expectFail)
				return
			}
			assert.Equal(t, testCase.payload, message)
		})
	}
}

func Test_Paseto_Local_EncryptDecrypt(t *testing.T) {
	keyRaw := [32]byte{}
	_, err := hex.Decode(keyRaw[:], []byte("707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"))
	assert.NoError(t, err)
	key, err := LocalKeyFromSeed(keyRaw[:])
	assert.NoError(t, err)

	m := []byte(`{"data":"this is a signed message","exp":"2022-01-01T00:00:00+00:00"}`)
	f := []byte(`{"kid":"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN"}`)

	token1, err := Encrypt(rand.Reader, key, m, f)
	assert.NoError(t, err)
	token2, err := Encrypt(rand.Reader, key, m, f)
	assert.NoError(t, err)
	assert.NotEqual(t, token1, token2)

	p, err := Decrypt(key, token1, f)
	assert.NoError(t, err)
	assert.Equal(t, m, p)
}

func Test_Paseto_Local_TamperedCiphertextFailsAuth(t *testing.T) {
	keyRaw := [32]byte{}
	_, err := hex.Decode(keyRaw[:], []byte("707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"))
	assert.NoError(t, err)
	key, err := LocalKeyFromSeed(keyRaw[:])
	assert.NoError(t, err)

	token, err := Encrypt(rand.Reader, key, []byte("message"), nil)
	assert.NoError(t, err)

	tampered := []byte(token)
	tampered[len(tampered)-2] ^= 0x01

	_, err = Decrypt(key, string(tampered), nil)
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------

func benchmarkEncrypt(key *LocalKey, m, f []byte, b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := Encrypt(rand.Reader, key, m, f)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Paseto_Encrypt(b *testing.B) {
	keyRaw := [32]byte{}
	_, err := hex.Decode(keyRaw[:], []byte("707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"))
	assert.NoError(b, err)
	key := LocalKey(keyRaw)

	m := []byte(`{"data":"this is a signed message","exp":"2022-01-01T00:00:00+00:00"}`)
	f := []byte(`{"kid":"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN"}`)

	b.ReportAllocs()
	b.ResetTimer()

	benchmarkEncrypt(&key, m, f, b)
}
