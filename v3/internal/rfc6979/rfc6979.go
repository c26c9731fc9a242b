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

// Package rfc6979 implements the deterministic nonce construction from
// RFC 6979 section 3.2 for ECDSA, so that signing the same message with the
// same key always produces the same signature.
package rfc6979

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"hash"
	"math/big"
)

// SignECDSA signs the given digest with priv, deriving the ECDSA nonce (k)
// deterministically from the private key and the digest per RFC 6979 section
// 3.2, using alg as the HMAC-DRBG hash function. The s component is returned
// as computed (it is not normalized to the low half of the curve order), so
// the output matches other RFC 6979 signers byte for byte.
func SignECDSA(priv *ecdsa.PrivateKey, digest []byte, alg func() hash.Hash) (r, s *big.Int) {
	c := priv.Curve
	n := c.Params().N
	if n.Sign() == 0 {
		return nil, nil
	}

	qlen := n.BitLen()
	holen := alg().Size()

	h1 := bits2octets(digest, n, qlen, holen)
	x := int2octets(priv.D, holen)

	drbg := newDRBG(alg, x, h1)
	e := hashToInt(digest, c)

	for {
		k := drbg.generate(qlen)
		if k.Sign() == 0 || k.Cmp(n) >= 0 {
			continue
		}

		rx, _ := c.ScalarBaseMult(k.Bytes())
		r = new(big.Int).Mod(rx, n)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, n)
		if kInv == nil {
			continue
		}
		s = new(big.Int).Mul(r, priv.D)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return r, s
	}
}

// hmacDRBG is the HMAC_DRBG construction described in RFC 6979 section 3.2,
// steps a through h. generate() can be called repeatedly to produce
// successive candidate nonces, advancing the internal state each time.
type hmacDRBG struct {
	alg func() hash.Hash
	k   []byte
	v   []byte
}

func newDRBG(alg func() hash.Hash, x, h1 []byte) *hmacDRBG {
	holen := alg().Size()

	v := make([]byte, holen)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, holen)

	mac := hmac.New(alg, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(x)
	mac.Write(h1)
	k = mac.Sum(nil)

	mac = hmac.New(alg, k)
	mac.Write(v)
	v = mac.Sum(nil)

	mac = hmac.New(alg, k)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(x)
	mac.Write(h1)
	k = mac.Sum(nil)

	mac = hmac.New(alg, k)
	mac.Write(v)
	v = mac.Sum(nil)

	return &hmacDRBG{alg: alg, k: k, v: v}
}

func (d *hmacDRBG) generate(qlen int) *big.Int {
	var t []byte
	for len(t)*8 < qlen {
		mac := hmac.New(d.alg, d.k)
		mac.Write(d.v)
		d.v = mac.Sum(nil)
		t = append(t, d.v...)
	}
	k := bits2int(t, qlen)

	// Advance K/V in case this candidate is rejected and generate() is
	// called again for the same message.
	mac := hmac.New(d.alg, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x00})
	d.k = mac.Sum(nil)

	mac = hmac.New(d.alg, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	return k
}

func bits2int(data []byte, qlen int) *big.Int {
	x := new(big.Int).SetBytes(data)
	if blen := len(data) * 8; blen > qlen {
		x.Rsh(x, uint(blen-qlen))
	}
	return x
}

func bits2octets(h1 []byte, n *big.Int, qlen, holen int) []byte {
	z1 := bits2int(h1, qlen)
	z2 := new(big.Int).Mod(z1, n)
	return int2octets(z2, holen)
}

func int2octets(x *big.Int, rlen int) []byte {
	b := x.Bytes()
	switch {
	case len(b) == rlen:
		return b
	case len(b) > rlen:
		return b[len(b)-rlen:]
	default:
		out := make([]byte, rlen)
		copy(out[rlen-len(b):], b)
		return out
	}
}

// hashToInt mirrors crypto/ecdsa's own digest-to-scalar conversion: truncate
// to the curve order's byte length, then shift away any excess bits.
func hashToInt(digest []byte, c elliptic.Curve) *big.Int {
	orderBits := c.Params().N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	ret := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
