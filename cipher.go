// seehuhn.de/go/rc4 - an implementation of the RC4 stream cipher
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rc4

const (
	// MinKeyLen is the length of the shortest supported key, in bytes.
	MinKeyLen = 5

	// MaxKeyLen is the length of the longest supported key, in bytes.
	MaxKeyLen = sboxLen - 1

	sboxLen = 256
)

// A Cipher is an instance of RC4 using a particular key.
//
// A Cipher must not be used by more than one goroutine at a time.
// Call [Cipher.Reset] once the Cipher is no longer needed, to remove the
// key from memory.
type Cipher struct {
	key    [MaxKeyLen]byte
	keyLen int

	s [sboxLen]byte
}

// New returns a Cipher without a key.
//
// Until a key is installed using [Cipher.SetKey], the Cipher uses a key
// which consists of MaxKeyLen zero bytes.
func New() *Cipher {
	return &Cipher{keyLen: MaxKeyLen}
}

// NewCipher returns a Cipher which uses the given key.
// The key must be between MinKeyLen and MaxKeyLen bytes long.
func NewCipher(key []byte) (*Cipher, error) {
	c := New()
	err := c.SetKey(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetKey replaces the key of the Cipher.
// If the key has an invalid length, a [*KeyLengthError] is returned
// and the previous key remains in place.
func (c *Cipher) SetKey(key []byte) error {
	if len(key) < MinKeyLen || len(key) > MaxKeyLen {
		return &KeyLengthError{Min: MinKeyLen, Max: MaxKeyLen, Got: len(key)}
	}

	n := copy(c.key[:], key)
	clear(c.key[n:])
	c.keyLen = n
	return nil
}

// KeyLen returns the length of the current key in bytes.
func (c *Cipher) KeyLen() int {
	return c.keyLen
}

// Crypt returns the result of XORing msg with the key stream.
// The same method is used for encryption and decryption.
//
// The key stream is restarted on every call, so msg must contain the
// complete message.  The returned slice has the same length as msg.
func (c *Cipher) Crypt(msg []byte) []byte {
	ksa(c.key[:c.keyLen], &c.s)

	out := make([]byte, len(msg))
	var i, j uint8
	for n, v := range msg {
		i++
		x := c.s[i]
		j += x
		y := c.s[j]
		c.s[i], c.s[j] = y, x
		out[n] = v ^ c.s[uint8(x+y)]
	}
	return out
}

// Reset overwrites the key and the internal state of the Cipher with zeros.
// Afterwards, the Cipher is in the same state as one returned by [New].
func (c *Cipher) Reset() {
	clear(c.key[:])
	clear(c.s[:])
	c.keyLen = MaxKeyLen
}

// ksa fills s with the permutation derived from key.
func ksa(key []byte, s *[sboxLen]byte) {
	for i := range s {
		s[i] = uint8(i)
	}

	var j uint8
	k := len(key)
	for i := 0; i < sboxLen; i++ {
		j += s[i] + key[i%k]
		s[i], s[j] = s[j], s[i]
	}
}
