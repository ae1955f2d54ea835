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

// Package message encrypts and decrypts text using RC4.
//
// Text is converted to bytes using an explicit character encoding before
// it is passed to the cipher.  The same encoding is used for the key and
// for the message.  Encryption and decryption must use the same options,
// otherwise non-ASCII text does not round trip.
package message

import (
	"errors"

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/rc4"
)

// Options control how text is converted to bytes.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Encoding is the character encoding used for the key and the
	// message.  If this is nil, UTF-8 is used.
	Encoding encoding.Encoding

	// PrepareKey, if set, normalises the key text using the SASLprep
	// profile of stringprep (RFC 4013) before it is encoded.  This maps
	// equivalent spellings of a key, for example different Unicode
	// normalisation forms, to the same bytes.
	PrepareKey bool
}

// ErrInvalidKey indicates that the key text was rejected by SASLprep.
var ErrInvalidKey = errors.New("message: key contains prohibited characters")

func (opt *Options) encoding() encoding.Encoding {
	if opt == nil || opt.Encoding == nil {
		return unicode.UTF8
	}
	return opt.Encoding
}

// Encrypt encrypts msg using the given key.
func Encrypt(msg, key string, opt *Options) ([]byte, error) {
	c, err := newCipher(key, opt)
	if err != nil {
		return nil, err
	}
	defer c.Reset()

	plain, err := encode(opt.encoding(), msg)
	if err != nil {
		return nil, err
	}
	defer clear(plain)

	return c.Crypt(plain), nil
}

// Decrypt decrypts ciphertext using the given key.
//
// If the decrypted bytes are not valid text in the chosen encoding,
// a [*DecodingError] is returned.  This normally indicates a wrong key
// or a corrupted ciphertext.
func Decrypt(ciphertext []byte, key string, opt *Options) (string, error) {
	c, err := newCipher(key, opt)
	if err != nil {
		return "", err
	}
	defer c.Reset()

	plain := c.Crypt(ciphertext)
	defer clear(plain)

	return decode(opt.encoding(), plain)
}

// KeyBytes returns the key text in the form used by the cipher.
// The key length limits of [rc4.Cipher.SetKey] apply to the length
// of the returned slice, not to the number of characters in key.
func KeyBytes(key string, opt *Options) ([]byte, error) {
	if opt != nil && opt.PrepareKey {
		prepped, err := stringprep.SASLprep.Prepare(key)
		if err != nil {
			return nil, ErrInvalidKey
		}
		key = prepped
	}
	return encode(opt.encoding(), key)
}

func newCipher(key string, opt *Options) (*rc4.Cipher, error) {
	keyBytes, err := KeyBytes(key, opt)
	if err != nil {
		return nil, err
	}
	defer clear(keyBytes)

	return rc4.NewCipher(keyBytes)
}
