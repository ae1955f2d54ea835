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

package message

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	errNoRoundTrip = errors.New("invalid byte sequence")
	errInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// Lookup returns the character encoding with the given name.
// Both IANA names and the labels used by web browsers are recognised.
// Case is ignored.
//
// The "replacement" encoding of the WHATWG standard is not supported,
// since it cannot represent any text.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil && enc != encoding.Replacement {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != encoding.Replacement {
		return enc, nil
	}
	return nil, fmt.Errorf("message: unsupported character encoding %q", name)
}

// Name returns a human readable name for enc.
// Where available, this is the preferred MIME name.
func Name(enc encoding.Encoding) string {
	for _, index := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if name, err := index.Name(enc); err == nil && name != "" {
			return name
		}
	}
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	if s, ok := enc.(fmt.Stringer); ok {
		return s.String()
	}
	return "unknown encoding"
}

// Names returns the sorted list of encoding names known to [Lookup].
func Names() []string {
	registryOnce.Do(buildRegistry)
	keys := maps.Keys(registry)
	slices.Sort(keys)
	return keys
}

var (
	registry     map[string]encoding.Encoding
	registryOnce sync.Once
)

func buildRegistry() {
	registry = make(map[string]encoding.Encoding)
	all := slices.Concat(unicode.All, charmap.All)
	for _, enc := range all {
		name := Name(enc)
		if _, err := Lookup(name); err != nil {
			continue
		}
		registry[name] = enc
	}
}

// encode converts s to bytes.  The encoders in x/text silently replace
// invalid UTF-8 by U+FFFD, so s is checked first.
func encode(enc encoding.Encoding, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, &EncodingError{Encoding: Name(enc), Err: errInvalidUTF8}
	}
	buf, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &EncodingError{Encoding: Name(enc), Err: err}
	}
	return buf, nil
}

// decode converts buf to a string.  Decoders in x/text replace invalid
// input by U+FFFD instead of failing, so the result is re-encoded and
// compared against buf.
func decode(enc encoding.Encoding, buf []byte) (string, error) {
	text, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return "", &DecodingError{Encoding: Name(enc), Err: err}
	}
	check, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return "", &DecodingError{Encoding: Name(enc), Err: err}
	}
	if !bytes.Equal(check, buf) {
		return "", &DecodingError{Encoding: Name(enc), Err: errNoRoundTrip}
	}
	return string(text), nil
}
