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

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"

	"seehuhn.de/go/rc4"
	"seehuhn.de/go/rc4/message"
)

const (
	exitOK = iota
	exitUsage
	exitCrypt
)

const keyEnvVar = "RC4_KEY"

// baseCommand holds the flags shared by the encrypt and decrypt commands.
type baseCommand struct {
	ui      cli.Ui
	logger  hclog.Logger
	stdin   io.Reader
	readKey func() (string, error)

	flagKey      string
	flagCharset  string
	flagSASLprep bool
	flagIn       string
	flagOut      string
	flagHex      bool
	flagLogLevel string
}

func (c *baseCommand) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagKey, "key", "", "")
	f.StringVar(&c.flagCharset, "charset", "utf-8", "")
	f.BoolVar(&c.flagSASLprep, "saslprep", false, "")
	f.StringVar(&c.flagIn, "in", "", "")
	f.StringVar(&c.flagOut, "out", "", "")
	f.BoolVar(&c.flagHex, "hex", true, "")
	f.StringVar(&c.flagLogLevel, "log-level", "", "")
	return f
}

const sharedHelp = `
  -key=<string>
      The key, between 5 and 255 bytes after encoding.  If this is not
      given, the key is taken from the RC4_KEY environment variable or
      read from the terminal.

  -charset=<name>
      The character encoding used for the key and the message.
      The default is utf-8.  Run "rc4crypt charsets" for a list.

  -saslprep
      Normalise the key using SASLprep before encoding it.

  -in=<file>
      Read the input from the given file instead of the command line
      or standard input.

  -out=<file>
      Write the output to the given file instead of standard output.

  -hex
      Use hexadecimal for the ciphertext.  The default is true; use
      -hex=false for raw binary ciphertext.

  -log-level=<level>
      One of trace, debug, info, warn or error.
`

// parse parses the command line and validates the flags.  It returns the
// positional arguments together with the message options.
func (c *baseCommand) parse(f *flag.FlagSet, args []string) ([]string, *message.Options, error) {
	if err := f.Parse(args); err != nil {
		return nil, nil, err
	}

	var result *multierror.Error
	if c.flagLogLevel != "" {
		level := hclog.LevelFromString(c.flagLogLevel)
		if level == hclog.NoLevel {
			result = multierror.Append(result, fmt.Errorf("invalid log level %q", c.flagLogLevel))
		} else {
			c.logger.SetLevel(level)
		}
	}

	enc, err := message.Lookup(c.flagCharset)
	if err != nil {
		result = multierror.Append(result, err)
	}

	rest := f.Args()
	if c.flagIn != "" && len(rest) > 0 {
		result = multierror.Append(result, errors.New("-in cannot be combined with a message argument"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	opt := &message.Options{
		Encoding:   enc,
		PrepareKey: c.flagSASLprep,
	}
	c.logger.Debug("options parsed", "charset", message.Name(enc), "saslprep", c.flagSASLprep)
	return rest, opt, nil
}

// key returns the key text.
func (c *baseCommand) key() (string, error) {
	if c.flagKey != "" {
		return c.flagKey, nil
	}
	if key, ok := os.LookupEnv(keyEnvVar); ok && key != "" {
		c.logger.Debug("using key from environment", "variable", keyEnvVar)
		return key, nil
	}
	if c.readKey == nil {
		return "", errors.New("no key given")
	}
	return c.readKey()
}

// input returns the data to process.
func (c *baseCommand) input(args []string) ([]byte, error) {
	switch {
	case c.flagIn != "":
		return os.ReadFile(c.flagIn)
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	default:
		return io.ReadAll(c.stdin)
	}
}

// writeCiphertext writes ciphertext to the output file, or to the ui.
func (c *baseCommand) writeCiphertext(data []byte) error {
	if c.flagHex {
		data = []byte(hex.EncodeToString(data))
	}
	if c.flagOut != "" {
		return os.WriteFile(c.flagOut, data, 0o644)
	}
	if !c.flagHex {
		c.ui.Warn("writing binary ciphertext to the terminal")
	}
	c.ui.Output(string(data))
	return nil
}

// cryptBytes applies the cipher to data without character set conversion.
// The message options only affect how the key is converted to bytes.
func (c *baseCommand) cryptBytes(key string, opt *message.Options, data []byte) ([]byte, error) {
	keyBytes, err := message.KeyBytes(key, opt)
	if err != nil {
		return nil, err
	}
	defer clear(keyBytes)

	cipher, err := rc4.NewCipher(keyBytes)
	if err != nil {
		return nil, err
	}
	defer cipher.Reset()

	return cipher.Crypt(data), nil
}

// cryptExitCode maps an encryption or decryption error to an exit code.
// An invalid key is a usage error.
func cryptExitCode(err error) int {
	var lenErr *rc4.KeyLengthError
	if errors.As(err, &lenErr) {
		return exitUsage
	}
	return exitCrypt
}

// readCiphertext decodes the input of the decrypt command.
func (c *baseCommand) readCiphertext(data []byte) ([]byte, error) {
	if !c.flagHex {
		return data, nil
	}
	return hex.DecodeString(strings.TrimSpace(string(data)))
}

func readKeyFromTerminal() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no key given; use -key or set %s", keyEnvVar)
	}
	fmt.Fprint(os.Stderr, "key: ")
	buf, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
