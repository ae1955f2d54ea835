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

// Rc4crypt encrypts and decrypts text using the RC4 stream cipher.
//
// Usage:
//
//	rc4crypt encrypt [options] [message]
//	rc4crypt decrypt [options] [ciphertext]
//	rc4crypt charsets
//
// The key is taken from the -key flag, from the RC4_KEY environment
// variable, or read from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const version = "0.1.0"

func main() {
	level := hclog.LevelFromString(os.Getenv("RC4_LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "rc4crypt",
		Level:  level,
		Output: os.Stderr,
	})

	ui := &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}

	c := cli.NewCLI("rc4crypt", version)
	c.Args = os.Args[1:]
	c.Commands = commands(ui, logger)

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}

func commands(ui cli.Ui, logger hclog.Logger) map[string]cli.CommandFactory {
	base := func(name string) baseCommand {
		return baseCommand{
			ui:      ui,
			logger:  logger.Named(name),
			stdin:   os.Stdin,
			readKey: readKeyFromTerminal,
		}
	}
	return map[string]cli.CommandFactory{
		"encrypt": func() (cli.Command, error) {
			return &EncryptCommand{baseCommand: base("encrypt")}, nil
		},
		"decrypt": func() (cli.Command, error) {
			return &DecryptCommand{baseCommand: base("decrypt")}, nil
		},
		"charsets": func() (cli.Command, error) {
			return &CharsetsCommand{ui: ui}, nil
		},
	}
}
