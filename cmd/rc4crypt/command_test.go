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
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"seehuhn.de/go/rc4"
)

func testBase(ui cli.Ui, stdin string) baseCommand {
	return baseCommand{
		ui:     ui,
		logger: hclog.NewNullLogger(),
		stdin:  strings.NewReader(stdin),
	}
}

func TestEncryptDecrypt(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	key := "This is pretty long key"
	message := "Hello, World!"

	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "")}
	code := enc.Run([]string{"-key", key, message})
	if code != exitOK {
		t.Fatalf("encrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	ciphertext := strings.TrimSpace(ui.OutputWriter.String())

	c, err := rc4.NewCipher([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	want := hex.EncodeToString(c.Crypt([]byte(message)))
	if ciphertext != want {
		t.Errorf("got %s, want %s", ciphertext, want)
	}

	ui = cli.NewMockUi()
	dec := &DecryptCommand{baseCommand: testBase(ui, ciphertext+"\n")}
	code = dec.Run([]string{"-key", key})
	if code != exitOK {
		t.Fatalf("decrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	if got := strings.TrimSuffix(ui.OutputWriter.String(), "\n"); got != message {
		t.Errorf("got %q, want %q", got, message)
	}
}

func TestKeyFromEnvironment(t *testing.T) {
	t.Setenv(keyEnvVar, "Это довольно длинный ключ")

	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "Привет, Мир!")}
	if code := enc.Run([]string{"-charset", "koi8-r"}); code != exitOK {
		t.Fatalf("encrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	ciphertext := strings.TrimSpace(ui.OutputWriter.String())

	ui = cli.NewMockUi()
	dec := &DecryptCommand{baseCommand: testBase(ui, "")}
	if code := dec.Run([]string{"-charset", "koi8-r", ciphertext}); code != exitOK {
		t.Fatalf("decrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	if got := strings.TrimSpace(ui.OutputWriter.String()); got != "Привет, Мир!" {
		t.Errorf("got %q", got)
	}
}

func TestBinaryFiles(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	dir := t.TempDir()
	plainFile := filepath.Join(dir, "plain.txt")
	cryptFile := filepath.Join(dir, "crypt.bin")
	outFile := filepath.Join(dir, "out.txt")
	message := []byte("file contents\nover two lines\n")
	if err := os.WriteFile(plainFile, message, 0o600); err != nil {
		t.Fatal(err)
	}

	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "")}
	code := enc.Run([]string{"-key", "12345", "-hex=false", "-in", plainFile, "-out", cryptFile})
	if code != exitOK {
		t.Fatalf("encrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	crypt, err := os.ReadFile(cryptFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(crypt) != len(message) || bytes.Equal(crypt, message) {
		t.Errorf("unexpected ciphertext %x", crypt)
	}

	dec := &DecryptCommand{baseCommand: testBase(ui, "")}
	code = dec.Run([]string{"-key", "12345", "-hex=false", "-in", cryptFile, "-out", outFile})
	if code != exitOK {
		t.Fatalf("decrypt: exit code %d: %s", code, ui.ErrorWriter.String())
	}
	out, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, message) {
		t.Errorf("got %q, want %q", out, message)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	dir := t.TempDir()
	plainFile := filepath.Join(dir, "plain.bin")
	cryptFile := filepath.Join(dir, "crypt.bin")
	outFile := filepath.Join(dir, "out.bin")
	data := []byte{0x00, 0x9c, 0xff, 0x10, 0xc3}
	if err := os.WriteFile(plainFile, data, 0o600); err != nil {
		t.Fatal(err)
	}
	key := "This is pretty long key"

	for _, hexFlag := range []string{"-hex=false", "-hex=true"} {
		ui := cli.NewMockUi()
		enc := &EncryptCommand{baseCommand: testBase(ui, "")}
		code := enc.Run([]string{"-key", key, hexFlag, "-in", plainFile, "-out", cryptFile})
		if code != exitOK {
			t.Fatalf("%s: encrypt: exit code %d: %s", hexFlag, code, ui.ErrorWriter.String())
		}

		dec := &DecryptCommand{baseCommand: testBase(ui, "")}
		code = dec.Run([]string{"-key", key, hexFlag, "-in", cryptFile, "-out", outFile})
		if code != exitOK {
			t.Fatalf("%s: decrypt: exit code %d: %s", hexFlag, code, ui.ErrorWriter.String())
		}
		out, err := os.ReadFile(outFile)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, data) {
			t.Errorf("%s: got %x, want %x", hexFlag, out, data)
		}
	}
}

func TestInvalidTextArgument(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "")}
	if code := enc.Run([]string{"-key", "12345", "a\xffb"}); code != exitCrypt {
		t.Errorf("exit code %d", code)
	}
	if ui.OutputWriter.String() != "" {
		t.Errorf("unexpected output %q", ui.OutputWriter.String())
	}
}

func TestInvalidKey(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	for _, key := range []string{"abc", strings.Repeat("a", 512)} {
		ui := cli.NewMockUi()
		enc := &EncryptCommand{baseCommand: testBase(ui, "")}
		if code := enc.Run([]string{"-key", key, "message"}); code != exitUsage {
			t.Errorf("key length %d: exit code %d", len(key), code)
		}
		if !strings.Contains(ui.ErrorWriter.String(), "between 5 and 255") {
			t.Errorf("unexpected error output %q", ui.ErrorWriter.String())
		}
	}
}

func TestMissingKey(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "")}
	if code := enc.Run([]string{"message"}); code != exitUsage {
		t.Errorf("exit code %d", code)
	}
}

func TestFlagValidation(t *testing.T) {
	ui := cli.NewMockUi()
	enc := &EncryptCommand{baseCommand: testBase(ui, "")}
	code := enc.Run([]string{"-key", "12345", "-charset", "no-such-charset",
		"-log-level", "loud", "-in", "file.txt", "message"})
	if code != exitUsage {
		t.Fatalf("exit code %d", code)
	}
	out := ui.ErrorWriter.String()
	for _, want := range []string{"no-such-charset", "loud", "-in"} {
		if !strings.Contains(out, want) {
			t.Errorf("error output does not mention %q:\n%s", want, out)
		}
	}
}

func TestWrongKey(t *testing.T) {
	t.Setenv(keyEnvVar, "")
	key := "This is pretty long key"
	c, err := rc4.NewCipher([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	crypt := hex.EncodeToString(c.Crypt([]byte{0xff, 0xfe, 0xfd}))

	ui := cli.NewMockUi()
	dec := &DecryptCommand{baseCommand: testBase(ui, "")}
	if code := dec.Run([]string{"-key", key, crypt}); code != exitCrypt {
		t.Errorf("exit code %d", code)
	}
}

func TestCharsets(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &CharsetsCommand{ui: ui}
	if code := cmd.Run(nil); code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(ui.OutputWriter.String()), "\n")
	found := false
	for _, line := range lines {
		if line == "UTF-8" {
			found = true
		}
	}
	if !found {
		t.Errorf("UTF-8 not listed: %v", lines)
	}

	if code := cmd.Run([]string{"extra"}); code != exitUsage {
		t.Errorf("exit code %d", code)
	}
}
