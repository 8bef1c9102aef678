package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"classical-ciphers-backend/crypto"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCipherCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"caesar", "", []string{"caesar", "--shift", "3", "XYZ"}, "ABC\n"},
		{"caesar decrypt", "", []string{"caesar", "-s", "3", "-d", "ABC"}, "XYZ\n"},
		{"caesar negative shift", "", []string{"caesar", "--shift=-1", "abc"}, "zab\n"},
		{"vigenere", "", []string{"vigenere", "-k", "LEMON", "ATTACK", "AT", "DAWN"}, "LXFOPV EF RNHR\n"},
		{"vigenere decrypt", "", []string{"vigenere", "-k", "LEMON", "-d", "LXFOPVEFRNHR"}, "ATTACKATDAWN\n"},
		{"columnar", "", []string{"columnar", "-k", "3,1,4,2", "HELLO", "WORLD"}, "EWDLRXHOLLOX\n"},
		{"columnar decrypt", "", []string{"columnar", "-k", "3,1,4,2", "-d", "EWDLRXHOLLOX"}, "HELLOWORLD\n"},
		{"atbash", "", []string{"atbash", "HELLO"}, "SVOOL\n"},
		{"stdin", "Hello, World!\n", []string{"atbash"}, "Svool, Dliow!\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCipherCommands_InvalidKey(t *testing.T) {
	_, _, err := run(t, "", "vigenere", "-k", "123", "hello")
	assert.ErrorContains(t, err, "at least one letter")

	_, _, err = run(t, "", "columnar", "-k", "a,b,c", "hello")
	assert.ErrorContains(t, err, "invalid key")
}

func TestListCommand(t *testing.T) {
	out, _, err := run(t, "", "list")
	require.NoError(t, err)
	for _, name := range []string{"atbash", "caesar", "columnar", "vigenere"} {
		assert.Contains(t, out, name)
	}
}

func TestListCommand_Named(t *testing.T) {
	out, _, err := run(t, "", "list", "VIGENERE")
	require.NoError(t, err)
	assert.Contains(t, out, "vigenere")
	assert.NotContains(t, out, "atbash")

	_, _, err = run(t, "", "list", "enigma")
	assert.ErrorIs(t, err, crypto.ErrUnknownCipher)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "caesar", "-s", "1", "abc")
	require.NoError(t, err)
	assert.Contains(t, stderr, "caesar")

	_, stderr, err = run(t, "", "caesar", "-s", "1", "abc")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "caesar")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}
