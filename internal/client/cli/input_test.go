package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	in := rdr("hello world\n")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := rdr("lastline")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := rdr("a\nb\n\n\n")
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetMultiline_CRLFAndEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\r\nb"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)
}

func TestGetField(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{name: "empty keeps current", input: "\n", current: "Acme", want: "Acme"},
		{name: "value replaces current", input: "Globex\n", current: "Acme", want: "Globex"},
		{name: "no current", input: "Initech\n", current: "", want: "Initech"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetField(rdr(tc.input), "Company", tc.current, &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			if tc.current != "" {
				require.Contains(t, out.String(), "["+tc.current+"]")
			}
		})
	}
}

func TestGetConfirm(t *testing.T) {
	for in, want := range map[string]bool{
		"y\n":    true,
		"YES\n":  true,
		"n\n":    false,
		"\n":     false,
		"sure\n": false,
	} {
		var out bytes.Buffer
		got, err := GetConfirm(rdr(in), "Continue?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", in)
	}
}

func TestGetSecret_NotTerminalReadsLine(t *testing.T) {
	oldTerm := isTerminal
	t.Cleanup(func() { isTerminal = oldTerm })
	isTerminal = func(int) bool { return false }

	var out bytes.Buffer
	got, err := GetSecret(rdr("tok-123\n"), "Access token", &out)
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)
}

func TestGetSecret_Terminal(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte(" secret \n"), nil }

	var out bytes.Buffer
	got, err := GetSecret(rdr(""), "Access token", &out)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.True(t, strings.HasPrefix(out.String(), "Access token: "))
}

func TestGetSecret_Error(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetSecret(rdr(""), "Access token", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOneLine(t *testing.T) {
	require.Equal(t, "a b c", oneLine("a\n b\tc", 40))
	require.Equal(t, "abcd…", oneLine("abcdefgh", 5))
}
