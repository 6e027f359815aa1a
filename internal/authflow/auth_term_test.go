package authflow

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_readln(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"line", "abc.def\n", "abc.def", nil},
		{"spaces", "  abc \r\n", "abc", nil},
		{"no line feed", "abc", "abc", io.EOF},
		{"empty", "", "", io.EOF},
		{"first line only", "one\ntwo\n", "one", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readln(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_nonEmpty(t *testing.T) {
	got, err := nonEmpty("abc", io.EOF)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = nonEmpty("", nil)
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = nonEmpty("", io.EOF)
	assert.ErrorIs(t, err, io.EOF)
}

func TestTermAuth_Token(t *testing.T) {
	t.Run("given", func(t *testing.T) {
		got, err := NewTermAuth("secret").Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "secret", got)
	})
	t.Run("piped", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "token")
		require.NoError(t, err)
		defer f.Close()
		_, err = f.WriteString("piped-token\n")
		require.NoError(t, err)
		_, err = f.Seek(0, io.SeekStart)
		require.NoError(t, err)

		var out bytes.Buffer
		got, err := TermAuth{in: f, out: &out}.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "piped-token", got)
		assert.Empty(t, out.String(), "no instructions for piped input")
	})
}
