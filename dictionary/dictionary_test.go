package dictionary_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/dictionary"
)

func TestRead_TrimsAndSkipsBlank(t *testing.T) {
	s, err := dictionary.Read(strings.NewReader("\ufeffsäl\n  katt \n\n\t\nöl\r\nsäl\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("säl"))
	assert.True(t, s.Contains("katt"))
	assert.True(t, s.Contains("öl"))
	assert.False(t, s.Contains("SÄL"))
}

func TestRead_Latin1(t *testing.T) {
	// "säl\nöl\n" in ISO-8859-1.
	raw := []byte{'s', 0xE4, 'l', '\n', 0xF6, 'l', '\n'}
	s, err := dictionary.Read(strings.NewReader(string(raw)), dictionary.WithEncoding(dictionary.EncodingLatin1))
	require.NoError(t, err)
	assert.True(t, s.Contains("säl"))
	assert.True(t, s.Contains("öl"))
}

func TestRead_Lowercase(t *testing.T) {
	s, err := dictionary.Read(strings.NewReader("CAB\nÅR\n"), dictionary.WithLowercase(strings.ToLower))
	require.NoError(t, err)
	assert.True(t, s.Contains("cab"))
	assert.True(t, s.Contains("år"))
}

func TestRead_UnknownEncoding(t *testing.T) {
	_, err := dictionary.Read(strings.NewReader("a"), dictionary.WithEncoding("ebcdic"))
	assert.ErrorIs(t, err, dictionary.ErrUnknownEncoding)
}

func TestRead_Empty(t *testing.T) {
	s, err := dictionary.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swedish.txt")
	require.NoError(t, os.WriteFile(path, []byte("hej\nsäl\n"), 0o644))

	s, err := dictionary.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dictionary.NewSet("hej", "säl"), s)
}

func TestLoad_Missing(t *testing.T) {
	_, err := dictionary.Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseEncoding(t *testing.T) {
	cases := map[string]dictionary.Encoding{
		"":           dictionary.EncodingUTF8,
		"UTF-8":      dictionary.EncodingUTF8,
		"latin1":     dictionary.EncodingLatin1,
		"ISO-8859-1": dictionary.EncodingLatin1,
	}
	for in, want := range cases {
		got, err := dictionary.ParseEncoding(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := dictionary.ParseEncoding("koi8-r")
	assert.ErrorIs(t, err, dictionary.ErrUnknownEncoding)
}
