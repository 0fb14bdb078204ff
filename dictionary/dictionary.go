package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names a supported text encoding for word lists.
type Encoding string

const (
	// EncodingUTF8 reads the file as UTF-8 (default).
	EncodingUTF8 Encoding = "utf-8"
	// EncodingLatin1 reads the file as ISO-8859-1.
	EncodingLatin1 Encoding = "latin-1"
)

// ErrUnknownEncoding is returned for encoding names ParseEncoding does not know.
var ErrUnknownEncoding = errors.New("dictionary: unknown encoding")

// utf8BOM is stripped from the first line if present.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseEncoding maps a user-supplied name to an Encoding. Matching is
// case-insensitive; "" means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Set is a read-only collection of dictionary words.
type Set map[string]struct{}

// NewSet builds a Set from words as given.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set (exact match).
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct words.
func (s Set) Len() int {
	return len(s)
}

// Option configures loading.
type Option func(*loadOptions)

type loadOptions struct {
	encoding Encoding
	lower    func(string) string
}

// WithEncoding selects the source encoding.
func WithEncoding(enc Encoding) Option {
	return func(o *loadOptions) {
		o.encoding = enc
	}
}

// WithLowercase normalizes every word with fn before it is stored.
// Panics on nil.
func WithLowercase(fn func(string) string) Option {
	if fn == nil {
		panic("dictionary: WithLowercase(nil)")
	}
	return func(o *loadOptions) {
		o.lower = fn
	}
}

// Load reads the word list at path.
func Load(path string, opts ...Option) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load %s: %w", path, err)
	}
	return s, nil
}

// Read reads a word list from r.
func Read(r io.Reader, opts ...Option) (Set, error) {
	o := loadOptions{encoding: EncodingUTF8}
	for _, fn := range opts {
		fn(&o)
	}

	switch o.encoding {
	case EncodingUTF8:
	case EncodingLatin1:
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, o.encoding)
	}

	s := make(Set)
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Bytes()
		if first {
			line = bytes.TrimPrefix(line, utf8BOM)
			first = false
		}
		word := strings.TrimSpace(string(line))
		if word == "" {
			continue
		}
		if o.lower != nil {
			word = o.lower(word)
		}
		s[word] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}

	return s, nil
}
