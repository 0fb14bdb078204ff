package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/wordgrid/builder"
	"github.com/katalvlaran/wordgrid/dfs"
	"github.com/katalvlaran/wordgrid/dictionary"
	"github.com/katalvlaran/wordgrid/gridgraph"
	"github.com/katalvlaran/wordgrid/report"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output file names.
const (
	AllCombinationsFile = "all_combinations.txt"
	AllValidFile        = "all_valid.txt"
)

// Config holds everything one run needs.
type Config struct {
	// Literal grid rows; when empty a random Rows×Cols grid is generated.
	GridRows     []string
	Rows, Cols   int
	Seed         int64 // 0 seeds from the clock
	Charset      string
	Connectivity string // "conn8" or "conn4"

	DictionaryPath string
	Encoding       string

	OutputDir  string
	WriteAll   bool // all_combinations.txt
	WriteValid bool // all_valid.txt

	MinLength int
	MaxLength int // 0 means unlimited

	Locale    string
	LogLevel  string
	LogFormat string

	PocketBaseURL        string
	PocketBaseEmail      string
	PocketBasePassword   string
	PocketBaseCollection string
}

// Default returns the built-in configuration: a random 4×4 grid over the
// Swedish alphabet checked against dictionary/swedish.txt.
func Default() *Config {
	return &Config{
		Rows:                 4,
		Cols:                 4,
		Charset:              builder.DefaultCharset,
		Connectivity:         gridgraph.Conn8.String(),
		DictionaryPath:       "dictionary/swedish.txt",
		Encoding:             string(dictionary.EncodingUTF8),
		OutputDir:            "result",
		WriteValid:           true,
		MinLength:            dfs.DefaultMinLength,
		Locale:               "sv-SE",
		LogLevel:             "info",
		LogFormat:            "text",
		PocketBaseCollection: "wordlists",
	}
}

// Conn returns the parsed connectivity. Call after Validate.
func (c *Config) Conn() gridgraph.Connectivity {
	if c.Connectivity == gridgraph.Conn4.String() {
		return gridgraph.Conn4
	}
	return gridgraph.Conn8
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if len(c.GridRows) > 0 {
		width := utf8.RuneCountInString(strings.TrimSpace(c.GridRows[0]))
		if width == 0 {
			return invalid("grid row 0 is empty")
		}
		for i, row := range c.GridRows[1:] {
			if n := utf8.RuneCountInString(strings.TrimSpace(row)); n != width {
				return invalid("grid row %d has %d letters, row 0 has %d", i+1, n, width)
			}
		}
	} else {
		if c.Rows < builder.MinGridDim || c.Cols < builder.MinGridDim {
			return invalid("rows=%d, cols=%d (each must be ≥ %d)", c.Rows, c.Cols, builder.MinGridDim)
		}
		if c.Charset == "" {
			return invalid("charset is empty")
		}
	}
	switch c.Connectivity {
	case gridgraph.Conn8.String(), gridgraph.Conn4.String():
	default:
		return invalid("connectivity %q (want conn8 or conn4)", c.Connectivity)
	}
	if c.DictionaryPath == "" {
		return invalid("dictionary path is empty")
	}
	if _, err := dictionary.ParseEncoding(c.Encoding); err != nil {
		return invalid("%v", err)
	}
	if (c.WriteAll || c.WriteValid) && c.OutputDir == "" && c.PocketBaseURL == "" {
		return invalid("output dir is empty")
	}
	if c.MinLength < 1 {
		return invalid("min_length=%d (must be ≥ 1)", c.MinLength)
	}
	if c.MaxLength < 0 {
		return invalid("max_length=%d (must be ≥ 0)", c.MaxLength)
	}
	if c.MaxLength > 0 && c.MaxLength < c.MinLength {
		return invalid("max_length=%d below min_length=%d", c.MaxLength, c.MinLength)
	}
	if _, err := report.ParseLocale(c.Locale); err != nil {
		return invalid("locale %q: %v", c.Locale, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return invalid("%v", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return invalid("log format %q", c.LogFormat)
	}

	return nil
}

// ParseLogLevel accepts slog level names ("debug", "INFO", "warn+2", ...).
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
