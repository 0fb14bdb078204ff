package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/wordgrid/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags override the config file and WORDGRID_* environment variables.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	def := config.Default()
	flagSet := flag.NewFlagSet("wordgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wordgrid - finds dictionary words traced by king-move paths on a letter grid.

Usage:
  wordgrid [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	envFlag := flagSet.String("env", ".env", "Path to a dotenv file loaded before reading WORDGRID_* variables.")
	gridFlag := flagSet.String("grid", "", "Literal grid as comma-separated rows, e.g. NDLL,GISK,RTNR,EÄND.")
	rowsFlag := flagSet.Int("rows", def.Rows, "Rows of the random grid.")
	colsFlag := flagSet.Int("cols", def.Cols, "Columns of the random grid.")
	seedFlag := flagSet.Int64("seed", def.Seed, "Seed for the random grid. 0 seeds from the clock.")
	charsetFlag := flagSet.String("charset", def.Charset, "Letters the random grid is drawn from.")
	connFlag := flagSet.String("conn", def.Connectivity, "Adjacency: 'conn8' (king moves) or 'conn4'.")
	dictFlag := flagSet.String("dict", def.DictionaryPath, "Path to the dictionary word list, one word per line.")
	encodingFlag := flagSet.String("encoding", def.Encoding, "Dictionary encoding: 'utf-8' or 'latin-1'.")
	outFlag := flagSet.String("out", def.OutputDir, "Directory result files are written to.")
	allFlag := flagSet.Bool("all", def.WriteAll, "Also write every distinct candidate to all_combinations.txt.")
	validFlag := flagSet.Bool("valid", def.WriteValid, "Write dictionary matches to all_valid.txt.")
	minFlag := flagSet.Int("min", def.MinLength, "Minimum path length recorded as a candidate.")
	maxFlag := flagSet.Int("max", def.MaxLength, "Maximum path length explored. 0 is unlimited.")
	localeFlag := flagSet.String("locale", def.Locale, "BCP 47 locale for lowercasing and sorting.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := config.Default()
	if err := config.LoadDotEnv(*envFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *configFlag != "" {
		if err := config.LoadFile(*configFlag, cfg); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Config file loaded.", "path", *configFlag)
	}
	config.ApplyEnv(cfg, os.LookupEnv)

	// Only flags given on the command line override earlier sources.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			cfg.GridRows = splitRows(*gridFlag)
		case "rows":
			cfg.Rows = *rowsFlag
		case "cols":
			cfg.Cols = *colsFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "charset":
			cfg.Charset = *charsetFlag
		case "conn":
			cfg.Connectivity = strings.ToLower(*connFlag)
		case "dict":
			cfg.DictionaryPath = *dictFlag
		case "encoding":
			cfg.Encoding = *encodingFlag
		case "out":
			cfg.OutputDir = *outFlag
		case "all":
			cfg.WriteAll = *allFlag
		case "valid":
			cfg.WriteValid = *validFlag
		case "min":
			cfg.MinLength = *minFlag
		case "max":
			cfg.MaxLength = *maxFlag
		case "locale":
			cfg.Locale = *localeFlag
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// splitRows turns "AB, CD" into ["AB", "CD"], dropping empty rows.
func splitRows(s string) []string {
	var rows []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			rows = append(rows, r)
		}
	}
	return rows
}
