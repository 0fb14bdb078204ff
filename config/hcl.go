package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the top-level shape of a configuration file.
type fileRoot struct {
	Grid       *gridBlock       `hcl:"grid,block"`
	Random     *randomBlock     `hcl:"random,block"`
	Dictionary *dictionaryBlock `hcl:"dictionary,block"`
	Output     *outputBlock     `hcl:"output,block"`
	Search     *searchBlock     `hcl:"search,block"`
	Locale     *string          `hcl:"locale,optional"`
}

type gridBlock struct {
	Rows         []string `hcl:"rows"`
	Connectivity *string  `hcl:"connectivity,optional"`
}

type randomBlock struct {
	Rows    *int    `hcl:"rows,optional"`
	Cols    *int    `hcl:"cols,optional"`
	Seed    *int64  `hcl:"seed,optional"`
	Charset *string `hcl:"charset,optional"`
}

type dictionaryBlock struct {
	Path     string  `hcl:"path"`
	Encoding *string `hcl:"encoding,optional"`
}

type outputBlock struct {
	Dir   *string `hcl:"dir,optional"`
	All   *bool   `hcl:"all,optional"`
	Valid *bool   `hcl:"valid,optional"`
}

type searchBlock struct {
	MinLength *int `hcl:"min_length,optional"`
	MaxLength *int `hcl:"max_length,optional"`
}

// LoadFile parses the HCL file at path and overlays every attribute it sets
// onto cfg.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(os.Environ()), &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	root.apply(cfg)

	return nil
}

// evalContext exposes environ ("KEY=value" pairs) as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func (root *fileRoot) apply(cfg *Config) {
	if g := root.Grid; g != nil {
		cfg.GridRows = g.Rows
		if g.Connectivity != nil {
			cfg.Connectivity = *g.Connectivity
		}
	}
	if r := root.Random; r != nil {
		setIf(&cfg.Rows, r.Rows)
		setIf(&cfg.Cols, r.Cols)
		setIf(&cfg.Seed, r.Seed)
		setIf(&cfg.Charset, r.Charset)
	}
	if d := root.Dictionary; d != nil {
		cfg.DictionaryPath = d.Path
		setIf(&cfg.Encoding, d.Encoding)
	}
	if o := root.Output; o != nil {
		setIf(&cfg.OutputDir, o.Dir)
		setIf(&cfg.WriteAll, o.All)
		setIf(&cfg.WriteValid, o.Valid)
	}
	if s := root.Search; s != nil {
		setIf(&cfg.MinLength, s.MinLength)
		setIf(&cfg.MaxLength, s.MaxLength)
	}
	setIf(&cfg.Locale, root.Locale)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
