package gen

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/amp-labs/amp-tuple/logger"
)

//go:embed aliases.tmpl
var aliasesTemplate string

//nolint:gochecknoglobals
var (
	aliases = template.Must(template.New("aliases").Parse(aliasesTemplate))

	componentNames = []string{"x", "y", "z", "w"}
	nouns          = map[int]string{2: "pair", 3: "triple", 4: "quadruple"}
)

type entry struct {
	Alias      string
	Mutable    string
	Arity      int
	Noun       string
	Doc        string
	Type       string
	Semantics  string
	TypeParams string
	TypeArgs   string
	Params     string
	Holding    string
}

type document struct {
	Package      string
	StdImports   []string
	OtherImports []string
	Entries      []entry
}

// Render validates cfg and returns the gofmt-ed source of the alias file.
// Entries are emitted kind by kind, in the arity order of the config.
func Render(cfg *Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc := document{Package: cfg.Package}

	for _, imp := range cfg.Imports {
		if isStdlib(imp) {
			doc.StdImports = append(doc.StdImports, imp)
		} else {
			doc.OtherImports = append(doc.OtherImports, imp)
		}
	}

	for _, kind := range cfg.Kinds {
		for _, arity := range cfg.Arities {
			doc.Entries = append(doc.Entries, newEntry(kind, arity))
		}
	}

	var buf bytes.Buffer

	if err := aliases.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}

// Generate loads the kinds file, renders it and writes the result to out.
func Generate(ctx context.Context, configPath, out string) error {
	log := logger.Get(ctx)

	cfg, err := Load(configPath)
	if err != nil {
		return err
	}

	for _, kind := range cfg.Kinds {
		log.Debug("rendering kind", "name", kind.Name, "type", kind.Type, "semantics", kind.Semantics)
	}

	src, err := Render(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing %s: %w", out, err)
	}

	log.Info("generated tuple aliases",
		"config", configPath,
		"out", out,
		"kinds", len(cfg.Kinds),
		"arities", cfg.Arities)

	return nil
}

func newEntry(kind Kind, arity int) entry {
	params := componentNames[:arity]
	suffix := strconv.Itoa(arity)

	e := entry{
		Alias:     kind.Name + suffix,
		Mutable:   "Mutable" + kind.Name + suffix,
		Arity:     arity,
		Noun:      nouns[arity],
		Doc:       kind.Doc,
		Type:      kind.Type,
		Semantics: kind.Semantics,
		Params:    strings.Join(params, ", "),
		Holding:   strings.Join(params[:arity-1], ", ") + " and " + params[arity-1],
	}

	if kind.TypeParams != "" {
		e.TypeParams = "[" + kind.TypeParams + "]"
		e.TypeArgs = "[" + kind.TypeArgs + "]"
	}

	return e
}

// isStdlib reports whether an import path belongs to the standard library,
// whose first element never contains a dot.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")

	return !strings.Contains(first, ".")
}
