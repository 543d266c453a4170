// Command tuplegen writes the per-element-type tuple aliases and
// constructors described by a kinds file.
//
//	go run ./cmd/tuplegen -config tuple/kinds.yaml -out tuple/aliases_gen.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-tuple/gen"
	"github.com/amp-labs/amp-tuple/logger"
)

func main() {
	configPath := flag.String("config", "kinds.yaml", "path to the kinds file")
	out := flag.String("out", "aliases_gen.go", "path of the generated Go file")
	jsonLogs := flag.Bool("json", false, "log as JSON")
	verbose := flag.Bool("v", false, "log every rendered kind")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "tuplegen",
		JSON:      *jsonLogs,
		MinLevel:  level,
		Output:    os.Stderr,
	})

	ctx := logger.WithLogger(context.Background(), log)

	if err := gen.Generate(ctx, *configPath, *out); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
