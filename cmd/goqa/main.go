package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"goqa/adapters/tabular"
	"goqa/app"
	"goqa/internal/config"
	"goqa/internal/report"
)

func main() {
	out := flag.String("out", "", "output file path (default stdout)")
	format := flag.String("format", "markdown", "output format: markdown, html or json")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: goqa [-format markdown|html|json] [-out file] <data.csv|data.xlsx>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading configuration:", err)
		os.Exit(2)
	}

	reader := tabular.NewDataReader()
	svc := app.NewQualityService(reader, tabular.MetadataReader{}, cfg.Quality).
		WithPalette(cfg.Charts.Palette)

	result, err := svc.AssessFile(context.Background(), path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error assessing file:", err)
		os.Exit(1)
	}

	var rendered []byte
	switch *format {
	case "markdown":
		rendered = []byte(report.RenderMarkdown(result))
	case "html":
		rendered = report.RenderHTML(result)
	case "json":
		rendered, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding report:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "unknown format:", *format)
		os.Exit(2)
	}

	if *out == "" {
		os.Stdout.Write(rendered)
		return
	}
	if err := os.WriteFile(*out, rendered, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "error writing output:", err)
		os.Exit(1)
	}
}
