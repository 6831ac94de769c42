// Command eml2md converts .eml files to Markdown, either a single file or
// a whole directory tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hydai/eml2md/internal/config"
	"github.com/hydai/eml2md/internal/converter"
)

func main() {
	var (
		input      = flag.String("input", "", "Input .eml file")
		output     = flag.String("output", "", "Output Markdown file")
		inputDir   = flag.String("input-dir", "", "Convert every .eml file under this directory")
		outputDir  = flag.String("output-dir", "", "Batch-mode output directory")
		format     = flag.String("format", "", `Output format: "simple" or "html"`)
		workers    = flag.Int("workers", 0, "Batch-mode worker count (0 = auto)")
		overwrite  = flag.Bool("overwrite", false, "Rewrite existing .md files in batch mode")
		configPath = flag.String("config", "", "Path to YAML configuration file (optional)")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags take precedence over config values
	if *format == "" {
		*format = cfg.Convert.Format
	}

	switch {
	case *inputDir != "":
		runBatch(cfg, *inputDir, *outputDir, *format, *workers, *overwrite)
	case *input != "" && *output != "":
		runSingle(*input, *output, *format)
	default:
		usage()
		os.Exit(2)
	}
}

func runSingle(input, output, format string) {
	if err := converter.ConvertFile(input, output, format); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
	log.Printf("Successfully converted %s to %s", input, output)
}

func runBatch(cfg *config.Config, inputDir, outputDir, format string, workers int, overwrite bool) {
	if outputDir == "" {
		outputDir = cfg.Convert.OutputDir
	}
	if workers == 0 {
		workers = cfg.Convert.Workers
	}

	c := converter.New(inputDir, outputDir, format).
		WithOverwrite(overwrite || cfg.Convert.Overwrite).
		WithVerbose(true)
	if workers > 0 {
		c = c.WithConcurrency(workers)
	}

	result, err := c.ConvertAll()
	if err != nil {
		log.Fatalf("Batch conversion failed: %v", err)
	}

	log.Printf("Converted %d of %d files (%d skipped, %d failed)",
		result.Converted, result.TotalFound, result.Skipped, result.Failed)
	for _, file := range result.FailedFiles {
		log.Printf("Failed: %s", file)
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `eml2md - convert EML files to Markdown

Single file:
  eml2md -input message.eml -output message.md [-format simple|html]

Directory:
  eml2md -input-dir ./emails -output-dir ./markdown [-workers N] [-overwrite]

Flags:
`)
	flag.PrintDefaults()
}
