// Package converter turns .eml files into Markdown files, either one at a
// time or in bulk over a directory tree using a worker pool. Every file is
// an independent conversion, so workers share no state.
package converter

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/hydai/eml2md/internal/eml"
	"github.com/hydai/eml2md/internal/formatter"
	"github.com/hydai/eml2md/internal/scanner"
)

// ConvertFile converts a single .eml file and writes the Markdown output
func ConvertFile(inputPath, outputPath, format string) error {
	email, err := eml.ParseFile(inputPath)
	if err != nil {
		return err
	}

	markdown := formatter.FormatMarkdown(email, format)

	if err := os.WriteFile(outputPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}

	return nil
}

// Converter converts every .eml file under an input directory into a
// mirrored .md file under an output directory
type Converter struct {
	scanner     *scanner.Scanner
	inputPath   string
	outputPath  string
	format      string
	overwrite   bool
	verbose     bool
	concurrency int // Number of concurrent workers
}

// New creates a batch converter for the given directories and format name
func New(inputPath, outputPath, format string) *Converter {
	return &Converter{
		scanner:     scanner.NewScanner(inputPath),
		inputPath:   inputPath,
		outputPath:  outputPath,
		format:      format,
		concurrency: runtime.NumCPU() * 2, // 2x CPUs for optimal I/O parallelism
	}
}

// WithConcurrency sets the number of concurrent workers
func (c *Converter) WithConcurrency(workers int) *Converter {
	if workers < 1 {
		workers = 1
	}
	c.concurrency = workers
	return c
}

// WithOverwrite controls whether existing .md files are rewritten
func (c *Converter) WithOverwrite(overwrite bool) *Converter {
	c.overwrite = overwrite
	return c
}

// WithVerbose enables progress logging
func (c *Converter) WithVerbose(verbose bool) *Converter {
	c.verbose = verbose
	return c
}

// Result contains statistics about a batch conversion
type Result struct {
	TotalFound  int
	Converted   int
	Skipped     int
	Failed      int
	FailedFiles []string
}

type fileStatus int

const (
	statusConverted fileStatus = iota
	statusSkipped
	statusFailed
)

type fileResult struct {
	filePath string
	status   fileStatus
}

// ConvertAll scans the input directory and converts every .eml file using
// concurrent workers
func (c *Converter) ConvertAll() (*Result, error) {
	files, err := c.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan for files: %w", err)
	}

	result := &Result{
		TotalFound:  len(files),
		FailedFiles: make([]string, 0),
	}

	if c.verbose {
		log.Printf("Found %d .eml files to convert with %d workers\n", result.TotalFound, c.concurrency)
	}

	fileChan := make(chan string, len(files))
	resultChan := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < c.concurrency; i++ {
		wg.Add(1)
		go c.convertWorker(&wg, fileChan, resultChan)
	}

	for _, file := range files {
		fileChan <- file
	}
	close(fileChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	processedCount := 0
	for res := range resultChan {
		processedCount++
		if c.verbose && processedCount%10 == 0 {
			log.Printf("Processing file %d/%d...\n", processedCount, result.TotalFound)
		}

		switch res.status {
		case statusConverted:
			result.Converted++
		case statusSkipped:
			result.Skipped++
		case statusFailed:
			result.Failed++
			result.FailedFiles = append(result.FailedFiles, res.filePath)
		}
	}

	if c.verbose {
		log.Printf("Conversion complete: %d converted, %d skipped, %d failed\n",
			result.Converted, result.Skipped, result.Failed)
	}

	return result, nil
}

// convertWorker processes files from the file channel
func (c *Converter) convertWorker(wg *sync.WaitGroup, fileChan <-chan string, resultChan chan<- fileResult) {
	defer wg.Done()

	for filePath := range fileChan {
		status := c.processFile(filePath)
		resultChan <- fileResult{
			filePath: filePath,
			status:   status,
		}
	}
}

// processFile converts a single relative file path and returns its status
func (c *Converter) processFile(relPath string) fileStatus {
	outPath := filepath.Join(c.outputPath, markdownName(relPath))

	if !c.overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return statusSkipped
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		log.Printf("Error creating output directory for %s: %v\n", relPath, err)
		return statusFailed
	}

	inPath := filepath.Join(c.inputPath, filepath.FromSlash(relPath))
	if err := ConvertFile(inPath, outPath, c.format); err != nil {
		log.Printf("Error converting %s: %v\n", relPath, err)
		return statusFailed
	}

	return statusConverted
}

// markdownName maps a relative .eml path to its .md counterpart
func markdownName(relPath string) string {
	ext := filepath.Ext(relPath)
	return filepath.FromSlash(strings.TrimSuffix(relPath, ext) + ".md")
}
