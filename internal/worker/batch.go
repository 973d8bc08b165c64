package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ratiolab/ratiometer/internal/model"
)

// Runner defines the interface for analyzing a single passage.
type Runner interface {
	AnalyzeText(ctx context.Context, text string) (*model.Report, error)
}

// AnalyzeJob analyzes one passage from a batch.
type AnalyzeJob struct {
	Line   int // 1-based line number in the input file
	Text   string
	Runner Runner
}

// Execute runs the analysis job.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Runner.AnalyzeText(ctx, j.Text)
	return &AnalyzeResult{
		Line:   j.Line,
		Text:   j.Text,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult is the outcome of one batch passage.
type AnalyzeResult struct {
	Line   int
	Text   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many passages concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessPassages analyzes passages concurrently. Results are returned
// in input order regardless of completion order.
func (b *BatchProcessor) ProcessPassages(ctx context.Context, passages []Passage) []*AnalyzeResult {
	if len(passages) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine; draining below keeps workers
	// from blocking on a full results channel.
	go func() {
		for _, p := range passages {
			pool.Submit(&AnalyzeJob{
				Line:   p.Line,
				Text:   p.Text,
				Runner: b.runner,
			})
		}
		pool.Close()
	}()

	analyzeResults := make([]*AnalyzeResult, 0, len(passages))
	for result := range pool.Results() {
		analyzeResults = append(analyzeResults, result.(*AnalyzeResult))
	}
	sort.Slice(analyzeResults, func(i, j int) bool {
		return analyzeResults[i].Line < analyzeResults[j].Line
	})

	return analyzeResults
}

// ProcessFile reads passages from a file and analyzes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	passages, err := ReadPassagesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read passages: %w", err)
	}

	return b.ProcessPassages(ctx, passages), nil
}

// Passage is one input passage with its source line number.
type Passage struct {
	Line int
	Text string
}

// ReadPassagesFromFile reads passages from a file, one per line.
// Blank lines and lines starting with # are skipped.
func ReadPassagesFromFile(filePath string) ([]Passage, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var passages []Passage

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		passages = append(passages, Passage{Line: line, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return passages, nil
}
