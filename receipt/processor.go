package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"splitbill/scanning"
)

// Processor runs the image → text → Receipt pipeline. Results are cached by
// image reference: processing an unchanged image a second time returns the
// cached receipt without re-issuing the recognition call.
type Processor struct {
	scanner scanning.Scanner
	parser  *Parser
	log     *slog.Logger

	mu    sync.Mutex
	cache map[string]Receipt
}

// NewProcessor creates a Processor around the given scanner.
func NewProcessor(scanner scanning.Scanner, log *slog.Logger) *Processor {
	return &Processor{
		scanner: scanner,
		parser:  NewParser(),
		log:     log,
		cache:   make(map[string]Receipt),
	}
}

// NewProcessorWithParser creates a Processor with a custom parser, letting
// tests pin the parser clock.
func NewProcessorWithParser(scanner scanning.Scanner, parser *Parser, log *slog.Logger) *Processor {
	return &Processor{
		scanner: scanner,
		parser:  parser,
		log:     log,
		cache:   make(map[string]Receipt),
	}
}

// Process recognizes text in the image and parses it into a Receipt. The image
// reference keys the cache and is carried into the result unchanged.
func (p *Processor) Process(ctx context.Context, imageRef string, imageData []byte) (Receipt, error) {
	p.mu.Lock()
	if cached, ok := p.cache[imageRef]; ok {
		p.mu.Unlock()
		p.log.Debug("returning cached receipt", "image_ref", imageRef)
		return cached.Clone(), nil
	}
	p.mu.Unlock()

	text, err := p.scanner.ExtractText(ctx, imageData)
	if err != nil {
		p.log.Error("OCR failed", "image_ref", imageRef, "error", err)
		return Receipt{}, fmt.Errorf("failed to process receipt: %w", err)
	}

	lines := strings.Split(text, "\n")
	parsed := p.parser.Parse(lines, imageRef)

	p.mu.Lock()
	p.cache[imageRef] = parsed.Clone()
	p.mu.Unlock()

	return parsed, nil
}

// ProcessFile reads the image from disk and processes it. Read failures are
// I/O errors, reported distinctly from recognition failures.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Receipt, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached.Clone(), nil
	}
	p.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to read receipt image: %w", err)
	}
	return p.Process(ctx, path, data)
}
