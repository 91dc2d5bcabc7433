package receipt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// countingScanner is a Scanner stub that records how often it is invoked.
type countingScanner struct {
	text  string
	err   error
	calls int
}

func (s *countingScanner) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *countingScanner) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleText = "Joe's Diner\n123 Main St\n01/02/23 1:15 PM\n2 Burger\n$20.00\nSUBTOTAL $20.00\nTOTAL $24.50"

func TestProcessorParsesScannedText(t *testing.T) {
	scanner := &countingScanner{text: sampleText}
	p := NewProcessorWithParser(scanner, fixedParser(), discardLogger())

	got, err := p.Process(context.Background(), "img-1", []byte("bytes"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got.RestaurantName != "Joe's Diner" {
		t.Errorf("RestaurantName = %q", got.RestaurantName)
	}
	if got.ImageRef != "img-1" {
		t.Errorf("ImageRef = %q, want img-1", got.ImageRef)
	}
	if len(got.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1", len(got.Items))
	}
}

func TestProcessorCachesByImageRef(t *testing.T) {
	scanner := &countingScanner{text: sampleText}
	p := NewProcessorWithParser(scanner, fixedParser(), discardLogger())

	first, err := p.Process(context.Background(), "img-1", []byte("bytes"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := p.Process(context.Background(), "img-1", []byte("bytes"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if scanner.calls != 1 {
		t.Errorf("scanner calls = %d, want 1 (second call must hit the cache)", scanner.calls)
	}
	if first.ID != second.ID {
		t.Error("cached receipt must be the same receipt")
	}

	if _, err := p.Process(context.Background(), "img-2", []byte("other")); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if scanner.calls != 2 {
		t.Errorf("scanner calls = %d, want 2 after a distinct image ref", scanner.calls)
	}
}

func TestProcessorCacheReturnsIsolatedCopy(t *testing.T) {
	scanner := &countingScanner{text: sampleText}
	p := NewProcessorWithParser(scanner, fixedParser(), discardLogger())

	first, _ := p.Process(context.Background(), "img-1", nil)
	first.Items[0].Name = "Mutated"

	second, _ := p.Process(context.Background(), "img-1", nil)
	if second.Items[0].Name != "Burger" {
		t.Error("cache must not expose shared mutable state")
	}
}

func TestProcessorScannerFailure(t *testing.T) {
	scanner := &countingScanner{err: errors.New("api quota exceeded")}
	p := NewProcessorWithParser(scanner, fixedParser(), discardLogger())

	_, err := p.Process(context.Background(), "img-1", []byte("bytes"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "failed to process receipt") {
		t.Errorf("err = %q, want wrapped processing error", err)
	}

	// A failed attempt is not cached; the next call retries the scanner.
	_, _ = p.Process(context.Background(), "img-1", []byte("bytes"))
	if scanner.calls != 2 {
		t.Errorf("scanner calls = %d, want 2", scanner.calls)
	}
}

func TestProcessFileMissingFile(t *testing.T) {
	scanner := &countingScanner{text: sampleText}
	p := NewProcessorWithParser(scanner, fixedParser(), discardLogger())

	_, err := p.ProcessFile(context.Background(), "/does/not/exist.jpg")
	if err == nil {
		t.Fatal("expected an I/O error")
	}
	if !strings.Contains(err.Error(), "failed to read receipt image") {
		t.Errorf("err = %q, want read error", err)
	}
	if scanner.calls != 0 {
		t.Errorf("scanner calls = %d, want 0 when the read fails", scanner.calls)
	}
}

func TestProcessorDateFallbackUsesClock(t *testing.T) {
	scanner := &countingScanner{text: "Joe's Diner\n1 Coffee\n$4.50"}
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	parser := &Parser{Now: func() time.Time { return fixed }}
	p := NewProcessorWithParser(scanner, parser, discardLogger())

	got, err := p.Process(context.Background(), "img-1", nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !got.Date.Equal(fixed) {
		t.Errorf("Date = %v, want injected clock %v", got.Date, fixed)
	}
}
