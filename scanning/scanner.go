// Package scanning wraps the external text-recognition services. A Scanner is
// an opaque request/response boundary: image bytes in, newline-delimited
// recognized text out, or a single error for the caller to handle.
package scanning

import "context"

// Scanner extracts the recognized text from a receipt image.
type Scanner interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
	// Close closes the scanner and releases resources.
	Close() error
}
