package transport

import (
	"context"
	"io"
	"log/slog"

	"splitbill/receipt"
)

// Uploader stores a receipt image and returns its URL.
type Uploader interface {
	UploadReceiptImage(ctx context.Context, reader io.Reader, receiptID, contentType string) (string, error)
}

// Transport holds the HTTP handlers and their dependencies.
type Transport struct {
	store     *receipt.Store
	uploader  Uploader
	processor *receipt.Processor
	log       *slog.Logger
}

func NewTransport(store *receipt.Store, uploader Uploader, processor *receipt.Processor, log *slog.Logger) *Transport {
	return &Transport{
		store:     store,
		uploader:  uploader,
		processor: processor,
		log:       log,
	}
}
