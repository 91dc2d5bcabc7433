// Package storage uploads receipt images to Google Cloud Storage. The object
// URL it returns is the opaque image reference carried through the rest of the
// pipeline.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSClient wraps a Cloud Storage client bound to a bucket.
type GCSClient struct {
	client     *storage.Client
	bucketName string
}

// NewGCSClient creates a client using credentials from the
// GOOGLE_APPLICATION_CREDENTIALS_JSON environment variable.
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	credsJSON := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS_JSON environment variable is not set")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	client, err := storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadReceiptImage stores the image under receipts/{receiptID} and returns
// the object's media link.
func (c *GCSClient) UploadReceiptImage(ctx context.Context, reader io.Reader, receiptID, contentType string) (string, error) {
	object := c.client.Bucket(c.bucketName).Object(objectName(receiptID, contentType))

	writer := object.NewWriter(ctx)
	writer.ContentType = contentType
	writer.Metadata = map[string]string{
		"receipt_id":  receiptID,
		"uploaded_at": time.Now().Format(time.RFC3339),
	}

	if _, err := io.Copy(writer, reader); err != nil {
		return "", fmt.Errorf("failed to upload receipt image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	attrs, err := object.Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get object attributes: %w", err)
	}
	return attrs.MediaLink, nil
}

func (c *GCSClient) Close() error {
	return c.client.Close()
}

func objectName(receiptID, contentType string) string {
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("receipts/%s%s", receiptID, ext)
}
