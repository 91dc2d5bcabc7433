package scanning

import (
	"context"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	"google.golang.org/api/option"
	pb "google.golang.org/genproto/googleapis/cloud/vision/v1"
)

// Vision implements Scanner using the Google Cloud Vision API.
type Vision struct {
	client *vision.ImageAnnotatorClient
}

// NewVision creates a Vision scanner. Credentials come from the
// GOOGLE_APPLICATION_CREDENTIALS_JSON environment variable when set,
// otherwise from application default credentials.
func NewVision(ctx context.Context) (*Vision, error) {
	var opts []option.ClientOption
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	}

	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vision client: %w", err)
	}

	return &Vision{client: client}, nil
}

func (v *Vision) Close() error {
	return v.client.Close()
}

// ExtractText runs document text detection over the image bytes.
// DOCUMENT_TEXT_DETECTION handles the dense text on receipts better than
// plain TEXT_DETECTION.
func (v *Vision) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	annotation, err := v.client.DetectDocumentText(ctx, &pb.Image{Content: imageData}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to detect document text: %w", err)
	}

	text := annotation.GetText()
	if text == "" {
		return "", fmt.Errorf("no text detected in image")
	}
	return text, nil
}
