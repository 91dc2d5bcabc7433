package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"splitbill/logging"
	"splitbill/receipt"
	"splitbill/scanning"
	"splitbill/storage"
	tr "splitbill/transport"
)

func main() {
	fs := ff.NewFlagSet("splitbill")
	var (
		port        = fs.IntLong("port", 8080, "HTTP server port")
		bucket      = fs.StringLong("bucket", "splitbill", "GCS bucket for receipt images")
		scannerType = fs.StringLong("scanner", "vision", "Scanner type: 'vision' or 'gemini'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set SPLITBILL_GEMINI_KEY)")
		geminiModel = fs.StringLong("gemini-model", "gemini-2.5-flash", "Google Gemini model name")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("SPLITBILL"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logging.Setup()
	ctx := context.Background()

	var scanner scanning.Scanner
	var err error
	switch *scannerType {
	case "vision":
		scanner, err = scanning.NewVision(ctx)
	case "gemini":
		scanner, err = scanning.NewGemini(ctx, *geminiKey, *geminiModel)
	default:
		err = fmt.Errorf("unknown scanner type: %s", *scannerType)
	}
	if err != nil {
		log.Error("failed to create scanner", "error", err)
		os.Exit(1)
	}
	defer scanner.Close()

	gcsClient, err := storage.NewGCSClient(ctx, *bucket)
	if err != nil {
		log.Error("failed to create GCS client", "error", err)
		os.Exit(1)
	}
	defer gcsClient.Close()

	store := receipt.NewStore()
	processor := receipt.NewProcessor(scanner, log)
	httpTransport := tr.NewTransport(store, gcsClient, processor, log)

	http.HandleFunc("/receipts/image", httpTransport.UploadReceiptImageHandler)
	http.HandleFunc("/receipts/", routeReceipts(httpTransport))

	addr := fmt.Sprintf(":%d", *port)
	log.Info("server starting", "addr", addr, "scanner", *scannerType)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// routeReceipts dispatches the /receipts/ subtree by path shape and method.
func routeReceipts(t *tr.Transport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := pathDepth(r.URL.Path)

		// /receipts/{id}/items/{item_id}/participants/{participant_id}
		if parts == 6 {
			switch r.Method {
			case http.MethodPost:
				t.AssignItemHandler(w, r)
			case http.MethodDelete:
				t.UnassignItemHandler(w, r)
			default:
				http.Error(w, tr.NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
			}
			return
		}

		// /receipts/{id}/items/{item_id}
		if parts == 4 {
			switch r.Method {
			case http.MethodPatch:
				t.UpdateItemHandler(w, r)
			case http.MethodDelete:
				t.DeleteItemHandler(w, r)
			default:
				http.Error(w, tr.NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
			}
			return
		}

		// /receipts/{id}/{items|participants|expand|summary}
		if parts == 3 {
			switch {
			case hasSuffixSegment(r.URL.Path, "items") && r.Method == http.MethodPost:
				t.AddItemHandler(w, r)
			case hasSuffixSegment(r.URL.Path, "expand") && r.Method == http.MethodPost:
				t.ExpandItemsHandler(w, r)
			case hasSuffixSegment(r.URL.Path, "participants") && r.Method == http.MethodPost:
				t.AddParticipantHandler(w, r)
			case hasSuffixSegment(r.URL.Path, "participants") && r.Method == http.MethodGet:
				t.GetParticipantsHandler(w, r)
			case hasSuffixSegment(r.URL.Path, "summary") && r.Method == http.MethodGet:
				t.GetSummaryHandler(w, r)
			default:
				http.NotFound(w, r)
			}
			return
		}

		// /receipts/{id}
		if parts == 2 {
			if r.Method != http.MethodGet {
				http.Error(w, tr.NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
				return
			}
			t.GetReceiptHandler(w, r)
			return
		}

		http.NotFound(w, r)
	}
}

func pathDepth(path string) int {
	return len(strings.Split(strings.Trim(path, "/"), "/"))
}

func hasSuffixSegment(path, segment string) bool {
	return strings.HasSuffix(strings.Trim(path, "/"), "/"+segment)
}
