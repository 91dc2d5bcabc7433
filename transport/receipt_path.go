package transport

import "strings"

// pathParts returns the URL path split by "/" with leading/trailing slashes trimmed
func pathParts(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// parseReceiptIDPath expects path like /receipts/{receipt_id}
func parseReceiptIDPath(path string) (receiptID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 2 || parts[0] != "receipts" {
		return "", false
	}
	return parts[1], true
}

// parseReceiptSubPath expects path like /receipts/{receipt_id}/{sub}
func parseReceiptSubPath(path, sub string) (receiptID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 3 || parts[0] != "receipts" || parts[2] != sub {
		return "", false
	}
	return parts[1], true
}

// parseReceiptItemPath expects path like /receipts/{receipt_id}/items/{item_id}
func parseReceiptItemPath(path string) (receiptID, itemID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 4 || parts[0] != "receipts" || parts[2] != "items" {
		return "", "", false
	}
	return parts[1], parts[3], true
}

// parseAssignmentPath expects path like
// /receipts/{receipt_id}/items/{item_id}/participants/{participant_id}
func parseAssignmentPath(path string) (receiptID, itemID, participantID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 6 || parts[0] != "receipts" || parts[2] != "items" || parts[4] != "participants" {
		return "", "", "", false
	}
	return parts[1], parts[3], parts[5], true
}
