package transport

import (
	"encoding/json"
	"net/http"

	"splitbill/receipt"
)

// GetReceiptHandler handles GET /receipts/{receipt_id}
func (t *Transport) GetReceiptHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptIDPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rec, ok := t.store.Get(receiptID)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toReceiptResponse(rec))
}

// AddItemHandler handles POST /receipts/{receipt_id}/items
// Appends a default "New Item" line for the user to edit.
func (t *Transport) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "items")
	if !ok {
		http.NotFound(w, r)
		return
	}

	item, ok := t.store.AddItem(receiptID)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// UpdateItemHandler handles PATCH /receipts/{receipt_id}/items/{item_id}
func (t *Transport) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, itemID, ok := parseReceiptItemPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validationErr := NewValidationError("body", "invalid JSON")
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}
	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		http.Error(w, NewValidationError("unit_price", "must be >= 0").Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		http.Error(w, NewValidationError("quantity", "must be >= 1").Error(), http.StatusBadRequest)
		return
	}

	item, ok := t.store.UpdateItem(receiptID, itemID, toItemUpdate(req))
	if !ok {
		http.Error(w, NewNotFoundError("item", itemID).Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler handles DELETE /receipts/{receipt_id}/items/{item_id}
func (t *Transport) DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, itemID, ok := parseReceiptItemPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !t.store.DeleteItem(receiptID, itemID) {
		http.Error(w, NewNotFoundError("item", itemID).Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExpandItemsHandler handles POST /receipts/{receipt_id}/expand
// Expands multi-quantity items into unit items before assignment begins.
func (t *Transport) ExpandItemsHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "expand")
	if !ok {
		http.NotFound(w, r)
		return
	}

	items, ok := t.store.ExpandItems(receiptID)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	responseItems := make([]ReceiptItemResponse, len(items))
	for i, it := range items {
		responseItems[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, responseItems)
}

func toItemUpdate(req UpdateItemRequest) receipt.ItemUpdate {
	return receipt.ItemUpdate{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
