package transport

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AddParticipantHandler handles POST /receipts/{receipt_id}/participants
func (t *Transport) AddParticipantHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "participants")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, NewValidationError("body", "invalid JSON").Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, NewValidationError("name", "name is required").Error(), http.StatusBadRequest)
		return
	}

	p, ok := t.store.AddParticipant(receiptID, req.Name, req.Email, req.PhoneNumber)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, ParticipantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	})
}

// GetParticipantsHandler handles GET /receipts/{receipt_id}/participants
func (t *Transport) GetParticipantsHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "participants")
	if !ok {
		http.NotFound(w, r)
		return
	}

	rec, ok := t.store.Get(receiptID)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	participants := make([]ParticipantResponse, len(rec.Participants))
	for i, p := range rec.Participants {
		participants[i] = ParticipantResponse{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			PhoneNumber: p.PhoneNumber,
		}
	}
	writeJSON(w, http.StatusOK, participants)
}

// AssignItemHandler handles
// POST /receipts/{receipt_id}/items/{item_id}/participants/{participant_id}
//
// Assignment is idempotent and tolerates stale item ids, so a found receipt
// always answers 204.
func (t *Transport) AssignItemHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, itemID, participantID, ok := parseAssignmentPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !t.store.Assign(receiptID, itemID, participantID) {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnassignItemHandler handles
// DELETE /receipts/{receipt_id}/items/{item_id}/participants/{participant_id}
func (t *Transport) UnassignItemHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, itemID, participantID, ok := parseAssignmentPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !t.store.Unassign(receiptID, itemID, participantID) {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
