package transport

import (
	"net/http"

	"splitbill/money"
	"splitbill/split"
)

// GetSummaryHandler handles GET /receipts/{receipt_id}/summary
// Returns the per-participant split plus the shareable text rendering.
func (t *Transport) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "summary")
	if !ok {
		http.NotFound(w, r)
		return
	}

	rec, ok := t.store.Get(receiptID)
	if !ok {
		http.Error(w, NewNotFoundError("receipt", receiptID).Error(), http.StatusNotFound)
		return
	}

	summaries := split.ComputeSummaries(rec.Participants, rec.Items, rec.Tax, rec.Tip)

	participants := make([]ParticipantSummaryResponse, len(summaries))
	for i, s := range summaries {
		participants[i] = ParticipantSummaryResponse{
			ParticipantID: s.ParticipantID,
			Name:          s.Name,
			Owed:          money.NewAmount(s.Owed),
		}
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		ReceiptID:    rec.ID,
		Participants: participants,
		Text:         split.RenderText(rec, summaries),
	})
}
