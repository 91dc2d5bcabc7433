package receipt

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ReceiptItem is one billable line on a receipt.
// UnitPrice is the price of a single unit; the line total is UnitPrice * Quantity.
type ReceiptItem struct {
	ID        string
	Name      string
	UnitPrice float64
	Quantity  int
	Assigned  []string // participant ids, set semantics (no duplicates)
}

// Total returns the line total for the item.
func (it ReceiptItem) Total() float64 {
	return it.UnitPrice * float64(it.Quantity)
}

// IsAssignedTo reports whether the item is billed to the given participant.
func (it ReceiptItem) IsAssignedTo(participantID string) bool {
	for _, id := range it.Assigned {
		if id == participantID {
			return true
		}
	}
	return false
}

// NewItem creates a blank item the way the "add item" action does.
func NewItem() ReceiptItem {
	return ReceiptItem{
		ID:       ulid.Make().String(),
		Name:     "New Item",
		Quantity: 1,
	}
}

// Participant is a person who may be billed for items. Participant identity is
// shared with the roster; the receipt holds participants by value.
type Participant struct {
	ID          string
	Name        string
	Email       *string
	PhoneNumber *string
}

// NewParticipant creates a participant with a fresh id.
func NewParticipant(name string, email, phoneNumber *string) Participant {
	return Participant{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
	}
}

// Receipt is the structured representation of a restaurant bill derived from OCR text.
// Subtotal, Tax, Tip and TotalAmount come independently from OCR matches; any of
// them may be nil, and they are not reconciled against each other.
type Receipt struct {
	ID             string
	ImageRef       string // opaque source image reference, carried through unchanged
	RestaurantName string
	Date           time.Time
	Items          []ReceiptItem
	Participants   []Participant
	Subtotal       *float64
	Tax            *float64
	Tip            *float64
	TotalAmount    *float64
}

// ParticipantSummary is the derived per-participant owed amount. It is
// recomputed whenever assignments or totals change, never mutated in place.
type ParticipantSummary struct {
	ParticipantID string
	Name          string
	Owed          float64
}

// ItemsTotal returns the sum of all line totals.
func (r *Receipt) ItemsTotal() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Total()
	}
	return total
}

// Assign adds the participant to the item's assignment set. Adding an already
// present participant, or assigning on an unknown item id, is a no-op.
func (r *Receipt) Assign(itemID, participantID string) {
	for i := range r.Items {
		if r.Items[i].ID != itemID {
			continue
		}
		if !r.Items[i].IsAssignedTo(participantID) {
			r.Items[i].Assigned = append(r.Items[i].Assigned, participantID)
		}
		return
	}
}

// Unassign removes the participant from the item's assignment set. Removing a
// participant that is not assigned, or an unknown item id, is a no-op.
func (r *Receipt) Unassign(itemID, participantID string) {
	for i := range r.Items {
		if r.Items[i].ID != itemID {
			continue
		}
		for j, id := range r.Items[i].Assigned {
			if id == participantID {
				r.Items[i].Assigned = append(r.Items[i].Assigned[:j], r.Items[i].Assigned[j+1:]...)
				return
			}
		}
		return
	}
}

// Clone returns a deep copy of the receipt.
func (r *Receipt) Clone() Receipt {
	out := *r
	out.Items = make([]ReceiptItem, len(r.Items))
	for i, it := range r.Items {
		out.Items[i] = it
		out.Items[i].Assigned = append([]string(nil), it.Assigned...)
	}
	out.Participants = append([]Participant(nil), r.Participants...)
	out.Subtotal = clonePtr(r.Subtotal)
	out.Tax = clonePtr(r.Tax)
	out.Tip = clonePtr(r.Tip)
	out.TotalAmount = clonePtr(r.TotalAmount)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
