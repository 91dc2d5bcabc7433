package transport

import (
	"splitbill/money"
	"splitbill/receipt"
)

// ReceiptItemResponse represents a single item in a receipt
type ReceiptItemResponse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	UnitPrice  money.Amount `json:"unit_price"`
	TotalPrice money.Amount `json:"total_price"`
	Assigned   []string     `json:"assigned_participant_ids"`
}

// ParticipantResponse represents a participant on a receipt
type ParticipantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// ReceiptResponse represents the full receipt
type ReceiptResponse struct {
	ReceiptID      string                `json:"receipt_id"`
	ImageURL       string                `json:"image_url,omitempty"`
	RestaurantName string                `json:"restaurant_name"`
	Date           string                `json:"date"`
	Items          []ReceiptItemResponse `json:"items"`
	Participants   []ParticipantResponse `json:"participants"`
	Subtotal       *money.Amount         `json:"subtotal,omitempty"`
	Tax            *money.Amount         `json:"tax,omitempty"`
	Tip            *money.Amount         `json:"tip,omitempty"`
	TotalAmount    *money.Amount         `json:"total_amount,omitempty"`
}

// AddParticipantRequest represents the request body for adding a participant
type AddParticipantRequest struct {
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateItemRequest represents the request body for editing an item.
// Omitted fields are left unchanged.
type UpdateItemRequest struct {
	Name      *string  `json:"name,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
}

// ParticipantSummaryResponse represents one participant's owed amount
type ParticipantSummaryResponse struct {
	ParticipantID string       `json:"participant_id"`
	Name          string       `json:"name"`
	Owed          money.Amount `json:"owed"`
}

// SummaryResponse represents the computed split plus its shareable text form
type SummaryResponse struct {
	ReceiptID    string                       `json:"receipt_id"`
	Participants []ParticipantSummaryResponse `json:"participants"`
	Text         string                       `json:"text"`
}

func toItemResponse(it receipt.ReceiptItem) ReceiptItemResponse {
	assigned := it.Assigned
	if assigned == nil {
		assigned = []string{}
	}
	return ReceiptItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		UnitPrice:  money.NewAmount(it.UnitPrice),
		TotalPrice: money.NewAmount(it.Total()),
		Assigned:   assigned,
	}
}

func toReceiptResponse(r receipt.Receipt) ReceiptResponse {
	items := make([]ReceiptItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = toItemResponse(it)
	}
	participants := make([]ParticipantResponse, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = ParticipantResponse{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			PhoneNumber: p.PhoneNumber,
		}
	}
	return ReceiptResponse{
		ReceiptID:      r.ID,
		ImageURL:       r.ImageRef,
		RestaurantName: r.RestaurantName,
		Date:           r.Date.Format("2006-01-02"),
		Items:          items,
		Participants:   participants,
		Subtotal:       money.Ptr(r.Subtotal),
		Tax:            money.Ptr(r.Tax),
		Tip:            money.Ptr(r.Tip),
		TotalAmount:    money.Ptr(r.TotalAmount),
	}
}
