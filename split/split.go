// Package split computes the per-participant cost split for a receipt.
// All arithmetic is carried in full floating precision; rounding to cents
// happens only when amounts are rendered.
package split

import (
	"fmt"
	"strings"

	"splitbill/money"
	"splitbill/receipt"
)

// ComputeSummaries allocates item totals, tax and tip across the participants.
//
// Items with assignments are divided evenly across their assigned participants.
// The combined total of unassigned items, then tax, then tip, are each divided
// evenly across all participants. Every participant appears in the result, in
// roster order, even when they owe nothing.
func ComputeSummaries(participants []receipt.Participant, items []receipt.ReceiptItem, tax, tip *float64) []receipt.ParticipantSummary {
	owed := make(map[string]float64, len(participants))
	for _, p := range participants {
		owed[p.ID] = 0
	}

	var unassignedTotal float64
	for _, it := range items {
		if len(it.Assigned) == 0 {
			unassignedTotal += it.Total()
			continue
		}
		share := it.Total() / float64(len(it.Assigned))
		for _, id := range it.Assigned {
			owed[id] += share
		}
	}

	if unassignedTotal > 0 && len(participants) > 0 {
		share := unassignedTotal / float64(len(participants))
		for _, p := range participants {
			owed[p.ID] += share
		}
	}

	for _, extra := range []*float64{tax, tip} {
		if extra == nil || *extra <= 0 || len(participants) == 0 {
			continue
		}
		share := *extra / float64(len(participants))
		for _, p := range participants {
			owed[p.ID] += share
		}
	}

	summaries := make([]receipt.ParticipantSummary, len(participants))
	for i, p := range participants {
		summaries[i] = receipt.ParticipantSummary{
			ParticipantID: p.ID,
			Name:          p.Name,
			Owed:          owed[p.ID],
		}
	}
	return summaries
}

// RenderText produces the plain-text block shared with end users. The layout,
// labels and whitespace are a contract; absent amounts render as $0.00.
func RenderText(r receipt.Receipt, summaries []receipt.ParticipantSummary) string {
	var sb strings.Builder
	sb.WriteString(r.RestaurantName + "\n")
	sb.WriteString("------------------------\n")
	sb.WriteString(fmt.Sprintf("Subtotal: $%s\n", money.Format(orZero(r.Subtotal))))
	sb.WriteString(fmt.Sprintf("Tax: $%s\n", money.Format(orZero(r.Tax))))
	sb.WriteString(fmt.Sprintf("Tip: $%s\n", money.Format(orZero(r.Tip))))
	sb.WriteString(fmt.Sprintf("Total: $%s\n", money.Format(orZero(r.TotalAmount))))
	sb.WriteString("------------------------\n")
	sb.WriteString(fmt.Sprintf("Split between %d people:\n", len(summaries)))
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("%s: $%s\n", s.Name, money.Format(s.Owed)))
	}
	return sb.String()
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
