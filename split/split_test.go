package split

import (
	"math"
	"strings"
	"testing"

	"splitbill/receipt"
)

func f(v float64) *float64 { return &v }

func participants(names ...string) []receipt.Participant {
	ps := make([]receipt.Participant, len(names))
	for i, n := range names {
		ps[i] = receipt.Participant{ID: "p" + n, Name: n}
	}
	return ps
}

func owedByName(summaries []receipt.ParticipantSummary) map[string]float64 {
	out := make(map[string]float64, len(summaries))
	for _, s := range summaries {
		out[s.Name] = s.Owed
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeSummariesSharedItemWithTaxAndTip(t *testing.T) {
	ps := participants("Alice", "Bob")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Pasta", UnitPrice: 10.00, Quantity: 1, Assigned: []string{"pAlice", "pBob"}},
	}

	summaries := ComputeSummaries(ps, items, f(2.00), f(1.00))

	owed := owedByName(summaries)
	// 5.00 item share + 1.00 tax share + 0.50 tip share
	for _, name := range []string{"Alice", "Bob"} {
		if !almostEqual(owed[name], 6.50) {
			t.Errorf("%s owes %v, want 6.50", name, owed[name])
		}
	}
}

func TestComputeSummariesUnassignedItemsSplitAcrossEveryone(t *testing.T) {
	ps := participants("Alice", "Bob", "Cara")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Steak", UnitPrice: 30.00, Quantity: 1, Assigned: []string{"pAlice"}},
		{ID: "i2", Name: "Bread", UnitPrice: 4.50, Quantity: 2}, // unassigned, 9.00 total
	}

	summaries := ComputeSummaries(ps, items, nil, nil)

	owed := owedByName(summaries)
	if !almostEqual(owed["Alice"], 33.00) {
		t.Errorf("Alice owes %v, want 33.00", owed["Alice"])
	}
	for _, name := range []string{"Bob", "Cara"} {
		if !almostEqual(owed[name], 3.00) {
			t.Errorf("%s owes %v, want 3.00", name, owed[name])
		}
	}
}

func TestComputeSummariesQuantityMultipliesItemTotal(t *testing.T) {
	ps := participants("Alice", "Bob")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Burger", UnitPrice: 10.00, Quantity: 2, Assigned: []string{"pAlice", "pBob"}},
	}

	owed := owedByName(ComputeSummaries(ps, items, nil, nil))
	for _, name := range []string{"Alice", "Bob"} {
		if !almostEqual(owed[name], 10.00) {
			t.Errorf("%s owes %v, want 10.00", name, owed[name])
		}
	}
}

func TestComputeSummariesZeroItemParticipantStillAppears(t *testing.T) {
	ps := participants("Alice", "Bob")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Salad", UnitPrice: 8.00, Quantity: 1, Assigned: []string{"pAlice"}},
	}

	summaries := ComputeSummaries(ps, items, nil, nil)

	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].Name != "Alice" || summaries[1].Name != "Bob" {
		t.Errorf("summaries must preserve roster order, got %v then %v", summaries[0].Name, summaries[1].Name)
	}
	if summaries[1].Owed != 0 {
		t.Errorf("Bob owes %v, want 0", summaries[1].Owed)
	}
}

func TestComputeSummariesAbsentTaxAndTip(t *testing.T) {
	ps := participants("Alice")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Soup", UnitPrice: 6.00, Quantity: 1, Assigned: []string{"pAlice"}},
	}

	owed := owedByName(ComputeSummaries(ps, items, nil, nil))
	if !almostEqual(owed["Alice"], 6.00) {
		t.Errorf("Alice owes %v, want 6.00", owed["Alice"])
	}
}

func TestComputeSummariesNoParticipants(t *testing.T) {
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Soup", UnitPrice: 6.00, Quantity: 1},
	}

	summaries := ComputeSummaries(nil, items, f(2.00), f(1.00))
	if len(summaries) != 0 {
		t.Errorf("len(summaries) = %d, want 0", len(summaries))
	}
}

func TestComputeSummariesCarriesFullPrecision(t *testing.T) {
	ps := participants("Alice", "Bob", "Cara")
	items := []receipt.ReceiptItem{
		{ID: "i1", Name: "Platter", UnitPrice: 10.00, Quantity: 1, Assigned: []string{"pAlice", "pBob", "pCara"}},
	}

	owed := owedByName(ComputeSummaries(ps, items, nil, nil))
	// No rounding at this stage: each share is exactly 10/3.
	if !almostEqual(owed["Alice"], 10.0/3.0) {
		t.Errorf("Alice owes %v, want 10/3", owed["Alice"])
	}
}

func TestRenderText(t *testing.T) {
	r := receipt.Receipt{
		RestaurantName: "Joe's Diner",
		Subtotal:       f(20.00),
		Tax:            f(1.50),
		Tip:            f(3.00),
		TotalAmount:    f(24.50),
	}
	summaries := []receipt.ParticipantSummary{
		{ParticipantID: "pAlice", Name: "Alice", Owed: 12.25},
		{ParticipantID: "pBob", Name: "Bob", Owed: 12.25},
	}

	got := RenderText(r, summaries)
	want := "Joe's Diner\n" +
		"------------------------\n" +
		"Subtotal: $20.00\n" +
		"Tax: $1.50\n" +
		"Tip: $3.00\n" +
		"Total: $24.50\n" +
		"------------------------\n" +
		"Split between 2 people:\n" +
		"Alice: $12.25\n" +
		"Bob: $12.25\n"

	if got != want {
		t.Errorf("RenderText mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderTextAbsentAmountsShowAsZero(t *testing.T) {
	r := receipt.Receipt{RestaurantName: "Unknown Restaurant"}

	got := RenderText(r, nil)
	want := "Unknown Restaurant\n" +
		"------------------------\n" +
		"Subtotal: $0.00\n" +
		"Tax: $0.00\n" +
		"Tip: $0.00\n" +
		"Total: $0.00\n" +
		"------------------------\n" +
		"Split between 0 people:\n"

	if got != want {
		t.Errorf("RenderText mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderTextRoundsOnlyAtDisplay(t *testing.T) {
	r := receipt.Receipt{RestaurantName: "Cafe"}
	summaries := []receipt.ParticipantSummary{
		{ParticipantID: "p1", Name: "Alice", Owed: 10.0 / 3.0},
	}

	got := RenderText(r, summaries)
	if !strings.Contains(got, "Alice: $3.33\n") {
		t.Errorf("render should round 10/3 to 3.33, got:\n%s", got)
	}
}
