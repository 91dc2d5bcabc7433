package money

import (
	"encoding/json"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{21.95, 21.95},
		{22.0, 22.0},
		{18.00, 18.0},
		{1.50, 1.50},
		{6.50, 6.50},
		{12.25, 12.25},
		{12.950000762939453, 12.95},
		{6.666666666666667, 6.67},
	}
	for _, tt := range tests {
		got := Round(tt.value)
		if got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{21.95, "21.95"},
		{22.0, "22.00"},
		{0, "0.00"},
		{1.5, "1.50"},
		{6.5, "6.50"},
		{12.25, "12.25"},
		{1234.5, "1234.50"},
	}
	for _, tt := range tests {
		if got := Format(tt.value); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{21.95, "21.95"},
		{22.0, "22.00"},
		{18.0, "18.00"},
		{1.5, "1.50"},
		{6.5, "6.50"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Amount{Value: tt.value})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if got := string(b); got != tt.want {
			t.Errorf("Marshal(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte("12.25"), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.Value != 12.25 {
		t.Errorf("Value = %v, want 12.25", a.Value)
	}
}

func TestPtr(t *testing.T) {
	if Ptr(nil) != nil {
		t.Error("Ptr(nil) should be nil")
	}
	v := 12.950000762939453
	a := Ptr(&v)
	if a == nil || a.Value != 12.95 {
		t.Errorf("Ptr(%v) = %+v, want 12.95", v, a)
	}
}
