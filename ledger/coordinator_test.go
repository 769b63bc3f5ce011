package ledger

import (
	"errors"
	"testing"

	"github.com/lacsuuuu/ergin-hardware/apperrors"
)

func validSale() Batch {
	return Batch{
		Kind:    KindSale,
		PartyID: 3,
		Total:   20.0,
		Lines:   []Line{{ProductID: 7, Quantity: 2, UnitValue: 10.0}},
	}
}

func TestValidateBatchAcceptsValidInput(t *testing.T) {
	if err := validateBatch(validSale()); err != nil {
		t.Fatalf("validateBatch(valid sale) = %v, want nil", err)
	}

	restock := Batch{
		Kind:    KindRestock,
		PartyID: 1,
		Total:   650.0,
		Lines: []Line{
			{ProductID: 2, Quantity: 5, UnitValue: 100.0},
			{ProductID: 4, Quantity: 3, UnitValue: 50.0},
		},
	}
	if err := validateBatch(restock); err != nil {
		t.Fatalf("validateBatch(valid restock) = %v, want nil", err)
	}
}

func TestValidateBatchRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Batch)
	}{
		{"unknown kind", func(b *Batch) { b.Kind = "refund" }},
		{"missing party", func(b *Batch) { b.PartyID = 0 }},
		{"empty items", func(b *Batch) { b.Lines = nil }},
		{"zero quantity", func(b *Batch) { b.Lines[0].Quantity = 0 }},
		{"negative quantity", func(b *Batch) { b.Lines[0].Quantity = -2 }},
		{"negative unit value", func(b *Batch) { b.Lines[0].UnitValue = -1 }},
		{"missing product id", func(b *Batch) { b.Lines[0].ProductID = 0 }},
		{"total mismatch", func(b *Batch) { b.Total = 99.99 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			batch := validSale()
			tc.mutate(&batch)

			err := validateBatch(batch)
			if err == nil {
				t.Fatal("validateBatch() = nil, want validation error")
			}

			var appErr *apperrors.Error
			if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
				t.Errorf("error = %v, want kind %q", err, apperrors.KindValidation)
			}
		})
	}
}

func TestValidateBatchToleratesFloatDrift(t *testing.T) {
	batch := Batch{
		Kind:    KindSale,
		PartyID: 1,
		Total:   0.30000000000000004, // 3 * 0.1 accumulated
		Lines:   []Line{{ProductID: 1, Quantity: 3, UnitValue: 0.1}},
	}
	if err := validateBatch(batch); err != nil {
		t.Errorf("validateBatch() = %v, want drift within epsilon accepted", err)
	}
}

func TestStockDeltaDirection(t *testing.T) {
	if got := stockDelta(KindRestock, 5); got != 5 {
		t.Errorf("stockDelta(restock, 5) = %d, want 5", got)
	}
	if got := stockDelta(KindSale, 5); got != -5 {
		t.Errorf("stockDelta(sale, 5) = %d, want -5", got)
	}
}

func TestPartyFieldNames(t *testing.T) {
	if got := partyField(KindSale); got != "customer_id" {
		t.Errorf("partyField(sale) = %q, want customer_id", got)
	}
	if got := partyField(KindRestock); got != "supplier_id" {
		t.Errorf("partyField(restock) = %q, want supplier_id", got)
	}
}
