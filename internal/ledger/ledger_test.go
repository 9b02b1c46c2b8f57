package ledger

import (
	"testing"

	"go-pos-dashboard/internal/model"
)

func TestNewLedgerStartsWithOneBlankRow(t *testing.T) {
	l := New(false)
	rows := l.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Quantity != 1 || rows[0].DiscountPerItem != 0 {
		t.Fatalf("unexpected blank row: %+v", rows[0])
	}
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	l := New(false)
	if _, err := l.SetField(0, FieldItemID, "ITM001"); err != nil {
		t.Fatalf("set field failed: %v", err)
	}
	before := l.Rows()

	l.AddRow()
	if l.Len() != 2 {
		t.Fatalf("expected 2 rows after add, got %d", l.Len())
	}
	if !l.RemoveRow(1) {
		t.Fatal("remove of added row failed")
	}

	after := l.Rows()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("state changed: before=%+v after=%+v", before, after)
	}
}

func TestRemovingSoleRowIsNoOp(t *testing.T) {
	l := New(false)
	if l.RemoveRow(0) {
		t.Fatal("removing the only row must be a no-op")
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", l.Len())
	}
}

func TestQuantityClampsToStockWithWarning(t *testing.T) {
	l := New(false)
	if err := l.SelectItem(0, model.InventoryItem{ItemID: "ITM001", Price: 5000, Quantity: 3}); err != nil {
		t.Fatalf("select item failed: %v", err)
	}

	warning, err := l.SetField(0, FieldQuantity, "10")
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if warning == "" {
		t.Fatal("expected a warning when quantity exceeds stock")
	}

	rows := l.Rows()
	if rows[0].Quantity != 3 {
		t.Fatalf("expected quantity clamped to 3, got %d", rows[0].Quantity)
	}
	if rows[0].Total != 15000 {
		t.Fatalf("expected row total 15000, got %d", rows[0].Total)
	}
}

func TestRowTotalNeverNegative(t *testing.T) {
	l := New(false)
	l.SelectItem(0, model.InventoryItem{ItemID: "ITM001", Price: 1000, Quantity: 10})
	l.SetField(0, FieldQuantity, "2")
	if _, err := l.SetField(0, FieldDiscount, "5000"); err != nil {
		t.Fatalf("set discount failed: %v", err)
	}
	if got := l.Rows()[0].Total; got != 0 {
		t.Fatalf("expected total floored at 0, got %d", got)
	}
}

func TestSelectItemAutofillsRow(t *testing.T) {
	l := New(false)
	item := model.InventoryItem{ItemID: "KAOS-M", Description: "Kaos polos M", Quantity: 12, Price: 45000}
	if err := l.SelectItem(0, item); err != nil {
		t.Fatalf("select item failed: %v", err)
	}

	row := l.Rows()[0]
	if row.ItemID != "KAOS-M" || row.Description != "Kaos polos M" {
		t.Fatalf("autofill wrong: %+v", row)
	}
	if row.UnitPrice != 45000 || row.StockSnapshot != 12 {
		t.Fatalf("autofill wrong: %+v", row)
	}
	if row.Total != 45000 {
		t.Fatalf("expected total for qty 1 = 45000, got %d", row.Total)
	}
}

func TestThousandsInputParsing(t *testing.T) {
	l := New(true)
	l.SelectItem(0, model.InventoryItem{ItemID: "ITM001", Quantity: 5})
	if _, err := l.SetField(0, FieldPrice, "12.5"); err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	if got := l.Rows()[0].UnitPrice; got != 12500 {
		t.Fatalf("expected marketplace price 12500, got %d", got)
	}
}

func TestLookupIsCaseInsensitiveSubstring(t *testing.T) {
	items := []model.InventoryItem{
		{ItemID: "KAOS-M"},
		{ItemID: "kaos-L"},
		{ItemID: "CELANA-32"},
	}

	got := Lookup(items, "kaos")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got := Lookup(items, "ANA"); len(got) != 1 || got[0].ItemID != "CELANA-32" {
		t.Fatalf("substring match failed: %+v", got)
	}
	if got := Lookup(items, ""); got != nil {
		t.Fatalf("empty query should match nothing, got %+v", got)
	}
}
