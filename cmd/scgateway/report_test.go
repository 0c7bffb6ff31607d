package main

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/achuth-0908/scgateway/internal/report"
)

func TestPrintReportGroupsDigits(t *testing.T) {
	var buf bytes.Buffer
	rows := []report.InventoryStatus{
		{InventoryID: 1, Quantity: 1200, StockLevel: report.StockHigh},
		{InventoryID: 2, Quantity: 40, StockLevel: report.StockLow},
	}

	if err := printReport(&buf, rows); err != nil {
		t.Fatalf("printReport: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.Contains(lines[1], "1,200") {
		t.Errorf("expected grouped quantity, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "INVENTORY") {
		t.Errorf("expected header first, got %q", lines[0])
	}
}

func TestPrintReportShipments(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []report.ShipmentDeliveryTime{
		{
			ShipmentID:   1,
			DispatchDate: sql.NullTime{Time: day, Valid: true},
			DeliveryDate: sql.NullTime{Time: day.AddDate(0, 0, 3), Valid: true},
			DeliveryDays: sql.NullFloat64{Float64: 3, Valid: true},
		},
		{ShipmentID: 2, DispatchDate: sql.NullTime{Time: day, Valid: true}},
	}

	if err := printReport(&buf, rows); err != nil {
		t.Fatalf("printReport: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "2024-03-04") || !strings.Contains(out, "3.0") {
		t.Errorf("expected delivered row, got %q", out)
	}
	last := strings.Split(strings.TrimSpace(out), "\n")[2]
	if strings.Count(last, "-") < 2 {
		t.Errorf("expected placeholders for the undelivered shipment, got %q", last)
	}
}

func TestPrintReportNullCells(t *testing.T) {
	var buf bytes.Buffer
	avg := 1234.5
	hardware := "hardware"
	rows := []report.CategoryPrice{
		{Category: &hardware, AvgPrice: &avg},
		{},
	}

	if err := printReport(&buf, rows); err != nil {
		t.Fatalf("printReport: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.Contains(lines[1], "1,234.50") {
		t.Errorf("expected grouped price, got %q", lines[1])
	}
	if strings.Count(lines[2], "-") != 2 {
		t.Errorf("expected placeholders for NULL category and price, got %q", lines[2])
	}
}

func TestPrintReportUnknownType(t *testing.T) {
	if err := printReport(&bytes.Buffer{}, []string{"x"}); err == nil {
		t.Error("expected error for unsupported rows")
	}
}
