package main

import (
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/achuth-0908/scgateway/internal/report"
)

// printReport writes report rows as an aligned table with grouped digits.
func printReport(out io.Writer, rows any) error {
	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	switch rs := rows.(type) {
	case []report.SupplierProductCount:
		fmt.Fprintln(w, "SUPPLIER\tPRODUCTS")
		for _, r := range rs {
			p.Fprintf(w, "%s\t%d\n", text(r.Name), r.ProductCount)
		}
	case []report.CustomerOrderVolume:
		fmt.Fprintln(w, "CUSTOMER\tORDERS")
		for _, r := range rs {
			p.Fprintf(w, "%s\t%d\n", text(r.Name), r.TotalOrders)
		}
	case []report.CategoryPrice:
		fmt.Fprintln(w, "CATEGORY\tAVG PRICE")
		for _, r := range rs {
			avg := "-"
			if r.AvgPrice != nil {
				avg = p.Sprintf("%.2f", *r.AvgPrice)
			}
			p.Fprintf(w, "%s\t%s\n", text(r.Category), avg)
		}
	case []report.InventoryStatus:
		fmt.Fprintln(w, "INVENTORY\tQUANTITY\tLEVEL")
		for _, r := range rs {
			p.Fprintf(w, "%d\t%d\t%s\n", r.InventoryID, r.Quantity, r.StockLevel)
		}
	case []report.ShipmentDeliveryTime:
		fmt.Fprintln(w, "SHIPMENT\tDISPATCHED\tDELIVERED\tDAYS")
		for _, r := range rs {
			days := "-"
			if r.DeliveryDays.Valid {
				days = p.Sprintf("%.1f", r.DeliveryDays.Float64)
			}
			p.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ShipmentID, date(r.DispatchDate), date(r.DeliveryDate), days)
		}
	case []report.ReturnStatusCount:
		fmt.Fprintln(w, "STATUS\tRETURNS")
		for _, r := range rs {
			p.Fprintf(w, "%s\t%d\n", text(r.Status), r.ReturnCount)
		}
	default:
		return fmt.Errorf("no table layout for %T", rows)
	}

	return w.Flush()
}

func date(t sql.NullTime) string {
	if !t.Valid {
		return "-"
	}
	return t.Time.Format("2006-01-02")
}

func text(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
