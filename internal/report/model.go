package report

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Text and price columns are nullable in the store, so report rows carry
// them as pointers and NULL reads back as nil.

type SupplierProductCount struct {
	Name         *string `db:"name" json:"name"`
	ProductCount int64   `db:"product_count" json:"productCount"`
}

type CustomerOrderVolume struct {
	Name        *string `db:"name" json:"name"`
	TotalOrders int64   `db:"total_orders" json:"totalOrders"`
}

// CategoryPrice has a nil AvgPrice when no product in the category has a
// price.
type CategoryPrice struct {
	Category *string  `db:"category" json:"category"`
	AvgPrice *float64 `db:"avg_price" json:"avgPrice"`
}

// Stock levels assigned by InventoryStatus.
const (
	StockHigh   = "HIGH"
	StockMedium = "MEDIUM"
	StockLow    = "LOW"
)

type InventoryStatus struct {
	InventoryID int64  `db:"inventory_id" json:"inventoryId"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	StockLevel  string `db:"stock_level" json:"stockLevel"`
}

// ShipmentDeliveryTime is one shipment with its delivery duration in days.
// Shipments that have not been delivered have no DeliveryDate and no
// DeliveryDays.
type ShipmentDeliveryTime struct {
	ShipmentID   int64           `db:"shipment_id" json:"shipmentId"`
	DispatchDate sql.NullTime    `db:"dispatch_date" json:"-"`
	DeliveryDate sql.NullTime    `db:"delivery_date" json:"-"`
	DeliveryDays sql.NullFloat64 `db:"delivery_duration" json:"-"`
}

type ReturnStatusCount struct {
	Status      *string `db:"status" json:"status"`
	ReturnCount int64   `db:"return_count" json:"returnCount"`
}

// shipmentJSON is the wire form of ShipmentDeliveryTime.
type shipmentJSON struct {
	ShipmentID   int64      `json:"shipmentId"`
	DispatchDate *time.Time `json:"dispatchDate"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	DeliveryDays *float64   `json:"deliveryDays"`
}

func (s ShipmentDeliveryTime) MarshalJSON() ([]byte, error) {
	out := shipmentJSON{ShipmentID: s.ShipmentID}
	if s.DispatchDate.Valid {
		out.DispatchDate = &s.DispatchDate.Time
	}
	if s.DeliveryDate.Valid {
		out.DeliveryDate = &s.DeliveryDate.Time
	}
	if s.DeliveryDays.Valid {
		out.DeliveryDays = &s.DeliveryDays.Float64
	}
	return json.Marshal(out)
}
