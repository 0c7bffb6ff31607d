// Package report runs the read-only analytic queries over the supply chain
// store. Each report is one aggregate statement with no caller parameters.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/achuth-0908/scgateway/internal/database"
)

// ErrUnknownReport is returned by Run for names not in Names.
var ErrUnknownReport = errors.New("unknown report")

// Report names accepted by Run.
const (
	NameSupplierProductCount   = "supplier-product-count"
	NameTopCustomers           = "top-customers"
	NameAveragePriceByCategory = "average-price-by-category"
	NameInventoryStatus        = "inventory-status"
	NameShipmentDeliveryTimes  = "shipment-delivery-times"
	NameReturnRateByStatus     = "return-rate-by-status"
)

type Service struct {
	g       *database.Gateway
	runners map[string]func(context.Context) (any, error)
}

func NewService(g *database.Gateway) *Service {
	s := &Service{g: g}
	s.runners = map[string]func(context.Context) (any, error){
		NameSupplierProductCount:   wrap(s.SupplierProductCount),
		NameTopCustomers:           wrap(s.TopCustomersByOrderVolume),
		NameAveragePriceByCategory: wrap(s.AverageProductPriceByCategory),
		NameInventoryStatus:        wrap(s.InventoryStatus),
		NameShipmentDeliveryTimes:  wrap(s.ShipmentDeliveryTimes),
		NameReturnRateByStatus:     wrap(s.ReturnRateByStatus),
	}
	return s
}

func wrap[T any](fn func(context.Context) ([]T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		rows, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return rows, nil
	}
}

// Names lists the reports Run accepts, sorted.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.runners))
	for name := range s.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the report called name and returns its rows.
func (s *Service) Run(ctx context.Context, name string) (any, error) {
	run, ok := s.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}
	return run(ctx)
}

// SupplierProductCount counts supplied products per supplier, most first.
func (s *Service) SupplierProductCount(ctx context.Context) ([]SupplierProductCount, error) {
	return database.Query[SupplierProductCount](ctx, s.g, "supplier product count", supplierProductCountSQL)
}

// TopCustomersByOrderVolume returns at most TopCustomerLimit customers by
// purchase order count, most first. Customers with equal counts are not
// ordered among themselves.
func (s *Service) TopCustomersByOrderVolume(ctx context.Context) ([]CustomerOrderVolume, error) {
	return database.Query[CustomerOrderVolume](ctx, s.g, "top customers", topCustomersSQL, TopCustomerLimit)
}

func (s *Service) AverageProductPriceByCategory(ctx context.Context) ([]CategoryPrice, error) {
	return database.Query[CategoryPrice](ctx, s.g, "average product price", averagePriceByCategorySQL)
}

// InventoryStatus labels every inventory row HIGH (quantity > 100),
// MEDIUM (51..100) or LOW, ordered by inventory id.
func (s *Service) InventoryStatus(ctx context.Context) ([]InventoryStatus, error) {
	return database.Query[InventoryStatus](ctx, s.g, "inventory status", inventoryStatusSQL,
		HighStockThreshold,
		MediumStockFloor,
		HighStockThreshold,
	)
}

// ShipmentDeliveryTimes lists shipments by delivery duration in days,
// longest first. Undelivered shipments come last.
func (s *Service) ShipmentDeliveryTimes(ctx context.Context) ([]ShipmentDeliveryTime, error) {
	query := fmt.Sprintf(shipmentDeliveryTimesSQL, deliveryDurationExpr(s.g.Driver()))
	return database.Query[ShipmentDeliveryTime](ctx, s.g, "shipment delivery times", query)
}

func (s *Service) ReturnRateByStatus(ctx context.Context) ([]ReturnStatusCount, error) {
	return database.Query[ReturnStatusCount](ctx, s.g, "return rate", returnRateByStatusSQL)
}
