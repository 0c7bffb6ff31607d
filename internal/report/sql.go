package report

import "github.com/achuth-0908/scgateway/internal/database"

// Report cutoffs.
const (
	TopCustomerLimit   = 10
	HighStockThreshold = 100 // quantity above this is HIGH
	MediumStockFloor   = 51  // MEDIUM covers MediumStockFloor..HighStockThreshold
)

const supplierProductCountSQL = `
SELECT s.name, COUNT(sp.products_supplied) AS product_count
FROM supplier s
JOIN supplier_products sp ON s.supplier_id = sp.supplier_id
GROUP BY s.supplier_id, s.name
ORDER BY product_count DESC
`

// Ties on total_orders come back in whatever order the store picks.
const topCustomersSQL = `
SELECT c.name, COUNT(p.purchase_order_id) AS total_orders
FROM customer c
JOIN purchase_order p ON c.customer_id = p.customer_id
GROUP BY c.customer_id, c.name
ORDER BY total_orders DESC
LIMIT ?
`

const averagePriceByCategorySQL = `
SELECT category, AVG(price) AS avg_price
FROM product
GROUP BY category
ORDER BY avg_price DESC NULLS LAST
`

const inventoryStatusSQL = `
SELECT inventory_id, quantity,
       CASE
           WHEN quantity > ? THEN 'HIGH'
           WHEN quantity BETWEEN ? AND ? THEN 'MEDIUM'
           ELSE 'LOW'
       END AS stock_level
FROM inventory
ORDER BY inventory_id
`

const shipmentDeliveryTimesSQL = `
SELECT shipment_id, dispatch_date, delivery_date,
       %s AS delivery_duration
FROM shipment
ORDER BY delivery_duration DESC NULLS LAST
`

const returnRateByStatusSQL = `
SELECT status, COUNT(*) AS return_count
FROM return_order
GROUP BY status
ORDER BY return_count DESC
`

// deliveryDurationExpr returns the day difference between delivery and
// dispatch in the driver's dialect, in fractional days for DATE and
// TIMESTAMP columns alike.
func deliveryDurationExpr(driver string) string {
	if driver == database.DriverSQLite {
		return "julianday(delivery_date) - julianday(dispatch_date)"
	}
	return "EXTRACT(EPOCH FROM (delivery_date::timestamp - dispatch_date::timestamp))::double precision / 86400"
}
