package api

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the gateway API on g. Writes go through writeAuth.
func RegisterRoutes(g *echo.Group, h *Handler, writeAuth echo.MiddlewareFunc) {

	// Suppliers
	g.GET("/suppliers", h.GetSuppliers)
	g.POST("/suppliers", h.CreateSupplier, writeAuth)
	g.GET("/supplier-products", h.GetSupplierProducts)
	g.POST("/supplier-products", h.CreateSupplierProduct, writeAuth)

	// Manufacturers
	g.GET("/manufacturers", h.GetManufacturers)
	g.POST("/manufacturers", h.CreateManufacturer, writeAuth)

	// Customers
	g.GET("/customers", h.GetCustomers)
	g.POST("/customers", h.CreateCustomer, writeAuth)

	// Reports
	g.GET("/reports", h.ListReports)
	g.GET("/reports/:name", h.RunReport)

	// Backup (SQLite only)
	if h.backups != nil {
		g.POST("/admin/backup", h.BackupDatabase, writeAuth)
	}
}
