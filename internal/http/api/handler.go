package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/achuth-0908/scgateway/internal/backup"
	"github.com/achuth-0908/scgateway/internal/customer"
	"github.com/achuth-0908/scgateway/internal/database"
	"github.com/achuth-0908/scgateway/internal/manufacturer"
	"github.com/achuth-0908/scgateway/internal/report"
	"github.com/achuth-0908/scgateway/internal/supplier"
)

type Handler struct {
	suppliers     *supplier.Service
	manufacturers *manufacturer.Service
	customers     *customer.Service
	reports       *report.Service
	backups       *backup.Service
}

// NewHandler wires the HTTP surface to the gateway services. backups may be
// nil when the store is not SQLite.
func NewHandler(
	s *supplier.Service,
	m *manufacturer.Service,
	c *customer.Service,
	r *report.Service,
	b *backup.Service,
) *Handler {
	return &Handler{
		suppliers:     s,
		manufacturers: m,
		customers:     c,
		reports:       r,
		backups:       b,
	}
}

// fail maps a service error to a JSON error response.
func fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case database.IsConnectError(err):
		status = http.StatusServiceUnavailable
	case database.IsUniqueViolation(err):
		status = http.StatusConflict
	case errors.Is(err, report.ErrUnknownReport):
		status = http.StatusNotFound
	}
	zerolog.Ctx(c.Request().Context()).Warn().Err(err).Int("status", status).Str("path", c.Path()).Msg("request failed")
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// Suppliers

func (h *Handler) GetSuppliers(c echo.Context) error {
	out, err := h.suppliers.GetSuppliers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateSupplier(c echo.Context) error {
	var req CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	s := req.toSupplier()
	if err := h.suppliers.InsertSupplier(c.Request().Context(), s); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *Handler) GetSupplierProducts(c echo.Context) error {
	out, err := h.suppliers.GetSupplierProducts(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateSupplierProduct(c echo.Context) error {
	var req CreateSupplierProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	p := req.toProduct()
	if err := h.suppliers.InsertSupplierProduct(c.Request().Context(), p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Manufacturers

func (h *Handler) GetManufacturers(c echo.Context) error {
	out, err := h.manufacturers.GetManufacturers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateManufacturer(c echo.Context) error {
	var req CreateManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	m := req.toManufacturer()
	if err := h.manufacturers.InsertManufacturer(c.Request().Context(), m); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// Customers

func (h *Handler) GetCustomers(c echo.Context) error {
	out, err := h.customers.GetCustomers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	cust := req.toCustomer()
	if err := h.customers.InsertCustomer(c.Request().Context(), cust); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, cust)
}

// Reports

func (h *Handler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, ReportListResponse{Reports: h.reports.Names()})
}

func (h *Handler) RunReport(c echo.Context) error {
	out, err := h.reports.Run(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Backup

func (h *Handler) BackupDatabase(c echo.Context) error {
	out, err := h.backups.CreateBackup(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
