package api

import (
	"github.com/achuth-0908/scgateway/internal/customer"
	"github.com/achuth-0908/scgateway/internal/manufacturer"
	"github.com/achuth-0908/scgateway/internal/supplier"
)

// Text fields left out of a request body are stored as NULL.

// -------------------------
// Supplier DTOs
// -------------------------

type CreateSupplierRequest struct {
	SupplierID int64   `json:"supplierId"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	PhoneNo    *string `json:"phoneNo"`
	Email      *string `json:"email"`
}

func (r *CreateSupplierRequest) toSupplier() *supplier.Supplier {
	return &supplier.Supplier{
		SupplierID: r.SupplierID,
		Name:       r.Name,
		Address:    r.Address,
		PhoneNo:    r.PhoneNo,
		Email:      r.Email,
	}
}

type CreateSupplierProductRequest struct {
	SupplierID       int64   `json:"supplierId"`
	ProductsSupplied *string `json:"productsSupplied"`
}

func (r *CreateSupplierProductRequest) toProduct() *supplier.Product {
	return &supplier.Product{
		SupplierID:       r.SupplierID,
		ProductsSupplied: r.ProductsSupplied,
	}
}

// -------------------------
// Manufacturer DTOs
// -------------------------

type CreateManufacturerRequest struct {
	ManufacturerID int64   `json:"manufacturerId"`
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	PhoneNo        *string `json:"phoneNo"`
	Email          *string `json:"email"`
}

func (r *CreateManufacturerRequest) toManufacturer() *manufacturer.Manufacturer {
	return &manufacturer.Manufacturer{
		ManufacturerID: r.ManufacturerID,
		Name:           r.Name,
		Address:        r.Address,
		PhoneNo:        r.PhoneNo,
		Email:          r.Email,
	}
}

// -------------------------
// Customer DTOs
// -------------------------

type CreateCustomerRequest struct {
	CustomerID int64   `json:"customerId"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	PhoneNo    *string `json:"phoneNo"`
	Email      *string `json:"email"`
}

func (r *CreateCustomerRequest) toCustomer() *customer.Customer {
	return &customer.Customer{
		CustomerID: r.CustomerID,
		Name:       r.Name,
		Address:    r.Address,
		PhoneNo:    r.PhoneNo,
		Email:      r.Email,
	}
}

// -------------------------
// Report DTOs
// -------------------------

type ReportListResponse struct {
	Reports []string `json:"reports"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
