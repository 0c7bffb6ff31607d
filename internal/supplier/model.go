package supplier

// Supplier mirrors a supplier row. Text columns are nullable; a nil field
// is stored and read back as NULL.
type Supplier struct {
	SupplierID int64   `db:"supplier_id" json:"supplierId"`
	Name       *string `db:"name" json:"name"`
	Address    *string `db:"address" json:"address"`
	PhoneNo    *string `db:"phone_no" json:"phoneNo"`
	Email      *string `db:"email" json:"email"`
}

// Product links a supplier to something it supplies. The supplier id is not
// checked against the supplier table.
type Product struct {
	SupplierID       int64   `db:"supplier_id" json:"supplierId"`
	ProductsSupplied *string `db:"products_supplied" json:"productsSupplied"`
}
