package supplier

const getAllSuppliersSQL = `
SELECT supplier_id, name, address, phone_no, email
FROM supplier
ORDER BY supplier_id
`

const createSupplierSQL = `
INSERT INTO supplier (
    supplier_id, name, address, phone_no, email
) VALUES (?, ?, ?, ?, ?)
`

const getAllSupplierProductsSQL = `
SELECT supplier_id, products_supplied
FROM supplier_products
ORDER BY supplier_id, products_supplied
`

const createSupplierProductSQL = `
INSERT INTO supplier_products (
    supplier_id, products_supplied
) VALUES (?, ?)
`
