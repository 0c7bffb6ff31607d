package manufacturer

const getAllManufacturersSQL = `
SELECT manufacturer_id, name, address, phone_no, email
FROM manufacturer
ORDER BY manufacturer_id
`

const createManufacturerSQL = `
INSERT INTO manufacturer (
    manufacturer_id, name, address, phone_no, email
) VALUES (?, ?, ?, ?, ?)
`
