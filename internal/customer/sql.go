package customer

const getAllCustomersSQL = `
SELECT customer_id, name, address, phone_no, email
FROM customer
ORDER BY customer_id
`

const createCustomerSQL = `
INSERT INTO customer (
    customer_id, name, address, phone_no, email
) VALUES (?, ?, ?, ?, ?)
`
