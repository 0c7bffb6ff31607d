package customer

type Customer struct {
	CustomerID int64   `db:"customer_id" json:"customerId"`
	Name       *string `db:"name" json:"name"`
	Address    *string `db:"address" json:"address"`
	PhoneNo    *string `db:"phone_no" json:"phoneNo"`
	Email      *string `db:"email" json:"email"`
}
