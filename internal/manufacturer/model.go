package manufacturer

type Manufacturer struct {
	ManufacturerID int64   `db:"manufacturer_id" json:"manufacturerId"`
	Name           *string `db:"name" json:"name"`
	Address        *string `db:"address" json:"address"`
	PhoneNo        *string `db:"phone_no" json:"phoneNo"`
	Email          *string `db:"email" json:"email"`
}
