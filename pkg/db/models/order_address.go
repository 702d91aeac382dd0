package models

type OrderAddress struct {
	OrderID      string `gorm:"column:order_id;type:varchar(255);primaryKey"`
	Fullname     string `gorm:"column:fullname;type:varchar(200);not null"`
	AddressLine1 string `gorm:"column:address_line_1;type:varchar(200);not null"`
	AddressLine2 string `gorm:"column:address_line_2;type:varchar(200);not null"`
	AdminArea1   string `gorm:"column:admin_area_1;type:varchar(200);not null"`
	AdminArea2   string `gorm:"column:admin_area_2;type:varchar(200);not null"`
	PostalCode   string `gorm:"column:postal_code;type:varchar(200);not null"`
	Phone        string `gorm:"column:phone;type:varchar(11);not null"`
}

func (OrderAddress) TableName() string {
	return "orderaddresses"
}
