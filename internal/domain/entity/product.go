package entity

type Product struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);uniqueIndex:idx_products_name;not null" json:"name"`
	Unit     string `gorm:"type:varchar(50)" json:"unit"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Brand    string `gorm:"type:varchar(100)" json:"brand"`
	Stock    int    `gorm:"not null;default:0" json:"stock"`
	Status   string `gorm:"type:varchar(50)" json:"status"`
	Image    string `gorm:"type:text" json:"image"`
}

func (Product) TableName() string {
	return "products"
}
