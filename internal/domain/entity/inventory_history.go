package entity

import "time"

// DefaultUserInfo is recorded on history entries until real user
// identity tracking exists.
const DefaultUserInfo = "System/Admin"

// InventoryHistory is an append-only record of a stock quantity change.
// Rows are deleted only through the cascade on the owning product.
type InventoryHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	OldQuantity int       `gorm:"not null" json:"old_quantity"`
	NewQuantity int       `gorm:"not null" json:"new_quantity"`
	ChangeDate  time.Time `gorm:"not null" json:"change_date"`
	UserInfo    string    `gorm:"type:varchar(100);default:'System/Admin'" json:"user_info"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InventoryHistory) TableName() string {
	return "inventory_history"
}
