package domain

import "time"

type Guest struct {
	ID                string     `gorm:"primaryKey"`
	Name              string     `gorm:"column:name;not null"`
	PhoneNumber       string     `gorm:"column:phone_number;not null"`
	TotalOrders       int        `gorm:"column:total_orders;not null;default:0"`
	TotalSpend        float64    `gorm:"column:total_spend;not null;default:0"`
	LastOrderDate     *time.Time `gorm:"column:last_order_date"`
	Segment           string     `gorm:"column:segment;not null"` // Office worker, Student, Parent, Night user
	CreatedAt         time.Time  `gorm:"column:created_at;not null"`
	FavoriteAddresses StringList `gorm:"column:favorite_addresses;type:text"`
	AvgOrderValue     *float64   `gorm:"column:avg_order_value"`
	DeliveryZone      *string    `gorm:"column:delivery_zone"`
	BehaviorPattern   *string    `gorm:"column:behavior_pattern"` // Evening user, Lunch buyer, etc.
}

func (Guest) TableName() string {
	return "guests"
}

// GuestPatch carries a partial update. Nil fields are left untouched;
// ID and CreatedAt are not patchable.
type GuestPatch struct {
	Name              *string
	PhoneNumber       *string
	TotalOrders       *int
	TotalSpend        *float64
	LastOrderDate     *time.Time
	Segment           *string
	FavoriteAddresses StringList
	AvgOrderValue     *float64
	DeliveryZone      *string
	BehaviorPattern   *string
}
