package domain

import "time"

// Order is a courier delivery as shown on the dashboard's active-orders
// table. The back office only reads these; nothing in this system creates
// or mutates them.
type Order struct {
	ID           string     `gorm:"primaryKey"`
	Status       string     `gorm:"column:status;not null"`
	EmployeeName string     `gorm:"column:employee_name;not null"`
	EmployeeID   string     `gorm:"column:employee_id;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"`
	DeliveredAt  *time.Time `gorm:"column:delivered_at"`
	Route        string     `gorm:"column:route;not null"`
	Address      string     `gorm:"column:address;not null"`
}

func (Order) TableName() string {
	return "orders"
}

// Statistics is the dashboard's headline numbers for a reporting period.
type Statistics struct {
	ID             string    `gorm:"primaryKey"`
	CurrentBalance float64   `gorm:"column:current_balance;not null"`
	TotalExpenses  float64   `gorm:"column:total_expenses;not null"`
	OrderCount     int       `gorm:"column:order_count;not null"`
	DateFrom       time.Time `gorm:"column:date_from;not null"`
	DateTo         time.Time `gorm:"column:date_to;not null"`
}

func (Statistics) TableName() string {
	return "statistics"
}
