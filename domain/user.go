package domain

// User is a back-office account. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	ID       string `gorm:"primaryKey"`
	Username string `gorm:"column:username;unique;not null"`
	Password string `gorm:"column:password;not null"`
}

func (User) TableName() string {
	return "users"
}
