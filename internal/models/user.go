package models

// User is an account created at signup. The email is the login key; only
// the bcrypt hash of the password is ever persisted.
type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
