package models

// User mirrors the users table (administrative accounts).
type User struct {
	UserID       int64   `db:"user_id"`
	Username     string  `db:"username"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Role         *string `db:"role"`
	Phone        string  `db:"phone"`
	Address      *string `db:"address"`
}
