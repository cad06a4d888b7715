package domain

// User represents an administrative account. These are provisioned at
// bootstrap or by another admin and are disjoint from employee accounts:
// their usernames never contain '@'.
type User struct {
	UserID       int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
}
