// AngelaMos | 2026
// entity.go

package user

type User struct {
	ID             int64   `db:"id"`
	Username       string  `db:"username"`
	Email          string  `db:"email"`
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	PhoneNumber    *string `db:"phone_number"`
	HashedPassword string  `db:"hashed_password"`
	Role           string  `db:"role"`
	IsActive       bool    `db:"is_active"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
