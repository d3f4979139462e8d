package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldUsername = "username"
	FieldPassword = "password"
)

// User is read only here; accounts are created outside this service.
type User struct {
	Username string `db:"username"`
	Password string `db:"password"`
}
