package settings

// Role identifies the access level granted by a login password.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Setting keys stored in the settings tab.
const (
	KeyAdminPassword = "admin_pw"
	KeyUserPassword  = "user_pw"
)

// DefaultPasswords seed the settings tab when it is created or
// rebuilt. They match the values the working group started with.
var DefaultPasswords = map[string]string{
	KeyAdminPassword: "삼막로155",
	KeyUserPassword:  "2601",
}

// Passwords holds the two login passwords read from the settings tab.
type Passwords struct {
	Admin string
	User  string
}
