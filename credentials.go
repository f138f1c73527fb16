package puppyshop

// Role is the access tier returned by authentication. It gates which
// catalog-mutating operations are permitted.
type Role string

const (
	// RoleManager may add and modify products in addition to everything
	// RoleStaff can do.
	RoleManager Role = "manager"
	// RoleStaff may record sales and query the ledger.
	RoleStaff Role = "staff"
)

// CanManageCatalog reports whether the role may add or modify products.
func (r Role) CanManageCatalog() bool { return r == RoleManager }

// Credential is one row of the users file. Read-only at runtime.
type Credential struct {
	Username string `csv:"username"`
	Password string `csv:"password"`
	Role     Role   `csv:"role"`
}

// Credentials is the in-memory table of users.
type Credentials struct {
	users []Credential
}

// NewCredentials creates a credential list.
func NewCredentials(users ...Credential) *Credentials {
	return &Credentials{users: users}
}

// Len returns the number of credentials.
func (c *Credentials) Len() int { return len(c.users) }

// Authenticate scans for an exact username/password pair and returns the
// associated role of the first match. A miss is not an error.
func (c *Credentials) Authenticate(username, password string) (Role, bool) {
	for _, u := range c.users {
		if u.Username == username && u.Password == password {
			return u.Role, true
		}
	}
	return "", false
}
