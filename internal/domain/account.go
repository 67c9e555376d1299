package domain

// Account is an administrator row in the login table.
//
// Passwords are stored and compared in plaintext. The table schema is
// inherited from the legacy deployment and authentication is a literal
// equality match against it; hashing would break every existing row.
type Account struct {
	ID       int64
	Name     string
	Password string
}
