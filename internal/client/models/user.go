package models

// User is the authenticated account as the backend returns it.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
}

// Session is the persisted auth state. Absence of a stored session means
// the client is unauthenticated.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
