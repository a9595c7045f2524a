package models

import "time"

// User represents an account entity used for authentication, account linking
// and query ownership. Credential data must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userId"`

	// Language is the user's preferred locale code. Always one of the
	// supported set; defaults to "en".
	Language string `json:"language"`

	// PhoneNo is the unique login identifier used during authentication.
	PhoneNo string `json:"phoneNo"`

	// Password stores the bcrypt hash of the user's password.
	// Never exposed via JSON and never stored in plaintext.
	Password string `json:"-"`

	// Fullname is the optional display name of the user.
	Fullname string `json:"fullname,omitempty"`

	// AccountNo, IfscCode and Branch hold linked bank-account details.
	// Either all three are set and IsLinked is true, or the account is
	// not linked and the question context is left untouched.
	AccountNo string `json:"accountNo,omitempty"`
	IfscCode  string `json:"ifscCode,omitempty"`
	Branch    string `json:"branch,omitempty"`

	// IsLinked reports whether bank-account details have been attached
	// to this profile via account activation.
	IsLinked bool `json:"isLinked"`

	// Queries is the ordered list of query identifiers owned by the user,
	// oldest first. Populated on read from the queries table.
	Queries []int64 `json:"queries,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
