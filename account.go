package accounts

import (
	"errors"
	"strings"
)

// Account is a stored identity record. PasswordDigest is the only form of
// the password that is ever kept or persisted.
type Account struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	PasswordDigest string `json:"passwordDigest"`
}

var (
	ErrInvalidName        = errors.New("first name must be a single word")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrDuplicateEmail     = errors.New("email in use")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("account not found")
)

// WeakPasswordError carries the names of the password policy rules a
// candidate password violated.
type WeakPasswordError struct {
	Violations []string
}

func (e *WeakPasswordError) Error() string {
	return "weak password: " + strings.Join(e.Violations, ", ")
}

// StorageError reports a mutation that could not be durably saved. It wraps
// the underlying filesystem or encoding error.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "could not save accounts: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewAccount validates the first name and email and returns an Account with
// the composed display name. The last name is intentionally unvalidated and
// may be empty or multi-word. The password digest is set by the service.
func NewAccount(firstName, lastName, email string) (*Account, error) {
	first := strings.TrimSpace(firstName)
	if first == "" || len(strings.Fields(first)) != 1 {
		return nil, ErrInvalidName
	}

	if !ValidateEmail(email) {
		return nil, ErrInvalidEmail
	}

	full := strings.TrimSpace(FormatName(first) + " " + FormatName(lastName))
	return &Account{FullName: full, Email: email}, nil
}
