package accounts

type Service interface {
	Register(r RegisterRequest) (*Account, error)
	Authenticate(email, password string) (*Account, error)
	ChangePassword(acc *Account, currentPassword, newPassword, confirmation string) error
	DeleteAccount(acc *Account) error
	Count() int
}

// Events receives the audit trail of security-relevant actions. Messages
// identify accounts by email only; plaintext secrets and digests must never
// reach a sink.
type Events interface {
	Record(severity Severity, message string)
}

// Repository owns the in-memory account collection. Store, Update and
// Delete mutate only the collection; Save persists it. The service layer is
// responsible for pairing every mutation with a Save.
type Repository interface {
	FindByEmail(email string) (*Account, error)
	Store(acc *Account) error
	Update(acc *Account) error
	Delete(email string) error
	All() []Account
	Count() int
	Save() error
}

type RegisterRequest struct {
	FirstName            string
	LastName             string
	Email                string
	Password             string
	PasswordConfirmation string
}
