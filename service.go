package accounts

type service struct {
	accounts Repository
	hasher   Hasher
	events   Events
}

func NewService(accounts Repository, hasher Hasher, events Events) Service {
	return &service{accounts: accounts, hasher: hasher, events: events}
}

func (svc *service) Register(r RegisterRequest) (*Account, error) {
	acc, err := NewAccount(r.FirstName, r.LastName, r.Email)
	if err != nil {
		return nil, err
	}

	if existing, _ := svc.accounts.FindByEmail(r.Email); existing != nil {
		return nil, ErrDuplicateEmail
	}

	if violations := ValidatePassword(r.Password); len(violations) > 0 {
		return nil, &WeakPasswordError{Violations: violations}
	}

	if r.PasswordConfirmation != r.Password {
		return nil, ErrPasswordMismatch
	}

	acc.PasswordDigest = svc.hasher.Hash(r.Password)
	if err := svc.accounts.Store(acc); err != nil {
		return nil, err
	}
	if err := svc.accounts.Save(); err != nil {
		_ = svc.accounts.Delete(acc.Email)
		return nil, err
	}

	svc.events.Record(SeverityInfo, "account created: "+acc.Email)
	return acc, nil
}

// Authenticate reports a missing account and a wrong password with the same
// error so callers cannot probe which emails are registered.
func (svc *service) Authenticate(email, password string) (*Account, error) {
	acc, err := svc.accounts.FindByEmail(email)
	if err != nil || acc.PasswordDigest != svc.hasher.Hash(password) {
		svc.events.Record(SeverityWarning, "login failed: "+email)
		return nil, ErrInvalidCredentials
	}

	svc.events.Record(SeverityInfo, "login succeeded: "+email)
	return acc, nil
}

func (svc *service) ChangePassword(acc *Account, currentPassword, newPassword, confirmation string) error {
	stored, err := svc.accounts.FindByEmail(acc.Email)
	if err != nil {
		return ErrNotFound
	}

	if stored.PasswordDigest != svc.hasher.Hash(currentPassword) {
		svc.events.Record(SeverityWarning, "password change rejected: "+acc.Email)
		return ErrInvalidCredentials
	}

	if violations := ValidatePassword(newPassword); len(violations) > 0 {
		return &WeakPasswordError{Violations: violations}
	}

	if confirmation != newPassword {
		return ErrPasswordMismatch
	}

	previous := stored.PasswordDigest
	stored.PasswordDigest = svc.hasher.Hash(newPassword)
	if err := svc.accounts.Update(stored); err != nil {
		return err
	}
	if err := svc.accounts.Save(); err != nil {
		stored.PasswordDigest = previous
		_ = svc.accounts.Update(stored)
		return err
	}

	acc.PasswordDigest = stored.PasswordDigest
	svc.events.Record(SeverityInfo, "password changed: "+acc.Email)
	return nil
}

func (svc *service) DeleteAccount(acc *Account) error {
	stored, err := svc.accounts.FindByEmail(acc.Email)
	if err != nil {
		return ErrNotFound
	}

	if err := svc.accounts.Delete(acc.Email); err != nil {
		return err
	}
	if err := svc.accounts.Save(); err != nil {
		_ = svc.accounts.Store(stored)
		return err
	}

	svc.events.Record(SeverityInfo, "account deleted: "+acc.Email)
	return nil
}

func (svc *service) Count() int {
	return svc.accounts.Count()
}
