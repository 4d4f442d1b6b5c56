package accounts

type inMemoryRepository struct {
	accounts map[string]Account
}

// NewInMemoryRepository returns a Repository without durable storage, for
// tests and ephemeral front ends. Save is a no-op.
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{accounts: map[string]Account{}}
}

func (repo *inMemoryRepository) FindByEmail(email string) (*Account, error) {
	if acc, ok := repo.accounts[email]; ok {
		return &acc, nil
	}
	return nil, ErrNotFound
}

func (repo *inMemoryRepository) Store(acc *Account) error {
	if _, ok := repo.accounts[acc.Email]; ok {
		return ErrDuplicateEmail
	}
	repo.accounts[acc.Email] = *acc
	return nil
}

func (repo *inMemoryRepository) Update(acc *Account) error {
	if _, ok := repo.accounts[acc.Email]; !ok {
		return ErrNotFound
	}
	repo.accounts[acc.Email] = *acc
	return nil
}

func (repo *inMemoryRepository) Delete(email string) error {
	if _, ok := repo.accounts[email]; !ok {
		return ErrNotFound
	}
	delete(repo.accounts, email)
	return nil
}

func (repo *inMemoryRepository) All() []Account {
	all := make([]Account, 0, len(repo.accounts))
	for _, acc := range repo.accounts {
		all = append(all, acc)
	}
	return all
}

func (repo *inMemoryRepository) Count() int {
	return len(repo.accounts)
}

func (repo *inMemoryRepository) Save() error {
	return nil
}
