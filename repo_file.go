package accounts

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type fileRepository struct {
	path     string
	accounts []Account
}

// NewFileRepository returns a Repository backed by a flat JSON file. The
// file is read once, here; a missing, unreadable or unparsable file yields
// an empty collection so a corrupt store never blocks startup.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path, accounts: loadAccounts(path)}
}

func loadAccounts(path string) []Account {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var accounts []Account
	if err := json.Unmarshal(b, &accounts); err != nil {
		return nil
	}
	return accounts
}

func (repo *fileRepository) FindByEmail(email string) (*Account, error) {
	for i := range repo.accounts {
		if repo.accounts[i].Email == email {
			acc := repo.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *fileRepository) Store(acc *Account) error {
	if _, err := repo.FindByEmail(acc.Email); err == nil {
		return ErrDuplicateEmail
	}
	repo.accounts = append(repo.accounts, *acc)
	return nil
}

func (repo *fileRepository) Update(acc *Account) error {
	for i := range repo.accounts {
		if repo.accounts[i].Email == acc.Email {
			repo.accounts[i] = *acc
			return nil
		}
	}
	return ErrNotFound
}

func (repo *fileRepository) Delete(email string) error {
	for i := range repo.accounts {
		if repo.accounts[i].Email == email {
			repo.accounts = append(repo.accounts[:i], repo.accounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (repo *fileRepository) All() []Account {
	return append([]Account(nil), repo.accounts...)
}

func (repo *fileRepository) Count() int {
	return len(repo.accounts)
}

// Save overwrites the whole file with the current collection. The write
// goes through a temp file and a rename so a failure leaves the previous
// content intact.
func (repo *fileRepository) Save() error {
	accounts := repo.accounts
	if accounts == nil {
		accounts = []Account{}
	}
	b, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return &StorageError{Err: err}
	}
	if err := writeFileAtomic(repo.path, b, 0o600); err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

// writeFileAtomic writes b via a temp file, then atomically replaces path.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before the rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "chmod temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	return errors.Wrap(os.Rename(tmp, path), "replace file")
}
