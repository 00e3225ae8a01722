package storage

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const accountPrefix = "account:"

var _ contract.AccountStore = (*AccountRepository)(nil)

// AccountRepository keeps the password hash of each character that registered one.
type AccountRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAccountRepository(db *badger.DB, log *slog.Logger) *AccountRepository {
	return &AccountRepository{db: db, log: log}
}

// CreatePassword fails with ErrAccountExists when a hash is already stored.
func (r *AccountRepository) CreatePassword(guid chat.GUID, hash string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(accountKey(guid))
		switch err {
		case nil:
			return errors.ErrAccountExists
		case badger.ErrKeyNotFound:
		default:
			return err
		}
		if err := txn.Set(accountKey(guid), []byte(hash)); err != nil {
			return err
		}
		r.log.Info("Account password created", "guid", guid)
		return nil
	})
}

func (r *AccountRepository) PasswordHash(guid chat.GUID) (string, error) {
	var hash string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(guid))
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		hash = string(v)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return "", errors.ErrAccountNotFound
	}
	return hash, err
}

func accountKey(guid chat.GUID) []byte {
	return []byte(accountPrefix + strconv.FormatUint(uint64(guid), 10))
}
