package storage

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const blacklistPrefix = "blacklist:"

// BlacklistEntry is a word added by an operator on top of the shipped censored lists.
type BlacklistEntry struct {
	Word    string
	AddedAt time.Time
}

type BlacklistRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBlacklistRepository(db *badger.DB, log *slog.Logger) *BlacklistRepository {
	return &BlacklistRepository{db: db, log: log}
}

// Add stores the word lowercased. Adding it twice keeps the first date.
func (r *BlacklistRepository) Add(word string, at time.Time) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("blacklist word is empty")
	}
	data, err := proto.Marshal(timestamppb.New(at))
	if err != nil {
		return err
	}
	key := []byte(blacklistPrefix + word)

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return nil
		}
		return txn.Set(key, data)
	})
}

func (r *BlacklistRepository) Remove(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(blacklistPrefix + word))
	})
}

// Words returns the bare list, ready for the moderator.
func (r *BlacklistRepository) Words() ([]string, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.Word)
	}
	return words, nil
}

// List returns the entries in key order, which is alphabetical.
func (r *BlacklistRepository) List() ([]BlacklistEntry, error) {
	var entries []BlacklistEntry
	prefix := []byte(blacklistPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			word := strings.TrimPrefix(string(item.Key()), blacklistPrefix)
			err := item.Value(func(v []byte) error {
				var ts timestamppb.Timestamp
				if err := proto.Unmarshal(v, &ts); err != nil {
					return fmt.Errorf("failed to unmarshal blacklist entry %q: %w", word, err)
				}
				entries = append(entries, BlacklistEntry{Word: word, AddedAt: ts.AsTime()})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during blacklist listing: %w", err)
	}
	return entries, nil
}
