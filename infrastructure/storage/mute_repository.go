package storage

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const mutePrefix = "mute:"

var _ contract.MuteStore = (*MuteRepository)(nil)

// MuteRecord is one persisted mute.
type MuteRecord struct {
	GUID  chat.GUID
	Until time.Time
}

// MuteRepository persists mute expiries. Each key carries a TTL equal to the
// remaining mute, so badger forgets expired mutes on its own.
type MuteRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewMuteRepository(db *badger.DB, log *slog.Logger) *MuteRepository {
	return &MuteRepository{db: db, log: log, now: time.Now}
}

// WithClock replaces the clock used to compute TTLs.
func (r *MuteRepository) WithClock(now func() time.Time) *MuteRepository {
	r.now = now
	return r
}

// Save stores the expiry. An expiry that is not in the future removes the mute.
func (r *MuteRepository) Save(_ context.Context, guid chat.GUID, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return r.Delete(guid)
	}

	data, err := proto.Marshal(timestamppb.New(until))
	if err != nil {
		return fmt.Errorf("failed to marshal mute expiry: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(muteKey(guid), data).WithTTL(ttl))
	})
}

// Load returns the stored expiry. A missing or already expired mute reports false.
func (r *MuteRepository) Load(_ context.Context, guid chat.GUID) (time.Time, bool, error) {
	var until time.Time
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(muteKey(guid))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			until, err = decodeExpiry(v)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error during mute lookup: %w", err)
	}
	if !until.After(r.now()) {
		return time.Time{}, false, nil
	}
	return until, true, nil
}

func (r *MuteRepository) Delete(guid chat.GUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(muteKey(guid))
	})
}

// List returns every active mute, soonest expiry first.
func (r *MuteRepository) List() ([]MuteRecord, error) {
	var records []MuteRecord
	prefix := []byte(mutePrefix)
	now := r.now()

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			guid, err := parseGUID(string(item.Key()), mutePrefix)
			if err != nil {
				r.log.Warn("Skipping malformed mute key", "key", string(item.Key()))
				continue
			}
			err = item.Value(func(v []byte) error {
				until, err := decodeExpiry(v)
				if err != nil {
					return err
				}
				if until.After(now) {
					records = append(records, MuteRecord{GUID: guid, Until: until})
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during mute listing: %w", err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Until.Before(records[j].Until) })
	return records, nil
}

func muteKey(guid chat.GUID) []byte {
	return []byte(fmt.Sprintf("%s%d", mutePrefix, guid))
}

func parseGUID(key, prefix string) (chat.GUID, error) {
	raw, err := strconv.ParseUint(strings.TrimPrefix(key, prefix), 10, 64)
	if err != nil {
		return 0, err
	}
	return chat.GUID(raw), nil
}

func decodeExpiry(v []byte) (time.Time, error) {
	var ts timestamppb.Timestamp
	if err := proto.Unmarshal(v, &ts); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal mute expiry: %w", err)
	}
	return ts.AsTime(), nil
}
