package storage

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/cricklet/chessgrid/internal/game"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "game/"

var ErrNotFound = errors.New("game not found")

// Storage keeps game records in badger, one JSON value per id.
type Storage struct {
	db *badger.DB
}

func Open(dir string) (*Storage, Error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

func OpenInMemory() (*Storage, Error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, Error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, Errorf("opening storage: %w", err)
	}
	return &Storage{db: db}, NilError
}

func (s *Storage) Close() Error {
	if s.db != nil {
		return Wrap(s.db.Close())
	}
	return NilError
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

func (s *Storage) Save(record game.Record) Error {
	if record.ID == "" {
		return Errorf("saving game: empty id")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return Errorf("saving game %v: %w", record.ID, err)
	}

	return Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(record.ID), data)
	}))
}

func (s *Storage) Load(id string) (game.Record, Error) {
	record := game.Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return game.Record{}, Errorf("loading game %v: %w", id, err)
	}
	return record, NilError
}

func (s *Storage) Delete(id string) Error {
	return Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(id))
	}))
}

// List returns the ids of every stored game in sorted order.
func (s *Storage) List() ([]string, Error) {
	ids := []string{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, Errorf("listing games: %w", err)
	}

	sort.Strings(ids)
	return ids, NilError
}
