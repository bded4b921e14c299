// Package database provides data persistence using BoltDB.
package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/amaumene/gomoviesearch/internal/constants"
)

const (
	// Default database file permissions
	dbFileMode = 0600
	dbDirMode  = 0755
)

// ErrNotFound is returned when a key does not exist in its bucket.
var ErrNotFound = errors.New("key not found")

// Database defines the interface for raw key-value persistence.
type Database interface {
	// Get returns a copy of the value stored under key in bucket
	Get(bucket, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value
	Put(bucket, key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error
	Delete(bucket, key string) error
	// Close closes the database file
	Close() error
}

// BoltDB implements the Database interface using bbolt.
type BoltDB struct {
	db *bolt.DB
}

// NewBolt opens (creating if needed) the bolt file at dbPath and ensures
// the given buckets exist. If dbPath is empty, the default file in the
// current directory is used.
func NewBolt(dbPath string, buckets ...string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", constants.DefaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: constants.DBOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltDB{db: db}, nil
}

// Close closes the database connection.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// Get retrieves the value for key. Returns ErrNotFound if either the
// bucket or the key is missing.
func (b *BoltDB) Get(bucket, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(bucket))
		if bk == nil {
			return ErrNotFound
		}
		v := bk.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// bolt values are only valid inside the transaction
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put stores value under key, creating the bucket on demand.
func (b *BoltDB) Put(bucket, key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return bk.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to store %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Delete removes key from bucket.
func (b *BoltDB) Delete(bucket, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(bucket))
		if bk == nil {
			return nil
		}
		return bk.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}
