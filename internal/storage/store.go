package storage

import (
	"encoding/json"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Keys for the three persisted records. Each holds one serialized envelope.
const (
	KeyCart     = "cart"
	KeyShipping = "shipping"
	KeyOrders   = "orders"
)

const schemaVersion = 1

var bucketName = []byte("store")

// envelope wraps every persisted record with a schema version so that
// incompatible data from older builds is ignored instead of half-decoded.
type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Store is the durable local key-value store backing the cart, the shipping
// profile and the order list. A single bbolt file, single writer.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put serializes value into a versioned envelope and writes it under key.
// The write is synchronous: when Put returns, the record is on disk.
func (s *Store) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
}

// Get decodes the record under key into out. A missing, corrupt, or
// version-mismatched record reports found=false and leaves out untouched;
// bad data is never an error here because every caller treats it as "no
// data yet".
func (s *Store) Get(key string, out any) (found bool) {
	var raw []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[STORAGE] discarding corrupt record %q: %v", key, err)
		return false
	}
	if env.Version != schemaVersion {
		log.Printf("[STORAGE] discarding record %q with schema version %d", key, env.Version)
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("[STORAGE] discarding unreadable record %q: %v", key, err)
		return false
	}
	return true
}

// Delete removes the record under key. Absent keys are a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}
