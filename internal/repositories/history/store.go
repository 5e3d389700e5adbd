package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	bolt "go.etcd.io/bbolt"
)

const bucketCmd = "cmd"

// ErrStoreLocked is returned by OpenStore when another session holds the
// database.
var ErrStoreLocked = errors.New("history database is in use by another session")

// BoltStore persists history lines in a bbolt database, keyed by a
// monotonically increasing sequence number.
type BoltStore struct {
	db *bolt.DB
}

// OpenStore opens (creating if needed) the database at path. It waits at
// most lockTimeout for the file lock.
func OpenStore(path string, lockTimeout time.Duration) (ports.HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: lockTimeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, fmt.Errorf("opening %s: %w", path, ErrStoreLocked)
		}
		return nil, fmt.Errorf("opening history database %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history database: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Append implements ports.HistoryStore.
func (s *BoltStore) Append(line string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(line))
	})
}

// Recent implements ports.HistoryStore.
func (s *BoltStore) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketCmd)).Cursor()
		for k, v := c.Last(); k != nil && len(lines) < limit; k, v = c.Prev() {
			lines = append(lines, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// Close implements ports.HistoryStore.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
