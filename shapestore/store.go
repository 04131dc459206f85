package shapestore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/hagwave/basisshape"
)

// Sentinel errors for store operations.
var (
	// ErrShapeNotFound indicates no shape is stored under the given hash.
	ErrShapeNotFound = errors.New("shapestore: shape not found")
	// ErrPathRequired indicates a persistent store was opened without a path.
	ErrPathRequired = errors.New("shapestore: path is required for persistent store")
	// ErrNilShape indicates a nil shape passed to Put.
	ErrNilShape = errors.New("shapestore: shape is nil")
)

// keyPrefix namespaces shape records inside the database.
var keyPrefix = []byte("shape/")

// Config holds configuration for a shape store.
type Config struct {
	// Path is the directory for the database files.
	// Required unless InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal log output.
	// If nil, internal logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the production configuration: durable synchronous
// writes, logging disabled. Set Path before use.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests: in-memory storage, no
// disk I/O, asynchronous writes.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store is a deduplicated shape registry: shapes are keyed by their
// structural hash and stored as JSON-encoded descriptions, so structurally
// equal shapes occupy one record regardless of how often they are saved.
//
// A Store is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open creates or opens a shape store with the given configuration.
// The caller must Close the store when done.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrPathRequired
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open shape store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (st *Store) Close() error {
	return st.db.Close()
}

// Put saves the shape's description under its structural hash and returns
// the hash. Saving a structurally equal shape again is a no-op, which is
// the deduplication a simulation loop relies on when the same basis shape
// recurs across timesteps.
func (st *Store) Put(s basisshape.Shape) (uint64, error) {
	if s == nil {
		return 0, ErrNilShape
	}
	hash := s.Hash()
	key := shapeKey(hash)

	raw, err := json.Marshal(s.Description())
	if err != nil {
		return 0, fmt.Errorf("encode shape description: %w", err)
	}

	err = st.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return nil // already stored
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, raw)
	})
	if err != nil {
		return 0, fmt.Errorf("store shape %#x: %w", hash, err)
	}
	return hash, nil
}

// Has reports whether a shape is stored under hash.
func (st *Store) Has(hash uint64) (bool, error) {
	found := false
	err := st.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(shapeKey(hash))
		switch {
		case err == nil:
			found = true
			return nil
		case errors.Is(err, badger.ErrKeyNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("probe shape %#x: %w", hash, err)
	}
	return found, nil
}

// Get reconstructs the shape stored under hash from its description.
// Returns ErrShapeNotFound when no such record exists.
func (st *Store) Get(hash uint64) (basisshape.Shape, error) {
	var raw []byte
	err := st.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(shapeKey(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("shape %#x: %w", hash, ErrShapeNotFound)
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	var desc map[string]any
	if err := json.Unmarshal(raw, &desc); err != nil {
		return nil, fmt.Errorf("decode shape %#x description: %w", hash, err)
	}
	return basisshape.FromDescription(basisshape.Description(desc))
}

// Hashes lists the hashes of every stored shape, in ascending key order.
func (st *Store) Hashes() ([]uint64, error) {
	var hashes []uint64
	err := st.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: keyPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			hashes = append(hashes, binary.BigEndian.Uint64(key[len(keyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list shapes: %w", err)
	}
	return hashes, nil
}

// shapeKey renders the namespaced big-endian key for a hash.
func shapeKey(hash uint64) []byte {
	key := make([]byte, len(keyPrefix)+8)
	copy(key, keyPrefix)
	binary.BigEndian.PutUint64(key[len(keyPrefix):], hash)
	return key
}
