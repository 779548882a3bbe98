package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// cartKey is the single slot holding the serialized line collection.
const cartKey = "techstore-cart"

// Repository persists the full line collection under a single durable slot.
// Every save is a whole-collection overwrite.
type Repository interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// LevelDBRepository keeps the cart in a local leveldb file, one key holding
// a JSON array of lines.
type LevelDBRepository struct {
	db *leveldb.DB
}

func NewLevelDBRepository(path string) (*LevelDBRepository, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open cart db %s: %w", path, err)
	}
	return &LevelDBRepository{db: db}, nil
}

// NewMemoryRepository backs the repository with in-memory storage. Meant
// for tests and ephemeral runs.
func NewMemoryRepository() *LevelDBRepository {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		panic(err)
	}
	return &LevelDBRepository{db: db}
}

func (r *LevelDBRepository) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	if err := r.db.Put([]byte(cartKey), data, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

// Load returns the saved lines, or nil when nothing was ever saved. A value
// that fails to parse is reported as ErrCorruptCart; the caller decides
// whether to discard it.
func (r *LevelDBRepository) Load() ([]Line, error) {
	data, err := r.db.Get([]byte(cartKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	return lines, nil
}

func (r *LevelDBRepository) Close() error {
	return r.db.Close()
}
