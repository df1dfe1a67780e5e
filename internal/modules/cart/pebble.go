package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

const guestKeyPrefix = "guestcart/"

// PebbleGuestStore keeps one JSON-serialized line slice per device under a
// single key, the backend analog of the browser's local-storage slot.
type PebbleGuestStore struct {
	db *pebble.DB
}

func NewPebbleGuestStore(dir string) (*PebbleGuestStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleGuestStore{db: db}, nil
}

func (s *PebbleGuestStore) Close() error { return s.db.Close() }

func guestKey(deviceID string) []byte { return []byte(guestKeyPrefix + deviceID) }

// Load returns the device's lines; an unknown device has an empty cart.
func (s *PebbleGuestStore) Load(deviceID string) ([]Line, error) {
	v, closer, err := s.db.Get(guestKey(deviceID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	defer closer.Close()

	var lines []Line
	if err := json.Unmarshal(v, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save overwrites the device's slot. An empty slice clears it.
func (s *PebbleGuestStore) Save(deviceID string, lines []Line) error {
	if len(lines) == 0 {
		err := s.db.Delete(guestKey(deviceID), pebble.Sync)
		if err != nil && !errors.Is(err, pebble.ErrNotFound) {
			return err
		}
		return nil
	}

	v, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.db.Set(guestKey(deviceID), v, pebble.Sync)
}
