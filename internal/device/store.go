package device

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DeviceIDKey     = "dishly_device_id_v1"
	RecentFoodsKey  = "dishly_recent_food_ids_v1"
	SavedFoodsKey   = "dishly_saved_food_ids_v1"
	LocalReviewsKey = "dishly_local_reviews_v1"
)

// Store holds per-device state: the device id, saved and recently viewed
// food ids, and reviews written before the user has an account.
type Store struct {
	kv     KV
	now    func() time.Time
	random func() string
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:     kv,
		now:    time.Now,
		random: randomBase36,
	}
}

// readJSON decodes key as a T. Missing keys and values that do not decode
// read as the zero value.
func readJSON[T any](s *Store, key string) (T, error) {
	var v T

	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok || raw == "" {
		return v, err
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logrus.WithField("key", key).Warn("discarding unreadable device value")
		var zero T
		return zero, nil
	}
	return v, nil
}

func (s *Store) writeJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(key, string(raw))
}

func (s *Store) readIDs(key string) ([]string, error) {
	ids, err := readJSON[[]string](s, key)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func base36(n int64) string {
	return strconv.FormatInt(n, 36)
}

func randomBase36() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
