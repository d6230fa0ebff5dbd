package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore is an in-process object store with the same write-once
// contract as R2Client. Used by tests and by the API when no bucket
// credentials are configured.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
		now:     time.Now,
	}
}

func (m *MemoryStore) PutIfAbsent(
	ctx context.Context,
	bucket string,
	key string,
	contentType string,
	body io.Reader,
) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read upload body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	name := objectName(bucket, key)
	if _, exists := m.objects[name]; exists {
		return ErrDuplicatePath
	}

	m.objects[name] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (m *MemoryStore) SignedURL(
	ctx context.Context,
	bucket string,
	key string,
	ttl time.Duration,
) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := objectName(bucket, key)
	if _, exists := m.objects[name]; !exists {
		return "", ErrObjectNotFound
	}

	expires := m.now().Add(ttl).Unix()
	return fmt.Sprintf("memory://%s?expires=%d", url.PathEscape(name), expires), nil
}

// Object returns the stored bytes and content type of bucket/key.
func (m *MemoryStore) Object(bucket, key string) ([]byte, string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[objectName(bucket, key)]
	return obj.data, obj.contentType, ok
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
