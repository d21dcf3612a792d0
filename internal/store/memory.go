package store

import "sync"

// MemoryProfileRepo is an in-memory ProfileRepo for tests.
type MemoryProfileRepo struct {
	mu   sync.Mutex
	data []byte
}

func (r *MemoryProfileRepo) Load() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *MemoryProfileRepo) Save(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make([]byte, len(data))
	copy(r.data, data)
	return nil
}

// MemoryFlagRepo is an in-memory FlagRepo for tests.
type MemoryFlagRepo struct {
	mu    sync.Mutex
	flags map[string]string
}

func (r *MemoryFlagRepo) Get(key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.flags[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (r *MemoryFlagRepo) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.flags == nil {
		r.flags = make(map[string]string)
	}
	r.flags[key] = value
	return nil
}
