package object

import (
	"context"
	"io"
	"io/ioutil"
	"sync"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
)

// DummyStorage keeps objects in memory for tests. PutErr and DeleteErr, when
// set, are returned by the corresponding calls to exercise failure paths.
type DummyStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte

	PutErr    error
	DeleteErr error
}

var _ core.ObjectStorage = (*DummyStorage)(nil) // interface compliance check

func NewDummyStorage() *DummyStorage {
	return &DummyStorage{objects: make(map[string][]byte)}
}

func (s *DummyStorage) Put(_ context.Context, path string, r io.Reader, _ int64, _ string) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading object")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return nil
}

func (s *DummyStorage) PublicURL(path string) string {
	return "https://storage.local/" + path
}

func (s *DummyStorage) Delete(_ context.Context, path string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

// Has reports whether an object was stored under path.
func (s *DummyStorage) Has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[path]
	return ok
}
