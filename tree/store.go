package tree

import (
	"context"
	"sort"
	"sync"
)

/*
Store is an interface to manage a store where trees can be saved
under a name, retrieved, listed and deleted.

All its methods take a context that may allow cancelling the
operation (thus forcing the return of an error) if the
implementation allows it.
*/
type Store interface {
	// Save takes a name and a tree and stores the tree under the
	// name, replacing any tree previously saved with it. It returns
	// an error if the tree cannot be stored.
	Save(ctx context.Context, name string, t *Tree) error
	// Load takes a name and returns the tree saved with it (or nil
	// if there is none) or an error if the store cannot be queried.
	Load(ctx context.Context, name string) (*Tree, error)
	// Delete takes a name and removes the tree saved with it. It
	// returns an error if the tree exists but the deletion cannot be
	// performed.
	Delete(ctx context.Context, name string) error
	// List returns the names of the trees in the store, sorted.
	List(ctx context.Context) ([]string, error)
	// Close closes the store, implementations should free any
	// resources in use before returning (unless the context expires).
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees map[string]*Tree
	lock  *sync.RWMutex
}

// NewMemoryStore returns an implementation of Store with
// the process memory space as underlying backend. Trees are
// copied when saved and loaded.
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string]*Tree),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Save(ctx context.Context, name string, t *Tree) error {
	c := t.Clone()
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.trees[name] = c
		return nil
	})
}

func (ms *memoryStore) Load(ctx context.Context, name string) (*Tree, error) {
	var t *Tree
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		t = ms.trees[name]
		return nil
	})
	if err != nil || t == nil {
		return nil, err
	}
	return t.Clone(), nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, name)
		return nil
	})
}

func (ms *memoryStore) List(ctx context.Context) ([]string, error) {
	var names []string
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		for n := range ms.trees {
			names = append(names, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
