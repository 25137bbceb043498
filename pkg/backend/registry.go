package backend

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/dom314/dom/pkg/model"
)

// Discoverer is a named discovery backend
type Discoverer struct {
	ID      string
	Name    string
	Backend DiscoveryBackend
}

// Registry maps backend identifiers to implementations.
// It is filled once at startup and then only read.
type Registry struct {
	lock        sync.RWMutex
	fetchers    map[string]FetchingBackend
	discoverers []Discoverer
}

func NewRegistry() *Registry {
	return &Registry{fetchers: map[string]FetchingBackend{}}
}

// RegisterFetcher makes a fetching backend available under id
func (r *Registry) RegisterFetcher(id string, b FetchingBackend) error {
	if id == "" {
		return errors.New("backend id can't be empty")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.fetchers[id]; ok {
		return errors.Wrapf(model.ErrAlreadyExists, "fetching backend %q", id)
	}

	r.fetchers[id] = b
	return nil
}

// RegisterDiscoverer adds a discovery backend, name is shown to the user
func (r *Registry) RegisterDiscoverer(id string, name string, b DiscoveryBackend) error {
	if id == "" {
		return errors.New("backend id can't be empty")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	for _, d := range r.discoverers {
		if d.ID == id {
			return errors.Wrapf(model.ErrAlreadyExists, "discovery backend %q", id)
		}
	}

	r.discoverers = append(r.discoverers, Discoverer{ID: id, Name: name, Backend: b})
	return nil
}

// Fetcher looks up a fetching backend, unknown identifiers yield model.ErrUnknownBackend
func (r *Registry) Fetcher(id string) (FetchingBackend, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	b, ok := r.fetchers[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrUnknownBackend, "%q", id)
	}

	return b, nil
}

// Discoverer looks up a discovery backend by identifier
func (r *Registry) Discoverer(id string) (Discoverer, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, d := range r.discoverers {
		if d.ID == id {
			return d, nil
		}
	}

	return Discoverer{}, errors.Wrapf(model.ErrUnknownBackend, "%q", id)
}

// Discoverers returns discovery backends in registration order
func (r *Registry) Discoverers() []Discoverer {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]Discoverer, len(r.discoverers))
	copy(out, r.discoverers)
	return out
}
