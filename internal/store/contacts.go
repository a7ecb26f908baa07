package store

import (
	"context"
	"sync"

	"github.com/prospecta/internal/model"
)

// ContactStore persists the ordered contact collection as a JSON array file.
// The file is created with an empty collection on first access. All methods
// hold the store lock, so there is one writer at a time.
type ContactStore struct {
	mu   sync.Mutex
	path string
}

func NewContactStore(path string) *ContactStore {
	return &ContactStore{path: path}
}

// List returns the full ordered collection, sent and pending alike.
func (s *ContactStore) List(ctx context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the contact at index i.
func (s *ContactStore) Get(ctx context.Context, i int) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return model.Contact{}, err
	}
	if i < 0 || i >= len(contacts) {
		return model.Contact{}, ErrNotFound
	}
	return contacts[i], nil
}

// Append adds a contact to the end of the collection.
func (s *ContactStore) Append(ctx context.Context, c model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return err
	}
	return writeFile(s.path, append(contacts, c))
}

// Update replaces the contact at index i.
func (s *ContactStore) Update(ctx context.Context, i int, c model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(contacts) {
		return ErrNotFound
	}
	contacts[i] = c
	return writeFile(s.path, contacts)
}

// Delete removes the contact at index i. Subsequent indices shift down, so
// callers must re-resolve any index they hold.
func (s *ContactStore) Delete(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(contacts) {
		return ErrNotFound
	}
	return writeFile(s.path, append(contacts[:i], contacts[i+1:]...))
}

// ReplaceAll persists the given collection as-is in one write. The dispatch
// engine uses this to round-trip the whole collection after a run.
func (s *ContactStore) ReplaceAll(ctx context.Context, contacts []model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contacts == nil {
		contacts = []model.Contact{}
	}
	return writeFile(s.path, contacts)
}

// load reads the collection, seeding an empty file on first access.
// Callers must hold s.mu.
func (s *ContactStore) load() ([]model.Contact, error) {
	var contacts []model.Contact
	err := readFile(s.path, &contacts)
	if isNotExist(err) {
		contacts = []model.Contact{}
		if seedErr := writeFile(s.path, contacts); seedErr != nil {
			return nil, seedErr
		}
		return contacts, nil
	}
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}
