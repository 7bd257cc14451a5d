package session

import (
	"context"
	"errors"
)

const countryField = "country"

// Session is the state attached to one visitor. Only the country field is
// read or written by this service.
type Session struct {
	ID    string
	IsNew bool
	store Store
}

// New binds a session id to a store.
func New(id string, store Store) *Session {
	return &Session{ID: id, store: store}
}

// Country returns the cached country. ok is false when none is cached.
func (s *Session) Country(ctx context.Context) (country string, ok bool, err error) {
	country, err = s.store.Get(ctx, s.ID, countryField)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return country, country != "", nil
}

// SetCountry caches country unless a value is already present.
func (s *Session) SetCountry(ctx context.Context, country string) (bool, error) {
	return s.store.SetNX(ctx, s.ID, countryField, country)
}
