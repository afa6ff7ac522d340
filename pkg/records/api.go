/*
Package records implements the ddns.RecordStore interface on top of a simple
object store Backend.

Objects are stored under keys of the form:

	<prefix>/<kind>/<id>/instance
	<prefix>/<kind>/<id>/hostname
*/
package records

import (
	"context"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

// Backend stores opaque objects. Get must return an error satisfying
// errors.Is(err, ddns.ErrNotFound) for missing keys.
type Backend interface {
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Put(ctx context.Context, key string, data []byte) error
}

type Entry struct {
	Key      string // Full key.
	ShortKey string // Key relative to the listing prefix.
}

type Store struct {
	backend Backend
	logger  log.DebugLogger
	prefix  string
}

// New creates a *Store. Keys are placed under prefix, which may be empty.
func New(backend Backend, prefix string, logger log.DebugLogger) *Store {
	return newStore(backend, prefix, logger)
}

// ListEntries returns every object stored under kind.
func (s *Store) ListEntries(ctx context.Context, kind string) (
	[]Entry, error) {
	return s.listEntries(ctx, kind)
}

// List returns the IDs which have a stored instance snapshot.
func (s *Store) List(ctx context.Context, kind string) ([]string, error) {
	return s.list(ctx, kind)
}

// Remove deletes the snapshot and host name stored for an ID.
func (s *Store) Remove(ctx context.Context, kind, id string) error {
	return s.remove(ctx, kind, id)
}

func (s *Store) RestoreHostName(ctx context.Context, kind, id string) (
	string, error) {
	return s.restoreHostName(ctx, kind, id)
}

func (s *Store) RestoreInstance(ctx context.Context, kind, id string) (
	*ddns.Instance, error) {
	return s.restoreInstance(ctx, kind, id)
}

func (s *Store) StoreHostName(ctx context.Context, kind, id,
	hostName string) error {
	return s.storeHostName(ctx, kind, id, hostName)
}

// StoreInstance saves an instance snapshot, replacing any previous one.
func (s *Store) StoreInstance(ctx context.Context, kind, id string,
	instance *ddns.Instance) error {
	return s.storeInstance(ctx, kind, id, instance)
}
