package records

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/Cloud-Foundations/r53ddns/pkg/records/encoding"
)

const (
	hostNameObject = "hostname"
	instanceObject = "instance"
)

func newStore(backend Backend, prefix string, logger log.DebugLogger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		prefix:  strings.Trim(prefix, "/"),
	}
}

func (s *Store) kindPrefix(kind string) string {
	return path.Join(s.prefix, kind) + "/"
}

func (s *Store) makeKey(kind, id, object string) string {
	return path.Join(s.prefix, kind, id, object)
}

func (s *Store) listEntries(ctx context.Context, kind string) (
	[]Entry, error) {
	prefix := s.kindPrefix(kind)
	keys, err := s.backend.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{
			Key:      key,
			ShortKey: strings.Trim(strings.TrimPrefix(key, prefix), "/"),
		})
	}
	return entries, nil
}

func (s *Store) list(ctx context.Context, kind string) ([]string, error) {
	entries, err := s.listEntries(ctx, kind)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, entry := range entries {
		id, object := path.Split(entry.ShortKey)
		if object == instanceObject && id != "" {
			ids = append(ids, strings.TrimSuffix(id, "/"))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) remove(ctx context.Context, kind, id string) error {
	var errs []error
	for _, object := range []string{instanceObject, hostNameObject} {
		key := s.makeKey(kind, id, object)
		if err := s.backend.Delete(ctx, key); err != nil {
			if !errors.Is(err, ddns.ErrNotFound) {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Debugf(0, "removed: %s\n", s.makeKey(kind, id, ""))
	return nil
}

func (s *Store) restoreHostName(ctx context.Context, kind, id string) (
	string, error) {
	data, err := s.backend.Get(ctx, s.makeKey(kind, id, hostNameObject))
	if err != nil {
		return "", err
	}
	return encoding.DecodeHostName(data)
}

func (s *Store) restoreInstance(ctx context.Context, kind, id string) (
	*ddns.Instance, error) {
	data, err := s.backend.Get(ctx, s.makeKey(kind, id, instanceObject))
	if err != nil {
		return nil, err
	}
	return encoding.DecodeInstance(data)
}

func (s *Store) storeHostName(ctx context.Context, kind, id,
	hostName string) error {
	data, err := encoding.EncodeHostName(hostName)
	if err != nil {
		return err
	}
	key := s.makeKey(kind, id, hostNameObject)
	if err := s.backend.Put(ctx, key, data); err != nil {
		return err
	}
	s.logger.Debugf(0, "stored: %s\n", key)
	return nil
}

func (s *Store) storeInstance(ctx context.Context, kind, id string,
	instance *ddns.Instance) error {
	data, err := encoding.EncodeInstance(instance)
	if err != nil {
		return err
	}
	key := s.makeKey(kind, id, instanceObject)
	if err := s.backend.Put(ctx, key, data); err != nil {
		return err
	}
	s.logger.Debugf(0, "stored: %s\n", key)
	return nil
}
