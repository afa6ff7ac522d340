package ddns

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (possibly wrapped) by a RecordStore when nothing is
// stored under a key.
var ErrNotFound = errors.New("not found")

// LookupError is returned when the metadata of an instance is unavailable.
type LookupError struct {
	InstanceId string
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup of instance: %s failed: %s", e.InstanceId, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// DnsApiError is returned when listing or changing the zone fails.
type DnsApiError struct {
	Action ChangeAction // Empty for reads.
	Name   string
	Err    error
}

func (e *DnsApiError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("DNS read failed: %s", e.Err)
	}
	return fmt.Sprintf("DNS %s of %s failed: %s", e.Action, e.Name, e.Err)
}

func (e *DnsApiError) Unwrap() error { return e.Err }

// NotFoundError is returned when a snapshot expected at termination time is
// missing. This indicates a missed or out-of-order wake event.
type NotFoundError struct {
	Kind       string
	InstanceId string
	Err        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no snapshot for %s/%s: %s",
		e.Kind, e.InstanceId, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// StorageError is returned when reading or writing the RecordStore fails.
type StorageError struct {
	Op         string // One of: store-instance, store-hostname, restore, remove.
	InstanceId string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s for instance: %s failed: %s",
		e.Op, e.InstanceId, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
