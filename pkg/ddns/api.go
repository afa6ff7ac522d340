/*
Package ddns keeps Route 53 "A" records in step with the lifecycle of EC2
instances.

When an instance enters the running state it is given a record named after its
Name tag (or its instance ID when it has no Name tag) in the configured hosted
zone, pointing at its private IP address. Any existing A record holding that IP
is deleted first, so at most one A record refers to a running instance's
address. A snapshot of the instance is saved in a RecordStore because once the
instance is stopped or terminated its address and tags can no longer be read
back; the snapshot is used to find and delete the record at that time.

The Engine holds no state of its own: every event is handled independently and
the RecordStore and the hosted zone are the only durable state. No retries are
performed; failures are returned to the caller.
*/
package ddns

import (
	"context"
	"time"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

const (
	DefaultTTL   = time.Minute
	RecordTypeA  = "A"
	ResourceKind = "EC2"

	StateRunning    = "running"
	StateStopped    = "stopped"
	StateTerminated = "terminated"
)

type ChangeAction string

const (
	ActionCreate ChangeAction = "CREATE"
	ActionDelete ChangeAction = "DELETE"
	ActionUpsert ChangeAction = "UPSERT"
)

type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Instance is the snapshot of an instance saved when it wakes up.
type Instance struct {
	InstanceId       string `json:"InstanceId"`
	PrivateIpAddress string `json:"PrivateIpAddress"`
	Tags             []Tag  `json:"Tags"`
}

type RecordSet struct {
	Name          string        `json:"name"`
	SetIdentifier string        `json:"setIdentifier,omitempty"`
	Type          string        `json:"type"`
	TTL           time.Duration `json:"ttl"`
	Values        []string      `json:"values"`
	// ZoneData is the zone's own form of a listed record set. A Zone deletes
	// a record set exactly as it was listed, routing policy included.
	ZoneData interface{} `json:"-"`
}

// ChangeOutcome records the result of a single change applied to the zone.
type ChangeOutcome struct {
	Action    ChangeAction `json:"action"`
	RecordSet RecordSet    `json:"recordSet"`
	Error     error        `json:"-"`
}

// InstanceDirectory reads the current metadata of an instance.
type InstanceDirectory interface {
	GetInstance(ctx context.Context, instanceId string) (*Instance, error)
}

// Zone reads and changes the record sets of a single hosted zone.
type Zone interface {
	GetZoneSuffix(ctx context.Context) (string, error)
	ListRecordsByIP(ctx context.Context, ips []string) ([]RecordSet, error)
	ApplyChange(ctx context.Context, action ChangeAction,
		recordSet RecordSet) error
}

// RecordStore persists instance snapshots and host names keyed by resource
// kind and resource ID. Restore methods must return an error satisfying
// errors.Is(err, ErrNotFound) when nothing is stored.
type RecordStore interface {
	StoreInstance(ctx context.Context, kind, id string,
		instance *Instance) error
	StoreHostName(ctx context.Context, kind, id, hostName string) error
	RestoreInstance(ctx context.Context, kind, id string) (*Instance, error)
	RestoreHostName(ctx context.Context, kind, id string) (string, error)
	List(ctx context.Context, kind string) ([]string, error)
	Remove(ctx context.Context, kind, id string) error
}

type Params struct {
	Directory InstanceDirectory
	Logger    log.DebugLogger
	Store     RecordStore
	Zone      Zone
}

type Config struct {
	RemoveSnapshotOnTerminate bool          `yaml:"remove_snapshot_on_terminate"`
	TTL                       time.Duration `yaml:"ttl"` // Default: 60s.
}

type Engine struct {
	config Config
	p      Params
}

// New creates an *Engine using the provided collaborators.
func New(config Config, params Params) (*Engine, error) {
	return newEngine(config, params)
}

// HostName returns the value of the first non-empty Name tag of the instance,
// or the instance ID if there is none.
func HostName(instance *Instance) string {
	return hostName(instance)
}

// DeleteAndCreate deletes every A record holding ip and then creates an A
// record for name in the zone. The create is skipped if any deletion failed.
// If ttl is zero the configured TTL is used.
func (e *Engine) DeleteAndCreate(ctx context.Context, name, ip string,
	ttl time.Duration) ([]ChangeOutcome, *ChangeOutcome, error) {
	return e.deleteAndCreate(ctx, name, ip, ttl)
}

// DeleteRecordsByIP deletes every A record holding any of the specified IPs.
// All deletions are attempted; their outcomes are returned.
func (e *Engine) DeleteRecordsByIP(ctx context.Context,
	ips []string) ([]ChangeOutcome, error) {
	return e.deleteRecordsByIP(ctx, ips)
}

// HandleEvent dispatches a lifecycle event on its state.
func (e *Engine) HandleEvent(ctx context.Context, event Event) (
	*Result, error) {
	return e.handleEvent(ctx, event)
}

// HandleRawEvent decodes a JSON lifecycle event and dispatches it.
func (e *Engine) HandleRawEvent(ctx context.Context, data []byte) (
	*Result, error) {
	return e.handleRawEvent(ctx, data)
}

// ListSnapshots returns the IDs of the instances with a stored snapshot.
func (e *Engine) ListSnapshots(ctx context.Context) ([]string, error) {
	return e.listSnapshots(ctx)
}

// OnTerminate deletes the A records of a stopped or terminated instance,
// using the snapshot saved when it woke up.
func (e *Engine) OnTerminate(ctx context.Context, instanceId string) (
	*TerminateResult, error) {
	return e.onTerminate(ctx, instanceId)
}

// OnWake installs the A record for a running instance and saves its
// snapshot. A non-nil *WakeResult is returned whenever any change was made,
// even if err is non-nil.
// If deleting a stale record holding the IP fails the record is not created,
// leaving the instance without a record until it next wakes.
func (e *Engine) OnWake(ctx context.Context, instanceId string) (
	*WakeResult, error) {
	return e.onWake(ctx, instanceId)
}

// RemoveSnapshot removes the stored snapshot and host name of an instance.
func (e *Engine) RemoveSnapshot(ctx context.Context, instanceId string) error {
	return e.removeSnapshot(ctx, instanceId)
}
