package ddns

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event is an EC2 Instance State-change Notification.
type Event struct {
	Id         string      `json:"id,omitempty"`
	DetailType string      `json:"detail-type,omitempty"`
	Source     string      `json:"source,omitempty"`
	Region     string      `json:"region,omitempty"`
	Detail     EventDetail `json:"detail"`
}

type EventDetail struct {
	InstanceId string `json:"instance-id"`
	State      string `json:"state"`
}

type Result struct {
	Event     Event            `json:"event"`
	Action    string           `json:"action"` // wake, terminate or ignore.
	Wake      *WakeResult      `json:"wake,omitempty"`
	Terminate *TerminateResult `json:"terminate,omitempty"`
}

type WakeResult struct {
	InstanceId    string          `json:"instanceId"`
	HostName      string          `json:"hostName"`
	FQDN          string          `json:"fqdn,omitempty"`
	IP            string          `json:"ip"`
	Deletions     []ChangeOutcome `json:"deletions"`
	Create        *ChangeOutcome  `json:"create,omitempty"`
	DnsError      error           `json:"-"`
	SnapshotError error           `json:"-"`
	HostNameError error           `json:"-"`
}

type TerminateResult struct {
	InstanceId  string          `json:"instanceId"`
	HostName    string          `json:"hostName,omitempty"`
	IP          string          `json:"ip"`
	Deletions   []ChangeOutcome `json:"deletions"`
	Removed     bool            `json:"removed"`
	RemoveError error           `json:"-"`
}

type changeOutcomeJSON struct {
	Action    ChangeAction `json:"action"`
	RecordSet RecordSet    `json:"recordSet"`
	Error     string       `json:"error,omitempty"`
}

func (o ChangeOutcome) MarshalJSON() ([]byte, error) {
	out := changeOutcomeJSON{Action: o.Action, RecordSet: o.RecordSet}
	if o.Error != nil {
		out.Error = o.Error.Error()
	}
	return json.Marshal(out)
}

func changeErrors(outcomes []ChangeOutcome) []error {
	var errs []error
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errs
}

// Err returns nil if every sub-step succeeded, else an error naming each
// failed sub-step.
func (r *WakeResult) Err() error {
	var errs []error
	if r.DnsError != nil {
		errs = append(errs, fmt.Errorf("dns: %w", r.DnsError))
	}
	for _, err := range changeErrors(r.Deletions) {
		errs = append(errs, fmt.Errorf("delete: %w", err))
	}
	if r.Create != nil && r.Create.Error != nil {
		errs = append(errs, fmt.Errorf("create: %w", r.Create.Error))
	}
	if r.SnapshotError != nil {
		errs = append(errs, fmt.Errorf("store snapshot: %w", r.SnapshotError))
	}
	if r.HostNameError != nil {
		errs = append(errs, fmt.Errorf("store hostname: %w", r.HostNameError))
	}
	if len(errs) < 1 {
		return nil
	}
	return fmt.Errorf("wake of instance: %s partially failed: %w",
		r.InstanceId, errors.Join(errs...))
}

// Err returns nil if every deletion (and the snapshot removal, when enabled)
// succeeded.
func (r *TerminateResult) Err() error {
	var errs []error
	for _, err := range changeErrors(r.Deletions) {
		errs = append(errs, fmt.Errorf("delete: %w", err))
	}
	if r.RemoveError != nil {
		errs = append(errs, fmt.Errorf("remove snapshot: %w", r.RemoveError))
	}
	if len(errs) < 1 {
		return nil
	}
	return fmt.Errorf("termination of instance: %s partially failed: %w",
		r.InstanceId, errors.Join(errs...))
}
