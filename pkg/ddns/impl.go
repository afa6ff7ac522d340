package ddns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Cloud-Foundations/r53ddns/pkg/dns"
)

func newEngine(config Config, params Params) (*Engine, error) {
	if params.Directory == nil {
		return nil, errors.New("no instance directory specified")
	}
	if params.Logger == nil {
		return nil, errors.New("no logger specified")
	}
	if params.Store == nil {
		return nil, errors.New("no record store specified")
	}
	if params.Zone == nil {
		return nil, errors.New("no DNS zone specified")
	}
	if config.TTL < time.Second {
		config.TTL = DefaultTTL
	}
	return &Engine{config: config, p: params}, nil
}

func hostName(instance *Instance) string {
	for _, tag := range instance.Tags {
		if tag.Key == "Name" && tag.Value != "" {
			return tag.Value
		}
	}
	return instance.InstanceId
}

func (e *Engine) applyChange(ctx context.Context, action ChangeAction,
	recordSet RecordSet) ChangeOutcome {
	outcome := ChangeOutcome{Action: action, RecordSet: recordSet}
	if err := e.p.Zone.ApplyChange(ctx, action, recordSet); err != nil {
		outcome.Error = &DnsApiError{
			Action: action,
			Name:   recordSet.Name,
			Err:    err,
		}
		e.p.Logger.Printf("%s %s %v: %s\n",
			action, recordSet.Name, recordSet.Values, err)
	} else {
		e.p.Logger.Debugf(0, "%s %s %v\n",
			action, recordSet.Name, recordSet.Values)
	}
	countChange(outcome)
	return outcome
}

func (e *Engine) deleteAndCreate(ctx context.Context, name, ip string,
	ttl time.Duration) ([]ChangeOutcome, *ChangeOutcome, error) {
	if ttl < time.Second {
		ttl = e.config.TTL
	}
	deletions, err := e.deleteRecordsByIP(ctx, []string{ip})
	if err != nil {
		return nil, nil, err
	}
	if errs := changeErrors(deletions); len(errs) > 0 {
		e.p.Logger.Printf(
			"not creating %s: %d of %d deletions for %s failed\n",
			name, len(errs), len(deletions), ip)
		return deletions, nil, nil
	}
	suffix, err := e.p.Zone.GetZoneSuffix(ctx)
	if err != nil {
		return deletions, nil, &DnsApiError{Err: err}
	}
	create := e.applyChange(ctx, ActionCreate, RecordSet{
		Name:   dns.Join(name, suffix),
		Type:   RecordTypeA,
		TTL:    ttl,
		Values: []string{ip},
	})
	return deletions, &create, nil
}

// All deletions are issued concurrently and joined before returning.
func (e *Engine) deleteRecordsByIP(ctx context.Context,
	ips []string) ([]ChangeOutcome, error) {
	recordSets, err := e.p.Zone.ListRecordsByIP(ctx, ips)
	if err != nil {
		return nil, &DnsApiError{Err: err}
	}
	outcomes := make([]ChangeOutcome, len(recordSets))
	var wg sync.WaitGroup
	for index, recordSet := range recordSets {
		wg.Add(1)
		go func(index int, recordSet RecordSet) {
			defer wg.Done()
			outcomes[index] = e.applyChange(ctx, ActionDelete, recordSet)
		}(index, recordSet)
	}
	wg.Wait()
	return outcomes, nil
}

func (e *Engine) handleEvent(ctx context.Context, event Event) (
	*Result, error) {
	result := &Result{Event: event}
	instanceId := event.Detail.InstanceId
	switch event.Detail.State {
	case StateRunning:
		result.Action = "wake"
		eventCounter.WithLabelValues(result.Action).Inc()
		if instanceId == "" {
			return result, errors.New("no instance-id in event")
		}
		wake, err := e.onWake(ctx, instanceId)
		result.Wake = wake
		return result, err
	case StateStopped, StateTerminated:
		result.Action = "terminate"
		eventCounter.WithLabelValues(result.Action).Inc()
		if instanceId == "" {
			return result, errors.New("no instance-id in event")
		}
		terminate, err := e.onTerminate(ctx, instanceId)
		result.Terminate = terminate
		return result, err
	default:
		result.Action = "ignore"
		eventCounter.WithLabelValues(result.Action).Inc()
		e.p.Logger.Debugf(1, "ignoring state: \"%s\" for instance: %s\n",
			event.Detail.State, instanceId)
		return result, nil
	}
}

func (e *Engine) handleRawEvent(ctx context.Context, data []byte) (
	*Result, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("error decoding event: %s", err)
	}
	return e.handleEvent(ctx, event)
}

func (e *Engine) listSnapshots(ctx context.Context) ([]string, error) {
	ids, err := e.p.Store.List(ctx, ResourceKind)
	if err != nil {
		storageFailureCounter.WithLabelValues("list").Inc()
		return nil, &StorageError{Op: "list", Err: err}
	}
	return ids, nil
}

func (e *Engine) onTerminate(ctx context.Context, instanceId string) (
	*TerminateResult, error) {
	instance, err := e.p.Store.RestoreInstance(ctx, ResourceKind, instanceId)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{
				Kind:       ResourceKind,
				InstanceId: instanceId,
				Err:        err,
			}
		}
		storageFailureCounter.WithLabelValues("restore").Inc()
		return nil, &StorageError{
			Op:         "restore",
			InstanceId: instanceId,
			Err:        err,
		}
	}
	result := &TerminateResult{
		InstanceId: instanceId,
		IP:         instance.PrivateIpAddress,
	}
	// The host name is informational only.
	result.HostName, err = e.p.Store.RestoreHostName(ctx, ResourceKind,
		instanceId)
	if err != nil {
		e.p.Logger.Printf("unable to restore host name for: %s: %s\n",
			instanceId, err)
	}
	if instance.PrivateIpAddress == "" {
		e.p.Logger.Printf("snapshot for: %s has no IP, nothing to delete\n",
			instanceId)
	} else {
		result.Deletions, err = e.deleteRecordsByIP(ctx,
			[]string{instance.PrivateIpAddress})
		if err != nil {
			return result, err
		}
	}
	if e.config.RemoveSnapshotOnTerminate &&
		len(changeErrors(result.Deletions)) < 1 {
		if err := e.removeSnapshot(ctx, instanceId); err != nil {
			result.RemoveError = err
		} else {
			result.Removed = true
		}
	}
	e.p.Logger.Printf("terminate: %s (%s/%s): %d record sets deleted\n",
		instanceId, result.HostName, result.IP, len(result.Deletions))
	return result, result.Err()
}

func (e *Engine) onWake(ctx context.Context, instanceId string) (
	*WakeResult, error) {
	instance, err := e.p.Directory.GetInstance(ctx, instanceId)
	if err != nil {
		return nil, &LookupError{InstanceId: instanceId, Err: err}
	}
	if instance.InstanceId == "" {
		instance.InstanceId = instanceId
	}
	if instance.PrivateIpAddress == "" {
		return nil, &LookupError{
			InstanceId: instanceId,
			Err:        errors.New("instance has no private IP address"),
		}
	}
	result := &WakeResult{
		InstanceId: instance.InstanceId,
		HostName:   hostName(instance),
		IP:         instance.PrivateIpAddress,
	}
	result.Deletions, result.Create, result.DnsError = e.deleteAndCreate(ctx,
		result.HostName, result.IP, 0)
	if result.Create != nil {
		result.FQDN = result.Create.RecordSet.Name
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := e.p.Store.StoreInstance(ctx, ResourceKind, instance.InstanceId,
			instance)
		if err != nil {
			storageFailureCounter.WithLabelValues("store-instance").Inc()
			result.SnapshotError = &StorageError{
				Op:         "store-instance",
				InstanceId: instance.InstanceId,
				Err:        err,
			}
		}
	}()
	go func() {
		defer wg.Done()
		err := e.p.Store.StoreHostName(ctx, ResourceKind, instance.InstanceId,
			result.HostName)
		if err != nil {
			storageFailureCounter.WithLabelValues("store-hostname").Inc()
			result.HostNameError = &StorageError{
				Op:         "store-hostname",
				InstanceId: instance.InstanceId,
				Err:        err,
			}
		}
	}()
	wg.Wait()
	e.p.Logger.Printf("wake: %s: %s -> %s, %d stale record sets deleted\n",
		instance.InstanceId, result.FQDN, result.IP, len(result.Deletions))
	return result, result.Err()
}

func (e *Engine) removeSnapshot(ctx context.Context, instanceId string) error {
	if err := e.p.Store.Remove(ctx, ResourceKind, instanceId); err != nil {
		storageFailureCounter.WithLabelValues("remove").Inc()
		return &StorageError{Op: "remove", InstanceId: instanceId, Err: err}
	}
	return nil
}
