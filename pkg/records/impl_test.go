package records

import (
	"context"
	"errors"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/Cloud-Foundations/r53ddns/pkg/records/memory"
	"github.com/stretchr/testify/assert"
)

var web1 = &ddns.Instance{
	InstanceId:       "i-123",
	PrivateIpAddress: "10.0.0.5",
	Tags:             []ddns.Tag{{Key: "Name", Value: "web1"}},
}

func TestStoreAndRestore(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := New(backend, "/ddns/", testlogger.New(t))
	if err := store.StoreInstance(ctx, "EC2", "i-123", web1); err != nil {
		t.Fatal(err)
	}
	if err := store.StoreHostName(ctx, "EC2", "i-123", "web1"); err != nil {
		t.Fatal(err)
	}
	keys, _ := backend.List(ctx, "")
	assert.Equal(t, []string{
		"ddns/EC2/i-123/hostname",
		"ddns/EC2/i-123/instance",
	}, keys)
	instance, err := store.RestoreInstance(ctx, "EC2", "i-123")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, web1, instance)
	hostName, err := store.RestoreHostName(ctx, "EC2", "i-123")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "web1", hostName)
}

func TestRestoreMissing(t *testing.T) {
	store := New(memory.New(), "", testlogger.New(t))
	_, err := store.RestoreInstance(context.Background(), "EC2", "i-404")
	assert.True(t, errors.Is(err, ddns.ErrNotFound))
	_, err = store.RestoreHostName(context.Background(), "EC2", "i-404")
	assert.True(t, errors.Is(err, ddns.ErrNotFound))
}

func TestStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	store := New(memory.New(), "", testlogger.New(t))
	moved := *web1
	moved.PrivateIpAddress = "10.0.0.9"
	for _, instance := range []*ddns.Instance{web1, &moved} {
		if err := store.StoreInstance(ctx, "EC2", "i-123",
			instance); err != nil {
			t.Fatal(err)
		}
	}
	instance, err := store.RestoreInstance(ctx, "EC2", "i-123")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10.0.0.9", instance.PrivateIpAddress)
}

func TestListAndRemove(t *testing.T) {
	ctx := context.Background()
	store := New(memory.New(), "ddns", testlogger.New(t))
	for _, id := range []string{"i-456", "i-123"} {
		if err := store.StoreInstance(ctx, "EC2", id, web1); err != nil {
			t.Fatal(err)
		}
		if err := store.StoreHostName(ctx, "EC2", id, "web1"); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.StoreHostName(ctx, "EC2", "i-789", "orphan"); err != nil {
		t.Fatal(err)
	}
	if err := store.StoreInstance(ctx, "RDS", "db-1", web1); err != nil {
		t.Fatal(err)
	}
	ids, err := store.List(ctx, "EC2")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"i-123", "i-456"}, ids,
		"only IDs with a snapshot of the kind are listed")
	entries, err := store.ListEntries(ctx, "EC2")
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, entries, 5) {
		assert.Equal(t, Entry{
			Key:      "ddns/EC2/i-123/hostname",
			ShortKey: "i-123/hostname",
		}, entries[0])
	}
	if err := store.Remove(ctx, "EC2", "i-123"); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove(ctx, "EC2", "i-123"); err != nil {
		t.Fatal("removing twice should succeed:", err)
	}
	ids, err = store.List(ctx, "EC2")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"i-456"}, ids)
}

func TestCorruptPayload(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := New(backend, "", testlogger.New(t))
	if err := backend.Put(ctx, "EC2/i-123/instance",
		[]byte("web1")); err != nil {
		t.Fatal(err)
	}
	_, err := store.RestoreInstance(ctx, "EC2", "i-123")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ddns.ErrNotFound))
}
