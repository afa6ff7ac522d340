package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := New()
	data := []byte("payload")
	if err := b.Put(ctx, "a/1", data); err != nil {
		t.Fatal(err)
	}
	data[0] = 'X'
	if got, err := b.Get(ctx, "a/1"); err != nil {
		t.Fatal(err)
	} else if string(got) != "payload" {
		t.Fatalf("stored data aliased caller buffer: %s", got)
	}
	if err := b.Put(ctx, "b/1", data); err != nil {
		t.Fatal(err)
	}
	if keys, _ := b.List(ctx, "a/"); len(keys) != 1 || keys[0] != "a/1" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if err := b.Delete(ctx, "a/1"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get(ctx, "a/1"); !errors.Is(err, ddns.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := b.Delete(ctx, "a/1"); !errors.Is(err, ddns.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
