package api

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testDeduper(t *testing.T) (*miniredis.Miniredis, *RedisDeduper) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisDeduper(client, time.Minute)
}

func TestDeduperAddOnceThenDuplicate(t *testing.T) {
	_, d := testDeduper(t)
	ctx := context.Background()

	added, err := d.Add(ctx, "key-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added {
		t.Fatal("expected first add to succeed")
	}

	added, err = d.Add(ctx, "key-1")
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if added {
		t.Fatal("expected duplicate add to report false")
	}
}

func TestDeduperRemoveAllowsRetry(t *testing.T) {
	_, d := testDeduper(t)
	ctx := context.Background()

	if _, err := d.Add(ctx, "key-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := d.Remove(ctx, "key-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	added, err := d.Add(ctx, "key-1")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if !added {
		t.Fatal("expected add after remove to succeed")
	}
}

func TestDeduperKeyExpires(t *testing.T) {
	mr, d := testDeduper(t)
	ctx := context.Background()

	if _, err := d.Add(ctx, "key-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	added, err := d.Add(ctx, "key-1")
	if err != nil {
		t.Fatalf("add after expiry: %v", err)
	}
	if !added {
		t.Fatal("expected expired key to be addable again")
	}
}
