package kv

import (
	"context"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func newRedisTestStore(t *testing.T) *RedisStore {
	t.Helper()

	server := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), fmt.Sprintf("redis://%s", server.Addr()))
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	return store
}

func TestRedisStoreSetGet(t *testing.T) {
	store := newRedisTestStore(t)
	ctx := context.Background()

	if _, present, err := store.Get(ctx, "fitness_workouts"); err != nil || present {
		t.Fatalf("expected missing key without error, got present=%v err=%v", present, err)
	}

	if err := store.Set(ctx, "fitness_workouts", `[{"id":"workout_1"}]`); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	value, present, err := store.Get(ctx, "fitness_workouts")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if !present || value != `[{"id":"workout_1"}]` {
		t.Fatalf("expected stored value, got present=%v value=%q", present, value)
	}
}

func TestRedisStoreDeleteKeys(t *testing.T) {
	store := newRedisTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "fitness_workouts", "[]"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if err := store.Set(ctx, "fitness_checkins", "[]"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	if err := store.DeleteKeys(ctx, "fitness_workouts", "fitness_checkins", "fitness_settings"); err != nil {
		t.Fatalf("DeleteKeys() unexpected error: %v", err)
	}

	if _, present, err := store.Get(ctx, "fitness_workouts"); err != nil || present {
		t.Fatalf("expected deleted key, got present=%v err=%v", present, err)
	}
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), "not-a-url"); err == nil {
		t.Fatalf("expected error for malformed redis URL")
	}
}
