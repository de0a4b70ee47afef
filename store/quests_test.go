package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"

	"garden-api/domain"
)

func questCount() int {
	return len(domain.Quests())
}

func allFalse(t *testing.T, flags domain.Checklist) {
	t.Helper()
	if len(flags) != questCount() {
		t.Fatalf("expected %d flags, got %d", questCount(), len(flags))
	}
	for i, done := range flags {
		if done {
			t.Fatalf("flag %d should default to false", i)
		}
	}
}

func TestChecklistLoadAbsent(t *testing.T) {
	s := NewChecklistStore(newFakeKV(), nil)
	allFalse(t, s.Load(context.Background()))
}

func TestChecklistLoadUnparsable(t *testing.T) {
	kv := newFakeKV()
	kv.data["quests"] = `{"oops":1}`

	s := NewChecklistStore(kv, nil)
	allFalse(t, s.Load(context.Background()))
}

func TestChecklistLoadStorageError(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("table unavailable")

	s := NewChecklistStore(kv, nil)
	allFalse(t, s.Load(context.Background()))
}

func TestChecklistLoadTruncatesLongerArray(t *testing.T) {
	kv := newFakeKV()
	stored := make([]bool, questCount()+4)
	for i := range stored {
		stored[i] = true
	}
	data, _ := sonic.Marshal(stored)
	kv.data["quests"] = string(data)

	s := NewChecklistStore(kv, nil)
	flags := s.Load(context.Background())
	if len(flags) != questCount() {
		t.Fatalf("expected truncation to %d, got %d", questCount(), len(flags))
	}
	if flags.CompletedCount() != questCount() {
		t.Fatalf("kept flags lost: %v", flags)
	}
}

func TestChecklistLoadExtendsShorterArray(t *testing.T) {
	kv := newFakeKV()
	kv.data["quests"] = `[true]`

	s := NewChecklistStore(kv, nil)
	flags := s.Load(context.Background())
	if len(flags) != questCount() {
		t.Fatalf("expected %d flags, got %d", questCount(), len(flags))
	}
	if !flags[0] {
		t.Fatal("persisted flag lost")
	}
	for i := 1; i < len(flags); i++ {
		if flags[i] {
			t.Fatalf("uncovered index %d must be false", i)
		}
	}
}

func TestTogglePersistsFullArray(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	s := NewChecklistStore(kv, nil)
	s.Load(ctx)

	flags, err := s.Toggle(ctx, 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !flags[2] || flags.CompletedCount() != 1 {
		t.Fatalf("unexpected flags: %v", flags)
	}

	var persisted []bool
	if err := sonic.Unmarshal([]byte(kv.data["quests"]), &persisted); err != nil {
		t.Fatalf("persisted checklist unparsable: %v", err)
	}
	if len(persisted) != questCount() || !persisted[2] {
		t.Fatalf("unexpected persisted flags: %v", persisted)
	}

	// Toggling again flips back.
	flags, err = s.Toggle(ctx, 2)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if flags[2] {
		t.Fatal("expected second toggle to clear the flag")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := NewChecklistStore(newFakeKV(), nil)
	s.Load(ctx)

	for _, index := range []int{-1, questCount()} {
		_, err := s.Toggle(ctx, index)
		var indexErr QuestIndexError
		if !errors.As(err, &indexErr) {
			t.Fatalf("index %d: expected QuestIndexError, got %v", index, err)
		}
		if indexErr.Index != index {
			t.Fatalf("error reports wrong index: %d", indexErr.Index)
		}
	}
	allFalse(t, s.Snapshot())
}

func TestToggleSaveFailureLeavesFlagsUntouched(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	s := NewChecklistStore(kv, nil)
	s.Load(ctx)

	kv.setErr = errors.New("write refused")
	if _, err := s.Toggle(ctx, 0); err == nil {
		t.Fatal("expected save failure to propagate")
	}
	allFalse(t, s.Snapshot())
}

// Reload after toggling must report the same original index as completed,
// regardless of how the display sort arranges the list.
func TestToggleIndexStableAcrossReload(t *testing.T) {
	kv := newFakeKV()
	kv.data["schemaVersion"] = currentVersion()
	ctx := context.Background()

	s := NewChecklistStore(kv, nil)
	s.Load(ctx)
	if _, err := s.Toggle(ctx, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded := NewChecklistStore(kv, nil)
	flags := reloaded.Load(ctx)

	quests := domain.Quests()
	for _, idx := range domain.QuestDisplayOrder(quests) {
		if idx == 2 {
			if !flags[idx] {
				t.Fatal("original index 2 lost completion across reload")
			}
			if quests[idx].Text != "Overseed patchy spots in the back lawn" {
				t.Fatalf("index 2 addresses the wrong quest: %q", quests[idx].Text)
			}
		} else if flags[idx] {
			t.Fatalf("completion leaked to original index %d", idx)
		}
	}
}
