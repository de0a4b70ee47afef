package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"garden-api/domain"
)

// QuestIndexError reports a toggle outside the static quest list.
type QuestIndexError struct {
	Index int
	Count int
}

func (e QuestIndexError) Error() string {
	return fmt.Sprintf("quest index %d out of range [0,%d)", e.Index, e.Count)
}

// InvalidQuestIndex marks the error for handlers without importing the
// concrete type.
func (e QuestIndexError) InvalidQuestIndex() {}

// ChecklistStore tracks per-quest completion flags, persisted separately
// from the zone collection. Flags are positionally aligned to the static
// quest list; display sorting never changes the persisted index space.
type ChecklistStore struct {
	kv     KV
	logger *log.Logger

	mu    sync.Mutex
	flags domain.Checklist
}

// NewChecklistStore creates a checklist store over the given storage.
func NewChecklistStore(kv KV, logger *log.Logger) *ChecklistStore {
	if kv == nil {
		panic("store.NewChecklistStore: kv is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ChecklistStore{kv: kv, logger: logger}
}

// Load reads the persisted flag array and reconciles it to the current
// quest count: absent or unparsable data means all false, a longer array
// is truncated, a shorter one treats the missing tail as false. It never
// returns an error.
func (s *ChecklistStore) Load(ctx context.Context) domain.Checklist {
	count := len(domain.Quests())
	flags := domain.ReconcileChecklist(nil, count)

	raw, ok, err := s.kv.Get(ctx, questsKey)
	switch {
	case err != nil:
		s.logger.WithFields(log.Fields{"key": questsKey, "error": err.Error()}).Warn("checklist load failed, starting all false")
	case ok:
		var stored []bool
		if err := sonic.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.WithFields(log.Fields{"key": questsKey, "error": err.Error()}).Warn("stored checklist unparsable, starting all false")
		} else {
			flags = domain.ReconcileChecklist(stored, count)
		}
	}

	s.mu.Lock()
	s.flags = flags
	s.mu.Unlock()

	return append(domain.Checklist(nil), flags...)
}

// Snapshot returns a copy of the current flags.
func (s *ChecklistStore) Snapshot() domain.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domain.Checklist(nil), s.flags...)
}

// Toggle flips the flag at the original-list index and overwrites the
// persisted array. An out-of-range index is a precondition violation and
// returns QuestIndexError; a save failure propagates and leaves the
// in-memory flags untouched.
func (s *ChecklistStore) Toggle(ctx context.Context, index int) (domain.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.flags) {
		return nil, QuestIndexError{Index: index, Count: len(s.flags)}
	}

	next := append(domain.Checklist(nil), s.flags...)
	next[index] = !next[index]

	data, err := sonic.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, questsKey, string(data)); err != nil {
		return nil, err
	}

	s.flags = next
	return append(domain.Checklist(nil), next...), nil
}
