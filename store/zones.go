package store

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"garden-api/domain"
)

// ZoneStore owns the authoritative in-memory zone collection and keeps it
// synchronized with durable storage under an explicit schema version. It
// is constructed once per process; handlers run concurrently, so the
// collection is guarded by a mutex.
type ZoneStore struct {
	kv     KV
	logger *log.Logger

	mu    sync.Mutex
	zones []domain.Zone
}

// NewZoneStore creates a zone store over the given key-value storage.
func NewZoneStore(kv KV, logger *log.Logger) *ZoneStore {
	if kv == nil {
		panic("store.NewZoneStore: kv is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ZoneStore{kv: kv, logger: logger}
}

// Load populates the in-memory collection from durable storage, falling
// back to the seed collection on schema mismatch, missing or malformed
// data, or any storage failure. It never returns an error.
func (s *ZoneStore) Load(ctx context.Context) []domain.Zone {
	zones := s.load(ctx)

	s.mu.Lock()
	s.zones = zones
	s.mu.Unlock()

	return snapshotZones(zones)
}

func (s *ZoneStore) load(ctx context.Context) []domain.Zone {
	if zones, reseeded := s.reconcileSchema(ctx); reseeded {
		return zones
	}

	raw, ok, err := s.kv.Get(ctx, zonesKey)
	if err != nil {
		s.logger.WithFields(log.Fields{"key": zonesKey, "error": err.Error()}).Warn("zone load failed, using seed collection")
		return domain.SeedZones()
	}
	if !ok {
		// Absent data is served from the seed collection without
		// persisting it; the first mutation writes the real state.
		return domain.SeedZones()
	}

	var records []json.RawMessage
	if err := sonic.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.WithFields(log.Fields{"key": zonesKey, "error": err.Error()}).Warn("stored zones unparsable, using seed collection")
		return domain.SeedZones()
	}

	zones := make([]domain.Zone, 0, len(records))
	for _, rec := range records {
		z, err := domain.ParseZone(rec)
		if err != nil {
			s.logger.WithFields(log.Fields{"reason": err.Error()}).Debug("zone record discarded")
			continue
		}
		zones = append(zones, z)
	}
	if len(zones) == 0 {
		return domain.SeedZones()
	}
	return zones
}

// reconcileSchema compares the persisted version marker to SchemaVersion.
// On mismatch the store is overwritten with the seed collection and the
// marker is updated. The compare is isolated here so a future version can
// swap the reseed for a real migration without touching call sites.
func (s *ZoneStore) reconcileSchema(ctx context.Context) ([]domain.Zone, bool) {
	raw, ok, err := s.kv.Get(ctx, schemaVersionKey)
	if err != nil {
		s.logger.WithFields(log.Fields{"key": schemaVersionKey, "error": err.Error()}).Warn("schema version unreadable, using seed collection")
		return domain.SeedZones(), true
	}

	stored := 0
	if ok {
		if n, parseErr := strconv.Atoi(strings.TrimSpace(raw)); parseErr == nil {
			stored = n
		}
	}
	if stored == SchemaVersion {
		return nil, false
	}

	seed := domain.SeedZones()
	if err := s.persist(ctx, seed); err != nil {
		s.logger.WithFields(log.Fields{"error": err.Error()}).Warn("reseed write failed, serving seed collection from memory")
		return seed, true
	}
	if err := s.kv.Set(ctx, schemaVersionKey, strconv.Itoa(SchemaVersion)); err != nil {
		s.logger.WithFields(log.Fields{"error": err.Error()}).Warn("schema version write failed")
	}
	s.logger.WithFields(log.Fields{"from": stored, "to": SchemaVersion}).Info("zone store reseeded")
	return seed, true
}

func (s *ZoneStore) persist(ctx context.Context, zones []domain.Zone) error {
	data, err := sonic.Marshal(zones)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, zonesKey, string(data))
}

// Zones returns a snapshot of the current collection in stored order.
func (s *ZoneStore) Zones() []domain.Zone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotZones(s.zones)
}

// Create builds a new zone from the input, prepends it to the collection
// and overwrites durable storage. A save failure leaves the in-memory
// collection untouched and propagates to the caller.
func (s *ZoneStore) Create(ctx context.Context, in domain.CreateZoneInput) (domain.Zone, error) {
	z := domain.NewZone(uuid.NewString(), in)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Zone, 0, len(s.zones)+1)
	next = append(next, z)
	next = append(next, s.zones...)

	if err := s.persist(ctx, next); err != nil {
		return domain.Zone{}, err
	}
	s.zones = next
	return z, nil
}

func snapshotZones(zones []domain.Zone) []domain.Zone {
	return append([]domain.Zone(nil), zones...)
}
