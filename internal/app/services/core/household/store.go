package household

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Store owns the household collections and the UI selection. Mutations are
// applied locally first; each one then starts a background save of the full
// snapshot. A save requested while another is in flight is dropped.
type Store struct {
	mu       sync.RWMutex
	snapshot models.Snapshot
	ui       models.UIState
	lastSync *time.Time
	loading  bool

	syncing  atomic.Bool
	inflight sync.WaitGroup

	remote    contracts.RemoteStoreClient
	publisher contracts.SyncEventPublisher
	log       *zap.Logger
	now       func() time.Time
	newID     func() string
}

var _ contracts.HouseholdStore = (*Store)(nil)

const syncEventPublishTimeout = 5 * time.Second

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithSyncEventPublisher reports every sync attempt. Without it outcomes are
// only logged.
func WithSyncEventPublisher(publisher contracts.SyncEventPublisher) Option {
	return func(s *Store) { s.publisher = publisher }
}

func NewStore(remote contracts.RemoteStoreClient, defaultLanguage string, logger *zap.Logger, opts ...Option) *Store {
	snapshot := models.Snapshot{}
	snapshot.Normalize()

	store := &Store{
		snapshot: snapshot,
		ui: models.UIState{
			ActiveTab: constvars.TabDashboard,
			Language:  defaultLanguage,
		},
		loading: true,
		remote:  remote,
		log:     logger,
		now:     time.Now,
		newID:   utils.GenerateID,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Hydrate loads every collection from the remote store. A remote household
// without members falls back to the demo seed members, which are not written
// back. A failed fetch keeps whatever is already loaded and only seeds an
// empty store.
func (s *Store) Hydrate(ctx context.Context) string {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("householdStore.Hydrate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	data := s.remote.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if data != nil && len(data.Members) > 0 {
		next := data.Clone()
		next.Normalize()
		s.snapshot = next
		if _, ok := findByID(next.Members, s.ui.SelectedMemberID); !ok {
			s.ui.SelectedMemberID = next.Members[0].ID
		}
		now := s.now()
		s.lastSync = &now

		s.log.Info("householdStore.Hydrate succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHydrateSourceKey, constvars.HydrateSourceRemote),
			zap.Int(constvars.LoggingCountKey, len(next.Members)),
		)
		return constvars.HydrateSourceRemote
	}

	if data == nil && len(s.snapshot.Members) > 0 {
		s.log.Warn("householdStore.Hydrate fetch failed, keeping local household",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHydrateSourceKey, constvars.HydrateSourceLocal),
		)
		return constvars.HydrateSourceLocal
	}

	// Only members are reset; the other collections stay as they are.
	seed := seedSnapshot()
	s.snapshot.Members = seed.Members
	s.ui.SelectedMemberID = seed.Members[0].ID

	s.log.Warn("householdStore.Hydrate falling back to seed members",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHydrateSourceKey, constvars.HydrateSourceSeed),
	)
	return constvars.HydrateSourceSeed
}

// TriggerSync saves the current snapshot with overrides laid on top. It
// returns false when the request was dropped because a save is in flight.
func (s *Store) TriggerSync(ctx context.Context, overrides models.SyncOverrides) bool {
	requestID := utils.GetRequestID(ctx)

	if !s.syncing.CompareAndSwap(false, true) {
		s.log.Info("householdStore.TriggerSync skipped, sync already in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		s.publishAsync(ctx, constvars.SyncOutcomeSkipped, 0)
		return false
	}

	s.mu.RLock()
	payload := overrides.MergeOver(s.snapshot).Clone()
	s.mu.RUnlock()

	syncCtx := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		saved := s.remote.SaveAll(syncCtx, &payload)
		if saved {
			now := s.now()
			s.mu.Lock()
			s.lastSync = &now
			s.mu.Unlock()
		}
		s.syncing.Store(false)

		if !saved {
			s.log.Error("householdStore.TriggerSync failed, local state kept",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			s.publish(syncCtx, constvars.SyncOutcomeFailed, len(payload.Members))
			return
		}

		s.log.Info("householdStore.TriggerSync succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(payload.Members)),
		)
		s.publish(syncCtx, constvars.SyncOutcomeSuccess, len(payload.Members))
	}()
	return true
}

// WaitForSync blocks until every started save and its event have finished.
func (s *Store) WaitForSync() {
	s.inflight.Wait()
}

func (s *Store) publishAsync(ctx context.Context, outcome string, memberCount int) {
	if s.publisher == nil {
		return
	}
	publishCtx := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.publish(publishCtx, outcome, memberCount)
	}()
}

// publish reports a sync outcome. The broker gets syncEventPublishTimeout to
// confirm; the save itself is already settled by then.
func (s *Store) publish(ctx context.Context, outcome string, memberCount int) {
	if s.publisher == nil {
		return
	}
	event := models.SyncEvent{
		EventID:     s.newID(),
		Outcome:     outcome,
		MemberCount: memberCount,
		OccurredAt:  s.now(),
	}

	publishCtx, cancel := context.WithTimeout(ctx, syncEventPublishTimeout)
	defer cancel()
	if err := s.publisher.PublishSyncEvent(publishCtx, event); err != nil {
		s.log.Error("householdStore.publish error publishing sync event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSyncOutcomeKey, outcome),
			zap.Error(err),
		)
	}
}

func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

func (s *Store) UIState() models.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ui := s.ui
	if s.ui.InitialOpenID != nil {
		initialOpenID := *s.ui.InitialOpenID
		ui.InitialOpenID = &initialOpenID
	}
	return ui
}

func (s *Store) SyncStatus() models.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := models.SyncStatus{
		IsLoading: s.loading,
		IsSyncing: s.syncing.Load(),
	}
	if s.lastSync != nil {
		lastSync := *s.lastSync
		status.LastSync = &lastSync
	}
	return status
}

// CurrentMember resolves the selection, falling back to the first member.
// An empty household yields ErrNoProfile.
func (s *Store) CurrentMember() (models.FamilyMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if member, ok := findByID(s.snapshot.Members, s.ui.SelectedMemberID); ok {
		return member.Clone(), nil
	}
	if len(s.snapshot.Members) > 0 {
		return s.snapshot.Members[0].Clone(), nil
	}
	return models.FamilyMember{}, exceptions.ErrNoProfile()
}

func (s *Store) SelectMember(ctx context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := findByID(s.snapshot.Members, memberID); !ok {
		return exceptions.ErrNotFound(membersCollection.name, memberID)
	}
	s.ui.SelectedMemberID = memberID

	s.log.Info("householdStore.SelectMember succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMemberIDKey, memberID),
	)
	return nil
}

func (s *Store) SetActiveTab(ctx context.Context, tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.ActiveTab = tab
	s.ui.InitialOpenID = nil

	s.log.Info("householdStore.SetActiveTab succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingActiveTabKey, tab),
	)
}

func (s *Store) SetLanguage(ctx context.Context, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.Language = language

	s.log.Info("householdStore.SetLanguage succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingLanguageKey, language),
	)
}

// NavigateToDetail switches member, tab and the item to open in one step.
func (s *Store) NavigateToDetail(ctx context.Context, tab, memberID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := findByID(s.snapshot.Members, memberID); !ok {
		return exceptions.ErrNotFound(membersCollection.name, memberID)
	}
	s.ui.SelectedMemberID = memberID
	s.ui.InitialOpenID = &itemID
	s.ui.ActiveTab = tab

	s.log.Info("householdStore.NavigateToDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingActiveTabKey, tab),
		zap.String(constvars.LoggingMemberIDKey, memberID),
		zap.String(constvars.LoggingEntityIDKey, itemID),
	)
	return nil
}
