package household

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type mockRemoteStore struct {
	mock.Mock
}

func (m *mockRemoteStore) FetchAll(ctx context.Context) *models.Snapshot {
	args := m.Called(ctx)
	snapshot, _ := args.Get(0).(*models.Snapshot)
	return snapshot
}

func (m *mockRemoteStore) SaveAll(ctx context.Context, snapshot *models.Snapshot) bool {
	args := m.Called(ctx, snapshot)
	return args.Bool(0)
}

type mockSyncEventPublisher struct {
	mock.Mock
}

func (m *mockSyncEventPublisher) PublishSyncEvent(ctx context.Context, event models.SyncEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var fixedNow = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

func newTestStore(remote *mockRemoteStore, opts ...Option) *Store {
	var counter atomic.Int64
	defaults := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return fmt.Sprintf("id-%d", counter.Add(1)) }),
	}
	return NewStore(remote, constvars.LanguageID, zap.NewNop(), append(defaults, opts...)...)
}

func savedSnapshot(t *testing.T, remote *mockRemoteStore, call int) *models.Snapshot {
	t.Helper()
	var saves []mock.Call
	for _, c := range remote.Calls {
		if c.Method == "SaveAll" {
			saves = append(saves, c)
		}
	}
	require.Greater(t, len(saves), call)
	snapshot, ok := saves[call].Arguments.Get(1).(*models.Snapshot)
	require.True(t, ok)
	return snapshot
}

func TestStore_Hydrate(t *testing.T) {
	t.Run("Empty Household Falls Back To Seed", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{Members: []models.FamilyMember{}})
		store := newTestStore(remote)

		source := store.Hydrate(context.Background())

		assert.Equal(t, constvars.HydrateSourceSeed, source)
		snapshot := store.Snapshot()
		require.Len(t, snapshot.Members, 4)
		assert.Equal(t, "Budi Santoso", snapshot.Members[0].Name)
		assert.Empty(t, snapshot.Records)
		assert.Empty(t, snapshot.Appointments)
		assert.Empty(t, snapshot.Meds)
		assert.Empty(t, snapshot.GrowthLogs)
		assert.Empty(t, snapshot.VitalLogs)
		assert.Empty(t, snapshot.HomeCareLogs)
		assert.Empty(t, snapshot.Notes)
		assert.Empty(t, snapshot.Contacts)
		assert.Equal(t, "1", store.UIState().SelectedMemberID)
		assert.False(t, store.SyncStatus().IsLoading)
		assert.Nil(t, store.SyncStatus().LastSync)
		remote.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("Failed Fetch Falls Back To Seed", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		store := newTestStore(remote)

		source := store.Hydrate(context.Background())

		assert.Equal(t, constvars.HydrateSourceSeed, source)
		assert.Len(t, store.Snapshot().Members, 4)
		assert.Equal(t, "1", store.UIState().SelectedMemberID)
	})

	t.Run("Remote Household Is Adopted", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{
			Members: []models.FamilyMember{{ID: "m1", Name: "Ayu"}, {ID: "m2", Name: "Dewi"}},
			Records: []models.MedicalRecord{{ID: "r1", MemberID: "m1"}},
		})
		store := newTestStore(remote)

		source := store.Hydrate(context.Background())

		assert.Equal(t, constvars.HydrateSourceRemote, source)
		snapshot := store.Snapshot()
		assert.Len(t, snapshot.Members, 2)
		assert.Len(t, snapshot.Records, 1)
		assert.NotNil(t, snapshot.Contacts, "missing collections default to empty")
		assert.Equal(t, "m1", store.UIState().SelectedMemberID)
		require.NotNil(t, store.SyncStatus().LastSync)
		assert.Equal(t, fixedNow, *store.SyncStatus().LastSync)
	})

	t.Run("Refetch Keeps A Selection That Still Exists", func(t *testing.T) {
		remote := new(mockRemoteStore)
		household := &models.Snapshot{Members: []models.FamilyMember{{ID: "m1"}, {ID: "m2"}}}
		remote.On("FetchAll", mock.Anything).Return(household)
		store := newTestStore(remote)
		store.Hydrate(context.Background())
		require.NoError(t, store.SelectMember(context.Background(), "m2"))

		store.Hydrate(context.Background())

		assert.Equal(t, "m2", store.UIState().SelectedMemberID)
	})

	t.Run("Refetch Resets A Vanished Selection", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{Members: []models.FamilyMember{{ID: "m1"}, {ID: "m2"}}}).Once()
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{Members: []models.FamilyMember{{ID: "m3"}}}).Once()
		store := newTestStore(remote)
		store.Hydrate(context.Background())
		require.NoError(t, store.SelectMember(context.Background(), "m2"))

		store.Hydrate(context.Background())

		assert.Equal(t, "m3", store.UIState().SelectedMemberID)
	})

	t.Run("Failed Refetch Keeps The Local Household", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{
			Members: []models.FamilyMember{{ID: "m1", Name: "Ayu"}, {ID: "m2", Name: "Dewi"}},
			Records: []models.MedicalRecord{{ID: "r1", MemberID: "m1"}},
		}).Once()
		remote.On("FetchAll", mock.Anything).Return(nil).Once()
		store := newTestStore(remote)
		store.Hydrate(context.Background())
		require.NoError(t, store.SelectMember(context.Background(), "m2"))

		source := store.Hydrate(context.Background())

		assert.Equal(t, constvars.HydrateSourceLocal, source)
		snapshot := store.Snapshot()
		require.Len(t, snapshot.Members, 2)
		assert.Equal(t, "Ayu", snapshot.Members[0].Name)
		assert.Len(t, snapshot.Records, 1)
		assert.Equal(t, "m2", store.UIState().SelectedMemberID)
		assert.False(t, store.SyncStatus().IsLoading)
	})

	t.Run("Empty Refetch Resets Only Members", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{
			Members: []models.FamilyMember{{ID: "m1", Name: "Ayu"}},
			Records: []models.MedicalRecord{{ID: "r1", MemberID: "m1"}},
			Notes:   []models.CaregiverNote{{ID: "n1", MemberID: "m1"}},
		}).Once()
		remote.On("FetchAll", mock.Anything).Return(&models.Snapshot{}).Once()
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		source := store.Hydrate(context.Background())

		assert.Equal(t, constvars.HydrateSourceSeed, source)
		snapshot := store.Snapshot()
		require.Len(t, snapshot.Members, 4)
		assert.Len(t, snapshot.Records, 1)
		assert.Len(t, snapshot.Notes, 1)
		assert.Equal(t, "1", store.UIState().SelectedMemberID)
		remote.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})
}

func TestStore_CurrentMember(t *testing.T) {
	t.Run("Empty Household Has No Profile", func(t *testing.T) {
		store := newTestStore(new(mockRemoteStore))

		_, err := store.CurrentMember()

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNoProfile, customErr.ClientMessage)
	})

	t.Run("Deleted Selection Falls Back To First Member", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		require.NoError(t, store.DeleteMember(context.Background(), "1"))
		store.WaitForSync()

		member, err := store.CurrentMember()
		require.NoError(t, err)
		assert.Equal(t, "2", member.ID)
		assert.Equal(t, "1", store.UIState().SelectedMemberID)
	})
}

func TestStore_Mutations(t *testing.T) {
	t.Run("Delete Survives A Failing Sync", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(false)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		err := store.DeleteMember(context.Background(), "3")
		store.WaitForSync()

		require.NoError(t, err)
		members := store.Snapshot().Members
		assert.Len(t, members, 3)
		for _, member := range members {
			assert.NotEqual(t, "3", member.ID)
		}
		assert.Nil(t, store.SyncStatus().LastSync, "failed sync must not stamp lastSync")
		assert.False(t, store.SyncStatus().IsSyncing)
		remote.AssertNumberOfCalls(t, "SaveAll", 1)
	})

	t.Run("Created Record Round Trips", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		created := store.AddMedicalRecord(context.Background(), models.MedicalRecord{
			MemberID:  "2",
			Title:     "Kontrol Gigi",
			DateTime:  "2024-03-01T10:00",
			Diagnosis: "Karies",
		})
		store.WaitForSync()

		assert.NotEmpty(t, created.ID)
		var found *models.MedicalRecord
		for _, record := range store.Snapshot().Records {
			if record.MemberID == "2" {
				record := record
				found = &record
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Kontrol Gigi", found.Title)
		assert.Equal(t, "2024-03-01T10:00", found.DateTime)
		assert.Equal(t, "Karies", found.Diagnosis)
		require.NotNil(t, store.SyncStatus().LastSync)
	})

	t.Run("Sync Carries The Whole Snapshot", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		store.AddContact(context.Background(), models.HealthContact{Name: "RS Sehat", Type: constvars.ContactTypeHospital})
		store.WaitForSync()

		payload := savedSnapshot(t, remote, 0)
		assert.Len(t, payload.Members, 4)
		require.Len(t, payload.Contacts, 1)
		assert.Equal(t, "id-1", payload.Contacts[0].ID)
	})

	t.Run("Notes Are Prepended", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		store.AddCaregiverNote(context.Background(), models.CaregiverNote{ID: "n1", MemberID: "3", Text: "first"})
		store.WaitForSync()
		store.AddCaregiverNote(context.Background(), models.CaregiverNote{ID: "n2", MemberID: "3", Text: "second"})
		store.WaitForSync()

		notes := store.Snapshot().Notes
		require.Len(t, notes, 2)
		assert.Equal(t, "n2", notes[0].ID)
		assert.Equal(t, "n1", notes[1].ID)
	})

	t.Run("Unknown Id Is Not Found And Not Synced", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		_, err := store.UpdateAppointment(context.Background(), models.Appointment{ID: "missing"})
		assert.Error(t, err)
		assert.Error(t, store.DeleteVitalLog(context.Background(), "missing"))

		remote.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("Reschedule Only Changes Next Time", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())
		store.AddMedication(context.Background(), models.Medication{ID: "m1", MemberID: "1", Name: "Amlodipine", Dosage: "5mg", Active: true, NextTime: "2024-03-05T08:00"})
		store.WaitForSync()

		updated, err := store.RescheduleMedication(context.Background(), "m1", "2024-03-05T20:00")
		store.WaitForSync()

		require.NoError(t, err)
		assert.Equal(t, "2024-03-05T20:00", updated.NextTime)
		assert.Equal(t, "5mg", updated.Dosage)
		assert.True(t, updated.Active)
	})

	t.Run("Returned Entities Are Copies", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		member, err := store.FindMember("1")
		require.NoError(t, err)
		member.Allergies[0].Name = "changed"

		again, err := store.FindMember("1")
		require.NoError(t, err)
		assert.Equal(t, "Kacang", again.Allergies[0].Name)
	})
}

func TestStore_HomeCare(t *testing.T) {
	remote := new(mockRemoteStore)
	remote.On("FetchAll", mock.Anything).Return(nil)
	remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
	store := newTestStore(remote)
	store.Hydrate(context.Background())
	ctx := context.Background()

	log := store.AddHomeCareLog(ctx, models.HomeCareLog{MemberID: "3", Title: "Pemulihan", Active: true, Entries: []models.HomeCareEntry{}})
	store.WaitForSync()

	log, err := store.AddHomeCareEntry(ctx, log.ID, models.HomeCareEntry{DateTime: "2024-03-05T07:00", Symptom: "Demam"})
	store.WaitForSync()
	require.NoError(t, err)
	require.Len(t, log.Entries, 1)
	entryID := log.Entries[0].ID
	assert.NotEmpty(t, entryID)

	log, err = store.UpdateHomeCareEntry(ctx, log.ID, models.HomeCareEntry{ID: entryID, DateTime: "2024-03-05T07:00", Symptom: "Demam turun"})
	store.WaitForSync()
	require.NoError(t, err)
	assert.Equal(t, "Demam turun", log.Entries[0].Symptom)

	_, err = store.UpdateHomeCareEntry(ctx, log.ID, models.HomeCareEntry{ID: "missing"})
	assert.Error(t, err)

	log, err = store.RemoveHomeCareEntry(ctx, log.ID, entryID)
	store.WaitForSync()
	require.NoError(t, err)
	assert.Empty(t, log.Entries)

	log, err = store.CloseHomeCareLog(ctx, log.ID)
	store.WaitForSync()
	require.NoError(t, err)
	assert.False(t, log.Active)
	assert.Equal(t, "Pemulihan", log.Title)

	payload := savedSnapshot(t, remote, 3)
	require.Len(t, payload.HomeCareLogs, 1)
	assert.Empty(t, payload.HomeCareLogs[0].Entries)
}

func TestStore_TriggerSync(t *testing.T) {
	t.Run("Drops Requests While A Sync Is In Flight", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			close(started)
			<-release
		}).Return(true).Once()
		publisher := new(mockSyncEventPublisher)
		publisher.On("PublishSyncEvent", mock.Anything, mock.MatchedBy(func(e models.SyncEvent) bool {
			return e.Outcome == constvars.SyncOutcomeSkipped
		})).Return(nil).Twice()
		publisher.On("PublishSyncEvent", mock.Anything, mock.MatchedBy(func(e models.SyncEvent) bool {
			return e.Outcome == constvars.SyncOutcomeSuccess
		})).Return(nil).Once()
		store := newTestStore(remote, WithSyncEventPublisher(publisher))
		store.Hydrate(context.Background())

		store.AddContact(context.Background(), models.HealthContact{Name: "Apotek"})
		<-started
		assert.True(t, store.SyncStatus().IsSyncing)

		store.AddContact(context.Background(), models.HealthContact{Name: "Klinik"})
		assert.False(t, store.TriggerSync(context.Background(), models.SyncOverrides{}))

		close(release)
		store.WaitForSync()

		remote.AssertNumberOfCalls(t, "SaveAll", 1)
		assert.Len(t, store.Snapshot().Contacts, 2, "local state keeps the change whose sync was dropped")
		assert.False(t, store.SyncStatus().IsSyncing)
		publisher.AssertNumberOfCalls(t, "PublishSyncEvent", 3)
	})

	t.Run("Guard Clears Before The Sync Event Is Published", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		release := make(chan struct{})
		publishing := make(chan struct{}, 2)
		publisher := new(mockSyncEventPublisher)
		publisher.On("PublishSyncEvent", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			_, hasDeadline := args.Get(0).(context.Context).Deadline()
			assert.True(t, hasDeadline, "broker confirm is bounded")
			publishing <- struct{}{}
			<-release
		}).Return(nil)
		store := newTestStore(remote, WithSyncEventPublisher(publisher))
		store.Hydrate(context.Background())

		store.AddContact(context.Background(), models.HealthContact{Name: "Apotek"})
		<-publishing

		status := store.SyncStatus()
		assert.False(t, status.IsSyncing)
		require.NotNil(t, status.LastSync)
		assert.True(t, store.TriggerSync(context.Background(), models.SyncOverrides{}), "a finished save does not block the next one")

		close(release)
		store.WaitForSync()
		remote.AssertNumberOfCalls(t, "SaveAll", 2)
		publisher.AssertNumberOfCalls(t, "PublishSyncEvent", 2)
	})

	t.Run("Skipped Event Does Not Hold Up The Caller", func(t *testing.T) {
		saving := make(chan struct{})
		releaseSave := make(chan struct{})
		releasePublish := make(chan struct{})
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			close(saving)
			<-releaseSave
		}).Return(true).Once()
		publisher := new(mockSyncEventPublisher)
		publisher.On("PublishSyncEvent", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			<-releasePublish
		}).Return(nil)
		store := newTestStore(remote, WithSyncEventPublisher(publisher))
		store.Hydrate(context.Background())

		store.AddContact(context.Background(), models.HealthContact{Name: "Apotek"})
		<-saving

		assert.False(t, store.TriggerSync(context.Background(), models.SyncOverrides{}))

		close(releaseSave)
		close(releasePublish)
		store.WaitForSync()
		publisher.AssertNumberOfCalls(t, "PublishSyncEvent", 2)
	})

	t.Run("Mutation Sync Sends The Latest Household", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)

		var store *Store
		var interleaved atomic.Bool
		// A second add lands between the first add's unlock and its sync;
		// its own sync is dropped by holding the guard.
		hook := zap.Hooks(func(entry zapcore.Entry) error {
			if entry.Message != "householdStore.add succeeded" || !interleaved.CompareAndSwap(false, true) {
				return nil
			}
			store.syncing.Store(true)
			store.AddContact(context.Background(), models.HealthContact{Name: "Klinik"})
			store.syncing.Store(false)
			return nil
		})
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(io.Discard), zapcore.DebugLevel)
		var counter atomic.Int64
		store = NewStore(remote, constvars.LanguageID, zap.New(core, hook),
			WithClock(func() time.Time { return fixedNow }),
			WithIDGenerator(func() string { return fmt.Sprintf("id-%d", counter.Add(1)) }),
		)
		store.Hydrate(context.Background())

		store.AddContact(context.Background(), models.HealthContact{Name: "Apotek"})
		store.WaitForSync()

		remote.AssertNumberOfCalls(t, "SaveAll", 1)
		payload := savedSnapshot(t, remote, 0)
		require.Len(t, payload.Contacts, 2)
		assert.Equal(t, "Apotek", payload.Contacts[0].Name)
		assert.Equal(t, "Klinik", payload.Contacts[1].Name)
	})

	t.Run("Overrides Replace Only Their Collection", func(t *testing.T) {
		remote := new(mockRemoteStore)
		remote.On("FetchAll", mock.Anything).Return(nil)
		remote.On("SaveAll", mock.Anything, mock.Anything).Return(true)
		store := newTestStore(remote)
		store.Hydrate(context.Background())

		contacts := []models.HealthContact{{ID: "c1", Name: "Dokter Anak"}}
		started := store.TriggerSync(context.Background(), models.SyncOverrides{Contacts: &contacts})
		store.WaitForSync()

		assert.True(t, started)
		payload := savedSnapshot(t, remote, 0)
		assert.Equal(t, contacts, payload.Contacts)
		assert.Len(t, payload.Members, 4)
		assert.Empty(t, store.Snapshot().Contacts, "overrides alone do not change local state")
	})
}

func TestStore_UIState(t *testing.T) {
	remote := new(mockRemoteStore)
	remote.On("FetchAll", mock.Anything).Return(nil)
	store := newTestStore(remote)
	store.Hydrate(context.Background())
	ctx := context.Background()

	assert.Equal(t, constvars.TabDashboard, store.UIState().ActiveTab)
	assert.Equal(t, constvars.LanguageID, store.UIState().Language)

	require.NoError(t, store.NavigateToDetail(ctx, constvars.TabRecords, "4", "r9"))
	ui := store.UIState()
	assert.Equal(t, constvars.TabRecords, ui.ActiveTab)
	assert.Equal(t, "4", ui.SelectedMemberID)
	require.NotNil(t, ui.InitialOpenID)
	assert.Equal(t, "r9", *ui.InitialOpenID)

	store.SetActiveTab(ctx, constvars.TabKids)
	assert.Nil(t, store.UIState().InitialOpenID)

	store.SetLanguage(ctx, constvars.LanguageEN)
	assert.Equal(t, constvars.LanguageEN, store.UIState().Language)

	assert.Error(t, store.SelectMember(ctx, "missing"))
	assert.Error(t, store.NavigateToDetail(ctx, constvars.TabRecords, "missing", "r1"))
}
