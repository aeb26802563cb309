package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
)

var _ WordStore = &wordStoreMock{}

type wordStoreMock struct {
	GetFunc        func(ctx context.Context, userID uuid.UUID, word string) (*domain.WordState, error)
	SaveFunc       func(ctx context.Context, state domain.WordState) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.WordState, error)

	mu        sync.Mutex
	saveCalls []domain.WordState
}

func (m *wordStoreMock) Get(ctx context.Context, userID uuid.UUID, word string) (*domain.WordState, error) {
	if m.GetFunc == nil {
		panic("wordStoreMock.GetFunc: method is nil but WordStore.Get was just called")
	}
	return m.GetFunc(ctx, userID, word)
}

func (m *wordStoreMock) Save(ctx context.Context, state domain.WordState) error {
	if m.SaveFunc == nil {
		panic("wordStoreMock.SaveFunc: method is nil but WordStore.Save was just called")
	}
	m.mu.Lock()
	m.saveCalls = append(m.saveCalls, state)
	m.mu.Unlock()
	return m.SaveFunc(ctx, state)
}

func (m *wordStoreMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordState, error) {
	if m.ListByUserFunc == nil {
		panic("wordStoreMock.ListByUserFunc: method is nil but WordStore.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *wordStoreMock) SaveCalls() []domain.WordState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

var _ ProfileStore = &profileStoreMock{}

type profileStoreMock struct {
	GetProfileFunc          func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	SaveProfileFunc         func(ctx context.Context, userID uuid.UUID, profile domain.Profile) error
	GetDifficultyStateFunc  func(ctx context.Context, userID uuid.UUID) (*difficulty.State, error)
	SaveDifficultyStateFunc func(ctx context.Context, userID uuid.UUID, state difficulty.State) error

	mu            sync.Mutex
	savedProfiles []domain.Profile
	savedStates   []difficulty.State
}

func (m *profileStoreMock) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.GetProfileFunc == nil {
		panic("profileStoreMock.GetProfileFunc: method is nil but ProfileStore.GetProfile was just called")
	}
	return m.GetProfileFunc(ctx, userID)
}

func (m *profileStoreMock) SaveProfile(ctx context.Context, userID uuid.UUID, profile domain.Profile) error {
	if m.SaveProfileFunc == nil {
		panic("profileStoreMock.SaveProfileFunc: method is nil but ProfileStore.SaveProfile was just called")
	}
	m.mu.Lock()
	m.savedProfiles = append(m.savedProfiles, profile)
	m.mu.Unlock()
	return m.SaveProfileFunc(ctx, userID, profile)
}

func (m *profileStoreMock) GetDifficultyState(ctx context.Context, userID uuid.UUID) (*difficulty.State, error) {
	if m.GetDifficultyStateFunc == nil {
		panic("profileStoreMock.GetDifficultyStateFunc: method is nil but ProfileStore.GetDifficultyState was just called")
	}
	return m.GetDifficultyStateFunc(ctx, userID)
}

func (m *profileStoreMock) SaveDifficultyState(ctx context.Context, userID uuid.UUID, state difficulty.State) error {
	if m.SaveDifficultyStateFunc == nil {
		panic("profileStoreMock.SaveDifficultyStateFunc: method is nil but ProfileStore.SaveDifficultyState was just called")
	}
	m.mu.Lock()
	m.savedStates = append(m.savedStates, state)
	m.mu.Unlock()
	return m.SaveDifficultyStateFunc(ctx, userID, state)
}

func (m *profileStoreMock) SavedProfiles() []domain.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savedProfiles
}

func (m *profileStoreMock) SavedStates() []difficulty.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savedStates
}

var _ BatchStore = &batchStoreMock{}

type batchStoreMock struct {
	SavePendingFunc   func(ctx context.Context, batch domain.PendingBatch) error
	GetPendingFunc    func(ctx context.Context, userID, batchID uuid.UUID) (*domain.PendingBatch, error)
	DeletePendingFunc func(ctx context.Context, userID, batchID uuid.UUID) error

	mu           sync.Mutex
	savedPending []domain.PendingBatch
	deleted      []uuid.UUID
}

func (m *batchStoreMock) SavePending(ctx context.Context, batch domain.PendingBatch) error {
	if m.SavePendingFunc == nil {
		panic("batchStoreMock.SavePendingFunc: method is nil but BatchStore.SavePending was just called")
	}
	m.mu.Lock()
	m.savedPending = append(m.savedPending, batch)
	m.mu.Unlock()
	return m.SavePendingFunc(ctx, batch)
}

func (m *batchStoreMock) GetPending(ctx context.Context, userID, batchID uuid.UUID) (*domain.PendingBatch, error) {
	if m.GetPendingFunc == nil {
		panic("batchStoreMock.GetPendingFunc: method is nil but BatchStore.GetPending was just called")
	}
	return m.GetPendingFunc(ctx, userID, batchID)
}

func (m *batchStoreMock) DeletePending(ctx context.Context, userID, batchID uuid.UUID) error {
	if m.DeletePendingFunc == nil {
		panic("batchStoreMock.DeletePendingFunc: method is nil but BatchStore.DeletePending was just called")
	}
	m.mu.Lock()
	m.deleted = append(m.deleted, batchID)
	m.mu.Unlock()
	return m.DeletePendingFunc(ctx, userID, batchID)
}

func (m *batchStoreMock) SavePendingCalls() []domain.PendingBatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savedPending
}

func (m *batchStoreMock) DeletePendingCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleted
}

var _ Generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req generation.Request) generation.Result

	mu    sync.Mutex
	calls []generation.Request
}

func (m *generatorMock) Generate(ctx context.Context, req generation.Request) generation.Result {
	if m.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but Generator.Generate was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	return m.GenerateFunc(ctx, req)
}

func (m *generatorMock) GenerateCalls() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
