package bonus

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// MockRepository implements repository.Bonus for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBonus(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	args := m.Called(ctx, bonusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bonus), args.Error(1)
}

func (m *MockRepository) ListAvailableBonuses(ctx context.Context, now time.Time) ([]domain.Bonus, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bonus), args.Error(1)
}

func (m *MockRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

func (m *MockRepository) ListActivations(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.BonusTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.BonusTx), args.Error(1)
}

// MockTx implements repository.BonusTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) LockBonusPool(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) CountAvailableBonuses(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) CreateBonus(ctx context.Context, b *domain.Bonus) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockTx) GetBonusForUpdate(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	args := m.Called(ctx, bonusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bonus), args.Error(1)
}

func (m *MockTx) UpdateBonusAvailability(ctx context.Context, bonusID string, availableUntil time.Time) error {
	return m.Called(ctx, bonusID, availableUntil).Error(0)
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error {
	return m.Called(ctx, playerID, balance).Error(0)
}

func (m *MockTx) HasActivation(ctx context.Context, playerID, bonusID string) (bool, error) {
	args := m.Called(ctx, playerID, bonusID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) ListOtherPlayerIDs(ctx context.Context, playerID string) ([]string, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTx) CreateActivations(ctx context.Context, activations []domain.Activation) error {
	return m.Called(ctx, activations).Error(0)
}

// sequence is a deterministic Random that replays fixed draws
type sequence struct {
	draws []int
	pos   int
}

func (s *sequence) IntN(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	if v >= n {
		return n - 1
	}
	return v
}
