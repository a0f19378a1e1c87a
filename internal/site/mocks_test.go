package site

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// MockRepository implements repository.Site for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSite(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.SiteTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SiteTx), args.Error(1)
}

// MockTx implements repository.SiteTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) GetSiteForUpdate(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockTx) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

func (m *MockTx) UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error {
	return m.Called(ctx, playerID, balance).Error(0)
}

func (m *MockTx) UpdateSite(ctx context.Context, site *domain.Site) error {
	return m.Called(ctx, site).Error(0)
}
