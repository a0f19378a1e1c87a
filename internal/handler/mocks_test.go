package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) Register(ctx context.Context, username string) (*domain.Player, bool, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Player), args.Bool(1), args.Error(2)
}

func (m *MockPlayerService) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) List(ctx context.Context) ([]domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) result(args mock.Arguments) (*domain.SiteResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteResult), args.Error(1)
}

func (m *MockSiteService) BuyWorker(ctx context.Context, playerID string, kind domain.SiteKind, amount int) (*domain.SiteResult, error) {
	return m.result(m.Called(ctx, playerID, kind, amount))
}

func (m *MockSiteService) UpgradeLevel(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return m.result(m.Called(ctx, playerID, kind))
}

func (m *MockSiteService) Gather(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return m.result(m.Called(ctx, playerID, kind))
}

func (m *MockSiteService) Sell(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return m.result(m.Called(ctx, playerID, kind))
}

func (m *MockSiteService) Quote(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteView, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteView), args.Error(1)
}

type MockBonusService struct {
	mock.Mock
}

func (m *MockBonusService) GenerateNewBonus(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockBonusService) Get(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	args := m.Called(ctx, bonusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bonus), args.Error(1)
}

func (m *MockBonusService) ListAvailable(ctx context.Context) ([]domain.Bonus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bonus), args.Error(1)
}

func (m *MockBonusService) AvailableFor(ctx context.Context, playerID string) ([]domain.Bonus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bonus), args.Error(1)
}

func (m *MockBonusService) Purchase(ctx context.Context, playerID, bonusID string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, playerID, bonusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockBonusService) ActiveFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

func (m *MockBonusService) AllFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveBonus), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingCache struct {
	ids []string
}

func (c *recordingCache) Remember(playerID string) {
	c.ids = append(c.ids, playerID)
}
