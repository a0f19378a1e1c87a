package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/IdleForge_Go/internal/database"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

var (
	testPool    *pgxpool.Pool
	migrateOnce sync.Once
	migrateErr  error
)

// TestMain sets up a shared container for all tests in the package
func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		if connStr != "" {
			var err error
			testPool, err = database.NewPool(ctx, database.PoolConfig{
				ConnString:  connStr,
				MaxConns:    10,
				MaxIdleTime: 30 * time.Minute,
				MaxLifetime: time.Hour,
			})
			if err != nil {
				fmt.Printf("WARNING: Failed to create test pool: %v\n", err)
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers when docker is missing
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(15*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	migrateOnce.Do(func() {
		db := stdlib.OpenDBFromPool(testPool)
		defer db.Close()
		migrateErr = database.Migrate(context.Background(), database.DriverPostgres, db)
	})
	require.NoError(t, migrateErr)
}

func createPlayer(t *testing.T, ctx context.Context, name string) *domain.Player {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	p := &domain.Player{ID: uuid.New().String(), Username: name, CreatedAt: now}
	for _, kind := range domain.AllSiteKinds {
		p.Sites = append(p.Sites, domain.Site{
			ID:         uuid.New().String(),
			PlayerID:   p.ID,
			Kind:       kind,
			Level:      domain.MinSiteLevel,
			LastGather: now,
		})
	}

	tx, err := NewPlayerRepository(testPool).BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	require.NoError(t, tx.CreatePlayer(ctx, p))
	require.NoError(t, tx.Commit(ctx))
	return p
}

func TestPlayerRepository_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewPlayerRepository(testPool)

	p := createPlayer(t, ctx, "pg-"+uuid.NewString()[:8])

	loaded, err := repo.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Username, loaded.Username)
	assert.Len(t, loaded.Sites, 3)

	byName, err := repo.GetPlayerByUsername(ctx, p.Username)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = repo.GetPlayer(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = repo.GetPlayer(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestSiteRepository_UpdateWithinTransaction(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewSiteRepository(testPool)
	p := createPlayer(t, ctx, "site-"+uuid.NewString()[:8])

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	s, err := tx.GetSiteForUpdate(ctx, p.ID, domain.SiteWood)
	require.NoError(t, err)
	s.Workers = 4
	s.Amount = 12.5
	require.NoError(t, tx.UpdateSite(ctx, s))
	require.NoError(t, tx.UpdatePlayerBalance(ctx, p.ID, 77))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetSite(ctx, p.ID, domain.SiteWood)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Workers)
	assert.Equal(t, 12.5, got.Amount)
}

func TestBonusRepository_ActivationsAndExpiry(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewBonusRepository(testPool)
	buyer := createPlayer(t, ctx, "buyer-"+uuid.NewString()[:8])
	now := time.Now().UTC().Truncate(time.Millisecond)

	b := domain.Bonus{
		ID:             uuid.NewString(),
		Kind:           domain.BonusFreeze,
		Level:          2,
		AvailableUntil: now.Add(time.Minute),
		Cost:           40000,
		Duration:       60,
		CreatedAt:      now,
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.LockBonusPool(ctx))
	require.NoError(t, tx.CreateBonus(ctx, &b))
	require.NoError(t, tx.Commit(ctx))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetBonusForUpdate(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BonusFreeze, locked.Kind)

	require.NoError(t, tx.UpdateBonusAvailability(ctx, b.ID, now.Add(-time.Second)))
	require.NoError(t, tx.CreateActivations(ctx, []domain.Activation{{
		ID:          uuid.NewString(),
		PlayerID:    buyer.ID,
		BonusID:     b.ID,
		ActiveUntil: now.Add(time.Minute),
		CreatedAt:   now,
	}}))

	has, err := tx.HasActivation(ctx, buyer.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, has)
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetBonus(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable(now))

	active, err := repo.ListActiveBonuses(ctx, buyer.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].Bonus.ID)
	assert.Equal(t, 2, active[0].Bonus.Level)
}
