package vote

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

// setupPostgres spins up a disposable Postgres and returns a migrated gorm DB.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("portal_test"),
		tcpostgres.WithUsername("portal"),
		tcpostgres.WithPassword("portal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vote{}))

	return db
}

func TestGormStoreUpsert(t *testing.T) {
	db := setupPostgres(t)
	store := NewGormStore(db)
	ctx := context.Background()

	rec, created, err := store.Upsert(ctx, models.Vote{UserID: 1, TargetID: "K1", VoteType: Upvote})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, Upvote, rec.VoteType)

	rec, created, err = store.Upsert(ctx, models.Vote{UserID: 1, TargetID: "K1", VoteType: Downvote})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, Downvote, rec.VoteType)

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Where("user_id = ? AND target_id = ?", 1, "K1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestGormStoreUpsertRace issues near-simultaneous casts for the same
// (user, target) pair and verifies the unique-pair constraint serializes them
// into a single row.
func TestGormStoreUpsertRace(t *testing.T) {
	db := setupPostgres(t)
	store := NewGormStore(db)
	ledger := NewLedger(store)
	ctx := context.Background()

	numCasts := 20
	var wg sync.WaitGroup
	for i := 0; i < numCasts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vt := Upvote
			if i%2 == 0 {
				vt = Downvote
			}
			if _, _, err := ledger.Cast(ctx, 42, "K9", vt); err != nil {
				t.Errorf("cast failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Where("user_id = ? AND target_id = ?", 42, "K9").Count(&count).Error)
	assert.Equal(t, int64(1), count, "expected exactly one persisted row for the pair")
}

func TestGormStoreAggregation(t *testing.T) {
	db := setupPostgres(t)
	store := NewGormStore(db)
	ledger := NewLedger(store)
	agg := NewAggregator(store)
	ctx := context.Background()

	for user := 1; user <= 3; user++ {
		_, _, err := ledger.Cast(ctx, user, "K1", Upvote)
		require.NoError(t, err)
	}
	_, _, err := ledger.Cast(ctx, 4, "K1", Downvote)
	require.NoError(t, err)

	summary, err := agg.Results(ctx, "K1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Upvotes)
	assert.Equal(t, 1, summary.Downvotes)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 75.0, summary.PercentUp)
	assert.Equal(t, 25.0, summary.PercentDown)
}
