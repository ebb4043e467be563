package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/code4projects/raceboard/models"
)

var testDBSeq atomic.Int64

// newTestDB opens a private in-memory SQLite database with the app
// schema created.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:racesvc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	for _, model := range []interface{}{(*models.User)(nil), (*models.Race)(nil)} {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(context.Background())
		require.NoError(t, err)
	}
	return db
}

func testInput() RaceInput {
	return RaceInput{
		Name:     "Maratona di Roma",
		Time:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		City:     "Roma",
		Distance: 42195,
		Website:  "https://www.maratonadiroma.it",
	}
}

func TestRaceService_CreateAssignsFreshID(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.Create(ctx, testInput())
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := svc.Create(ctx, testInput())
	require.NoError(t, err)
	require.NotZero(t, second.ID)
	require.NotEqual(t, first.ID, second.ID)

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Maratona di Roma", got.Name)
	require.Equal(t, "Roma", got.City)
	require.Equal(t, 42195, got.Distance)
	require.Equal(t, "https://www.maratonadiroma.it", got.Website)
	require.True(t, got.Time.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
}

func TestRaceService_GetByIDNotFound(t *testing.T) {
	svc := NewRaceService(newTestDB(t))

	_, err := svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrRaceNotFound)
}

func TestRaceService_GetAll(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	ctx := context.Background()

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	_, err = svc.Create(ctx, testInput())
	require.NoError(t, err)
	in := testInput()
	in.Name = "Firenze Marathon"
	in.City = "Firenze"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestRaceService_UpdateOverwritesEveryField(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	in := RaceInput{
		Name:     "Maratona di Roma (update)",
		Time:     time.Date(2024, 3, 17, 8, 30, 0, 0, time.UTC),
		City:     "Roma (update)",
		Distance: 42192,
		Website:  "https://www.maratonadiroma.it",
	}

	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, in.Name, updated.Name)
	require.Equal(t, in.Distance, updated.Distance)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, in.Name, got.Name)
	require.Equal(t, in.City, got.City)
	require.Equal(t, in.Distance, got.Distance)
	require.Equal(t, in.Website, got.Website)
	require.True(t, got.Time.Equal(in.Time))

	// applying the same update twice yields the same final state
	_, err = svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	again, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, got.Name, again.Name)
	require.Equal(t, got.Distance, again.Distance)
	require.True(t, got.Time.Equal(again.Time))
}

func TestRaceService_UpdateNotFoundMutatesNothing(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	in := testInput()
	in.Name = "Should not appear"
	_, err = svc.Update(ctx, created.ID+1000, in)
	require.ErrorIs(t, err, ErrRaceNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Maratona di Roma", all[0].Name)
}

func TestRaceService_DeleteTwice(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrRaceNotFound)

	// second delete reports not found, not a storage failure
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrRaceNotFound)
}

func TestRaceService_DeleteUnknownID(t *testing.T) {
	svc := NewRaceService(newTestDB(t))
	require.ErrorIs(t, svc.Delete(context.Background(), 42), ErrRaceNotFound)
}
