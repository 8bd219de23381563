package progress_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playperu/minicourse/internal/database"
	"github.com/playperu/minicourse/internal/migrations"
	"github.com/playperu/minicourse/internal/progress"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memPersister struct {
	data  []byte
	saves int
}

func (m *memPersister) Load(context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, progress.ErrNoState
	}
	return m.data, nil
}

func (m *memPersister) Save(_ context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = migrations.Run(context.Background(), db)
	require.NoError(t, err)
	return db
}

func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "localhost:1",
		DialTimeout:  10 * time.Millisecond,
		ReadTimeout:  10 * time.Millisecond,
		WriteTimeout: 10 * time.Millisecond,
		MaxRetries:   0,
	})
}

func TestOpenDefaults(t *testing.T) {
	s := progress.Open(context.Background(), &memPersister{}, discard)
	assert.Equal(t, progress.Defaults(), s.Snapshot())
	assert.Equal(t, 0, s.Percent())
}

func TestOpenMalformed(t *testing.T) {
	for _, raw := range []string{`not json`, `{"currentStep":0}`, `{"currentStep":-2,"completedSteps":[1]}`, `[]`} {
		t.Run(raw, func(t *testing.T) {
			s := progress.Open(context.Background(), &memPersister{data: []byte(raw)}, discard)
			assert.Equal(t, progress.Defaults(), s.Snapshot())
		})
	}
}

func TestCompleteStepIdempotent(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}
	s := progress.Open(ctx, p, discard)

	s.CompleteStep(ctx, 3)
	s.CompleteStep(ctx, 1)
	s.CompleteStep(ctx, 3)

	assert.Equal(t, []int{1, 3}, s.Snapshot().CompletedSteps)
	assert.Equal(t, 50, s.Percent())
	assert.Equal(t, 3, p.saves, "every mutation is persisted")
}

func TestSetQuizScoreOverwrites(t *testing.T) {
	ctx := context.Background()
	s := progress.Open(ctx, &memPersister{}, discard)
	s.SetQuizScore(ctx, 2, 40)
	s.SetQuizScore(ctx, 2, 85)
	assert.Equal(t, map[int]int{2: 85}, s.Snapshot().QuizScores)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := progress.Open(ctx, &memPersister{}, discard)
	s.CompleteStep(ctx, 1)

	snap := s.Snapshot()
	snap.CompletedSteps[0] = 9
	snap.QuizScores[2] = 1

	assert.Equal(t, []int{1}, s.Snapshot().CompletedSteps)
	assert.Empty(t, s.Snapshot().QuizScores)
}

func TestResetThenReopen(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	s := progress.Open(ctx, progress.NewSQLitePersister(db), discard)
	s.CompleteStep(ctx, 1)
	s.SetQuizScore(ctx, 2, 90)
	s.Reset(ctx)
	s.SetCurrentStep(ctx, 3)

	reopened := progress.Open(ctx, progress.NewSQLitePersister(db), discard)
	st := reopened.Snapshot()
	assert.Equal(t, 3, st.CurrentStep)
	assert.Empty(t, st.CompletedSteps)
	assert.Empty(t, st.QuizScores)
	assert.Equal(t, progress.TotalSteps, st.TotalSteps)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	s := progress.Open(ctx, progress.NewSQLitePersister(db), discard)
	s.SetCurrentStep(ctx, 4)
	s.CompleteStep(ctx, 2)
	s.CompleteStep(ctx, 1)
	s.SetQuizScore(ctx, 2, 75)

	st := progress.Open(ctx, progress.NewSQLitePersister(db), discard).Snapshot()
	assert.Equal(t, 4, st.CurrentStep)
	assert.Equal(t, []int{1, 2}, st.CompletedSteps)
	assert.Equal(t, map[int]int{2: 75}, st.QuizScores)
}

func TestSQLiteCorruptRecord(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	_, err := db.ExecContext(ctx, `INSERT INTO kv (id, data) VALUES (?, jsonb(?))`,
		progress.Namespace, `{"currentStep":0,"completedSteps":[]}`)
	require.NoError(t, err)

	s := progress.Open(ctx, progress.NewSQLitePersister(db), discard)
	assert.Equal(t, progress.Defaults(), s.Snapshot())
}

func TestWriteFailureIsLoggedNotSurfaced(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	rdb := deadRedis()
	defer rdb.Close()

	s := progress.Open(ctx, progress.NewRedisPersister(rdb), logger)
	assert.Equal(t, progress.Defaults(), s.Snapshot())

	s.CompleteStep(ctx, 1)
	assert.Equal(t, []int{1}, s.Snapshot().CompletedSteps, "in-memory state still updates")
	assert.Contains(t, logs.String(), "saving progress failed")
}
