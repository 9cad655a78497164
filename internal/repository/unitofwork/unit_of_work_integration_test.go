package unitofwork

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/model"
	"lessonplan-review-be/internal/repository/specification"
	"lessonplan-review-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepositories(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ScoreRecord{}, &model.Note{}, &model.ChatTurn{}))

	ctx := context.Background()
	factory := NewRepositoryFactory(db)
	sessionId := uuid.New()
	t.Cleanup(func() {
		db.Where("session_id = ?", sessionId).Delete(&model.ScoreRecord{})
		db.Where("session_id = ?", sessionId).Delete(&model.Note{})
		db.Where("session_id = ?", sessionId).Delete(&model.ChatTurn{})
	})

	t.Run("Score record round trip", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		record := &entity.ScoreRecord{
			Id:          uuid.New(),
			SessionId:   sessionId,
			Scores:      map[string]int{"objectives": 4, "content": 5, "innovation": 3, "assessment": 4, "timing": 4},
			Total:       4,
			Comment:     "integration",
			SubmittedAt: time.Now(),
		}
		require.NoError(t, uow.ScoreRecordRepository().Create(ctx, record))
		require.NoError(t, uow.Commit())

		found, err := factory.NewUnitOfWork(ctx).ScoreRecordRepository().FindOne(ctx, specification.ByID{ID: record.Id})
		require.NoError(t, err)
		assert.Equal(t, 5, found.Scores["content"])
		assert.Equal(t, 4.0, found.Total)
	})

	t.Run("Rollback discards the record", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.ScoreRecordRepository().Create(ctx, &entity.ScoreRecord{
			Id:          uuid.New(),
			SessionId:   sessionId,
			Scores:      map[string]int{},
			SubmittedAt: time.Now(),
		}))
		require.NoError(t, uow.Rollback())

		count, err := factory.NewUnitOfWork(ctx).ScoreRecordRepository().Count(ctx, specification.BySessionID{SessionID: sessionId})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Chat turns are idempotent", func(t *testing.T) {
		repo := factory.NewUnitOfWork(ctx).ChatTurnRepository()
		turn := &entity.ChatTurn{Id: uuid.New(), SessionId: sessionId, Role: "user", Content: "hi", CreatedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, turn))
		require.NoError(t, repo.Create(ctx, turn))

		turns, err := repo.FindAll(ctx, specification.BySessionID{SessionID: sessionId})
		require.NoError(t, err)
		assert.Len(t, turns, 1)
	})

	t.Run("Notes are listed per session and idempotent", func(t *testing.T) {
		repo := factory.NewUnitOfWork(ctx).NoteRepository()
		note := &entity.Note{
			Id: uuid.New(), SessionId: sessionId, Title: "t", Content: "t", Origin: "manual", CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, note))
		require.NoError(t, repo.Create(ctx, note))

		notes, err := repo.FindAll(ctx, specification.BySessionID{SessionID: sessionId}, specification.OrderBy{Field: "created_at"})
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
}
