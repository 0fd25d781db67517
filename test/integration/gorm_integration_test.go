package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"
	"notedesk/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.WorkspaceRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := uow.ProjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Check Transactional Cascade Delete", func(t *testing.T) {
		ctx := context.Background()
		uow := uowFactory.NewUnitOfWork(ctx)

		project := &entity.Project{
			Id:        uuid.New(),
			Name:      "integration-" + uuid.New().String(),
			Color:     "#458588",
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.ProjectRepository().Create(ctx, project))

		note := &entity.Note{
			Id:        uuid.New(),
			Title:     "integration note",
			ProjectId: project.Id,
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.NoteRepository().Create(ctx, note))

		assert.NoError(t, uow.Begin(ctx))
		assert.NoError(t, uow.TaskRepository().DeleteByNoteId(ctx, note.Id))
		assert.NoError(t, uow.NoteTagRepository().DeleteByNoteId(ctx, note.Id))
		assert.NoError(t, uow.NoteRepository().Delete(ctx, note.Id))
		assert.NoError(t, uow.ProjectRepository().Delete(ctx, project.Id))
		assert.NoError(t, uow.Commit())

		gone, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
