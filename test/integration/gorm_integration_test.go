package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
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

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SuggestionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Task Repository", func(t *testing.T) {
		count, err := uow.TaskRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Task count: %d", count)
	})

	t.Run("Check Suggestion Repository", func(t *testing.T) {
		count, err := uow.SuggestionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Suggestion count: %d", count)
	})

	t.Run("Check Transactional Task Creation", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)

		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			Name:     "Integration Test User",
			Timezone: "UTC",
			Language: "en",
		}
		err = txUow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		due := time.Now().Add(24 * time.Hour)
		task := &entity.Task{
			Id:       uuid.New(),
			UserId:   userId,
			Title:    "Integration task",
			Priority: entity.TaskPriorityMedium,
			Status:   entity.TaskStatusTodo,
			DueDate:  &due,
		}
		err = txUow.TaskRepository().Create(ctx, task)
		assert.NoError(t, err)

		found, err := txUow.TaskRepository().FindOne(ctx, specification.ByID{ID: task.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Integration task", found.Title)
			assert.Equal(t, userId, found.UserId)
		}

		// Keep the test re-runnable: discard everything.
		err = txUow.Rollback()
		assert.NoError(t, err)
	})
}
