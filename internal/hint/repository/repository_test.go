package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/hint/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Hint{})
	require.NoError(t, err)

	return db
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	hint := &model.Hint{HintText: "Look at the footer"}
	err := repo.Create(ctx, hint)

	require.NoError(t, err)
	assert.NotZero(t, hint.ID)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		hints, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, hints)
		assert.Empty(t, hints)
	})

	t.Run("creation order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		require.NoError(t, repo.Create(ctx, &model.Hint{HintText: "first"}))
		require.NoError(t, repo.Create(ctx, &model.Hint{HintText: "second"}))
		require.NoError(t, repo.Create(ctx, &model.Hint{HintText: "third"}))

		hints, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, hints, 3)
		assert.Equal(t, "first", hints[0].HintText)
		assert.Equal(t, "second", hints[1].HintText)
		assert.Equal(t, "third", hints[2].HintText)
	})
}
