package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_catalog/internal/apperr"
	"game_catalog/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func validGameRequest() *model.GameRequest {
	return &model.GameRequest{
		Title:       "Chess Deluxe",
		Description: "A classic strategy game with a modern twist",
		Price:       floatPtr(19.99),
		Category:    "Strategy",
		Image:       "https://example.com/chess.png",
	}
}

func TestGameService_List_Empty(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())

	games, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, games)
	assert.Len(t, games, 0)
}

func TestGameService_CreateAndGet(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validGameRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGameService_Create_ValidationFailure(t *testing.T) {
	repo := newFakeGameRepo()
	repo.err = errors.New("store must not be touched")
	svc := NewGameService(repo)

	req := validGameRequest()
	req.Title = "A"
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.ValidationFailed, ae.Kind)
	assert.Contains(t, ae.Fields, "title")
}

func TestGameService_Create_ZeroPrice(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())

	req := validGameRequest()
	req.Price = floatPtr(0)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.Price)
}

func TestGameService_Get_NotFound(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())

	_, err := svc.Get(context.Background(), 42)
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

func TestGameService_Update(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validGameRequest())
	require.NoError(t, err)

	req := validGameRequest()
	req.Title = "Chess Deluxe II"
	req.Rating = floatPtr(4.5)
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Chess Deluxe II", updated.Title)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestGameService_Update_NotFound(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())

	_, err := svc.Update(context.Background(), 42, validGameRequest())
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

func TestGameService_Delete(t *testing.T) {
	svc := NewGameService(newFakeGameRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validGameRequest())
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))

	// Deleting again reports NotFound, it does not crash.
	err = svc.Delete(ctx, created.ID)
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

func TestGameService_List_StoreFailure(t *testing.T) {
	repo := newFakeGameRepo()
	repo.err = errors.New("connection reset")
	svc := NewGameService(repo)

	_, err := svc.List(context.Background())
	assert.Equal(t, apperr.Unexpected, kindOf(t, err))
}
