package service

import (
	"context"
	"time"

	"game_catalog/internal/apperr"
	"game_catalog/internal/model"
	"game_catalog/internal/repository"
	"game_catalog/internal/validation"
)

// GameService provides CRUD over the catalog. Authentication and the admin
// gate are enforced upstream by the request pipeline.
type GameService interface {
	List(ctx context.Context) ([]model.Game, error)
	Get(ctx context.Context, id int) (*model.Game, error)
	Create(ctx context.Context, req *model.GameRequest) (*model.Game, error)
	Update(ctx context.Context, id int, req *model.GameRequest) (*model.Game, error)
	Delete(ctx context.Context, id int) error
}

type gameService struct {
	gameRepo repository.GameRepository
}

// NewGameService creates a new GameService
func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) List(ctx context.Context) ([]model.Game, error) {
	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	return games, nil
}

func (s *gameService) Get(ctx context.Context, id int) (*model.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if game == nil {
		return nil, apperr.New(apperr.NotFound, "Game not found")
	}
	return game, nil
}

func (s *gameService) Create(ctx context.Context, req *model.GameRequest) (*model.Game, error) {
	if res := validation.ValidateGame(req); !res.Valid {
		return nil, apperr.Validation(res.Errors)
	}

	now := time.Now()
	game := &model.Game{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	return game, nil
}

func (s *gameService) Update(ctx context.Context, id int, req *model.GameRequest) (*model.Game, error) {
	if res := validation.ValidateGame(req); !res.Valid {
		return nil, apperr.Validation(res.Errors)
	}

	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if game == nil {
		return nil, apperr.New(apperr.NotFound, "Game not found")
	}

	game.Title = req.Title
	game.Description = req.Description
	game.Price = *req.Price
	game.Category = req.Category
	game.Image = req.Image
	game.Rating = req.Rating
	game.UpdatedAt = time.Now()

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	return game, nil
}

func (s *gameService) Delete(ctx context.Context, id int) error {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if game == nil {
		return apperr.New(apperr.NotFound, "Game not found")
	}
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	return nil
}
