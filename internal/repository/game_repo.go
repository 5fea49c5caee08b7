package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"game_catalog/internal/model"
)

// GameRepository defines operations for catalog data
type GameRepository interface {
	Create(ctx context.Context, game *model.Game) error
	FindByID(ctx context.Context, id int) (*model.Game, error)
	FindAll(ctx context.Context) ([]model.Game, error)
	Update(ctx context.Context, game *model.Game) error
	Delete(ctx context.Context, id int) error
}

type gameRepository struct {
	db DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db DB) GameRepository {
	return &gameRepository{db: db}
}

const gameColumns = `id, title, description, price, category, image, rating, created_at, updated_at`

// Create inserts a new game into the database
func (r *gameRepository) Create(ctx context.Context, g *model.Game) error {
	sql := `INSERT INTO games (title, description, price, category, image, rating, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		g.Title, g.Description, g.Price, g.Category, g.Image, g.Rating, g.CreatedAt, g.UpdatedAt,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// FindByID retrieves a game by its ID. Not found is (nil, nil).
func (r *gameRepository) FindByID(ctx context.Context, id int) (*model.Game, error) {
	g := &model.Game{}
	sql := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&g.ID, &g.Title, &g.Description, &g.Price, &g.Category, &g.Image,
		&g.Rating, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game by ID: %w", err)
	}
	return g, nil
}

// FindAll retrieves every game, in store order
func (r *gameRepository) FindAll(ctx context.Context) ([]model.Game, error) {
	sql := `SELECT ` + gameColumns + ` FROM games`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(
			&g.ID, &g.Title, &g.Description, &g.Price, &g.Category, &g.Image,
			&g.Rating, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}
	return games, nil
}

// Update replaces the mutable fields of an existing game
func (r *gameRepository) Update(ctx context.Context, g *model.Game) error {
	sql := `UPDATE games SET title = $1, description = $2, price = $3, category = $4,
            image = $5, rating = $6, updated_at = $7 WHERE id = $8`
	_, err := r.db.Exec(ctx, sql,
		g.Title, g.Description, g.Price, g.Category, g.Image, g.Rating, g.UpdatedAt, g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

// Delete removes a game by its ID
func (r *gameRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
