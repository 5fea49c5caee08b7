package service

import (
	"context"
	"errors"
	"sync"

	"game_catalog/internal/model"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int]*model.User
	nextID int
	err    error // when set, every call fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByMobile(_ context.Context, mobile string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Mobile == mobile {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeGameRepo is an in-memory GameRepository for service tests
type fakeGameRepo struct {
	mu     sync.Mutex
	games  map[int]*model.Game
	nextID int
	err    error
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[int]*model.Game{}, nextID: 1}
}

func (f *fakeGameRepo) Create(_ context.Context, game *model.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	game.ID = f.nextID
	f.nextID++
	cp := *game
	f.games[game.ID] = &cp
	return nil
}

func (f *fakeGameRepo) FindByID(_ context.Context, id int) (*model.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGameRepo) FindAll(_ context.Context) ([]model.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	games := make([]model.Game, 0, len(f.games))
	for id := 1; id < f.nextID; id++ {
		if g, ok := f.games[id]; ok {
			games = append(games, *g)
		}
	}
	return games, nil
}

func (f *fakeGameRepo) Update(_ context.Context, game *model.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.games[game.ID]; !ok {
		return errors.New("update of missing game")
	}
	cp := *game
	f.games[game.ID] = &cp
	return nil
}

func (f *fakeGameRepo) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.games, id)
	return nil
}
