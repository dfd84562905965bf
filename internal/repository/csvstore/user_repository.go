package csvstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gusau-brt/ticketing-service/internal/models"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

type CSVUserRepository struct {
	path  string
	mu    sync.RWMutex
	users []models.User
}

func NewCSVUserRepository(path string) (*CSVUserRepository, error) {
	if err := EnsureTable(path, UserColumns); err != nil {
		return nil, err
	}
	_, rows, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(UserColumns) {
			return nil, fmt.Errorf("malformed user row in %s: %v", path, row)
		}
		users = append(users, models.User{
			ID:        row[0],
			FirstName: row[1],
			Role:      models.Role(row[2]),
			Phone:     row[3],
			BusStop:   row[4],
		})
	}
	return &CSVUserRepository{path: path, users: users}, nil
}

func (r *CSVUserRepository) Create(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { observe("users.create", start, err) }()

	if user == nil {
		return pkgerrors.ErrNilUser
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *user)
	if err = r.saveLocked(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return fmt.Errorf("failed to persist user %s: %w", user.ID, err)
	}
	return nil
}

func (r *CSVUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, pkgerrors.ErrUserNotFound
}

func (r *CSVUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *CSVUserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *CSVUserRepository) saveLocked() error {
	rows := make([][]string, 0, len(r.users))
	for _, u := range r.users {
		rows = append(rows, []string{u.ID, u.FirstName, string(u.Role), u.Phone, u.BusStop})
	}
	return SaveTable(r.path, UserColumns, rows)
}
