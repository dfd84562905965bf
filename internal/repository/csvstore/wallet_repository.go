package csvstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gusau-brt/ticketing-service/internal/models"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

type CSVWalletRepository struct {
	path    string
	mu      sync.RWMutex
	wallets []models.Wallet
}

func NewCSVWalletRepository(path string) (*CSVWalletRepository, error) {
	if err := EnsureTable(path, WalletColumns); err != nil {
		return nil, err
	}
	_, rows, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	wallets := make([]models.Wallet, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(WalletColumns) {
			return nil, fmt.Errorf("malformed wallet row in %s: %v", path, row)
		}
		balance, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("bad balance for %s in %s: %w", row[0], path, err)
		}
		wallets = append(wallets, models.Wallet{UserID: row[0], Balance: balance})
	}
	return &CSVWalletRepository{path: path, wallets: wallets}, nil
}

func (r *CSVWalletRepository) Create(ctx context.Context, userID string) (err error) {
	start := time.Now()
	defer func() { observe("wallets.create", start, err) }()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets = append(r.wallets, models.Wallet{UserID: userID, Balance: decimal.Zero})
	if err = r.saveLocked(); err != nil {
		r.wallets = r.wallets[:len(r.wallets)-1]
		return fmt.Errorf("failed to persist wallet for %s: %w", userID, err)
	}
	return nil
}

// GetBalance returns zero (and no error) for a user without a wallet row.
func (r *CSVWalletRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.wallets {
		if r.wallets[i].UserID == userID {
			return r.wallets[i].Balance, nil
		}
	}
	return decimal.Zero, nil
}

func (r *CSVWalletRepository) Credit(ctx context.Context, userID string, amount decimal.Decimal) (newBalance decimal.Decimal, err error) {
	start := time.Now()
	defer func() { observe("wallets.credit", start, err) }()
	return r.change(userID, amount)
}

func (r *CSVWalletRepository) Debit(ctx context.Context, userID string, amount decimal.Decimal) (newBalance decimal.Decimal, err error) {
	start := time.Now()
	defer func() { observe("wallets.debit", start, err) }()
	return r.change(userID, amount.Neg())
}

func (r *CSVWalletRepository) List(ctx context.Context) ([]models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Wallet, len(r.wallets))
	copy(out, r.wallets)
	return out, nil
}

func (r *CSVWalletRepository) change(userID string, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.wallets {
		if r.wallets[i].UserID != userID {
			continue
		}
		prev := r.wallets[i].Balance
		r.wallets[i].Balance = prev.Add(delta)
		if err := r.saveLocked(); err != nil {
			r.wallets[i].Balance = prev
			return decimal.Zero, fmt.Errorf("failed to persist wallet for %s: %w", userID, err)
		}
		return r.wallets[i].Balance, nil
	}
	return decimal.Zero, pkgerrors.ErrUserNotFound
}

func (r *CSVWalletRepository) saveLocked() error {
	rows := make([][]string, 0, len(r.wallets))
	for _, w := range r.wallets {
		rows = append(rows, []string{w.UserID, w.Balance.String()})
	}
	return SaveTable(r.path, WalletColumns, rows)
}
