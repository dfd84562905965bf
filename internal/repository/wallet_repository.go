package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gusau-brt/ticketing-service/internal/models"
)

type WalletRepository interface {
	Create(ctx context.Context, userID string) error
	// GetBalance returns the stored balance, or zero for an unknown user.
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal) (newBalance decimal.Decimal, err error)
	// Debit subtracts without a floor guard; sufficiency is the caller's check.
	Debit(ctx context.Context, userID string, amount decimal.Decimal) (newBalance decimal.Decimal, err error)
	List(ctx context.Context) ([]models.Wallet, error)
}
