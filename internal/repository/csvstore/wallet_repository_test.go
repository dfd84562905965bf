package csvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

func TestCSVWalletRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallets.csv")

	repo, err := NewCSVWalletRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, "ada0001"))

	t.Run("new wallet starts at zero", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, "ada0001")
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("credit adds to the stored balance", func(t *testing.T) {
		newBalance, err := repo.Credit(ctx, "ada0001", decimal.NewFromInt(500))
		require.NoError(t, err)
		assert.Equal(t, "500", newBalance.String())
	})

	t.Run("debit subtracts", func(t *testing.T) {
		newBalance, err := repo.Debit(ctx, "ada0001", decimal.NewFromInt(200))
		require.NoError(t, err)
		assert.Equal(t, "300", newBalance.String())
	})

	// Unknown-user reads deliberately come back as zero without an error;
	// the purchase path depends on this.
	t.Run("unknown user reads as zero", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, "ghost0001")
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("mutating an unknown wallet fails", func(t *testing.T) {
		_, err := repo.Credit(ctx, "ghost0001", decimal.NewFromInt(100))
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
	})

	t.Run("balance survives reload", func(t *testing.T) {
		reloaded, err := NewCSVWalletRepository(path)
		require.NoError(t, err)

		balance, err := reloaded.GetBalance(ctx, "ada0001")
		require.NoError(t, err)
		assert.Equal(t, "300", balance.String())
	})
}
