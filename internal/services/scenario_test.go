package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gusau-brt/ticketing-service/internal/models"
	"github.com/gusau-brt/ticketing-service/internal/receipt"
	"github.com/gusau-brt/ticketing-service/internal/repository/csvstore"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

// Full pass through the real stores: register, fund, buy, get rejected.
func TestScenario_RegisterFundBuy(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	qrDir := filepath.Join(dataDir, "qr_codes")

	userRepo, err := csvstore.NewCSVUserRepository(filepath.Join(dataDir, "users.csv"))
	require.NoError(t, err)
	walletRepo, err := csvstore.NewCSVWalletRepository(filepath.Join(dataDir, "wallets.csv"))
	require.NoError(t, err)
	ticketRepo, err := csvstore.NewCSVTicketRepository(filepath.Join(dataDir, "tickets.csv"))
	require.NoError(t, err)
	receipts, err := receipt.NewPNGGenerator(qrDir)
	require.NoError(t, err)

	svc := NewTicketingService(userRepo, walletRepo, ticketRepo, receipts)

	userID, err := svc.RegisterUser(ctx, "Ada", models.RoleClientPassenger, "08031234567", "Central Terminal")
	require.NoError(t, err)
	assert.Equal(t, "ada0001", userID)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = svc.LoadWallet(ctx, userID, models.FundingBankTransfer, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "500", balance.String())

	ticket, err := svc.PurchaseTicket(ctx, userID, models.TicketSingleRide, "Gusau Central")
	require.NoError(t, err)
	assert.Equal(t, "200", ticket.Amount.String())
	assert.True(t, ticket.IssueTime.Add(30*time.Minute).Equal(ticket.ExpiryTime))

	balance, err = svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "300", balance.String())

	if _, err := os.Stat(filepath.Join(qrDir, ticket.ID+".png")); assert.NoError(t, err) {
		history, err := svc.GetTicketHistory(ctx, userID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, ticket.QRPath, history[0].QRPath)
	}

	_, err = svc.PurchaseTicket(ctx, userID, models.TicketMonthlyPass, "")
	assert.ErrorIs(t, err, pkgerrors.ErrInsufficientFunds)

	balance, err = svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "300", balance.String())

	// Everything above must also be on disk, not just in memory.
	reloadedWallets, err := csvstore.NewCSVWalletRepository(filepath.Join(dataDir, "wallets.csv"))
	require.NoError(t, err)
	balance, err = reloadedWallets.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "300", balance.String())

	reloadedTickets, err := csvstore.NewCSVTicketRepository(filepath.Join(dataDir, "tickets.csv"))
	require.NoError(t, err)
	persisted, err := reloadedTickets.List(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, ticket.ID, persisted[0].ID)
}
