package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gusau-brt/ticketing-service/internal/models"
	repositorymocks "github.com/gusau-brt/ticketing-service/internal/repository/mocks"
	servicemocks "github.com/gusau-brt/ticketing-service/internal/services/mocks"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

func newTestService(ctrl *gomock.Controller) (*ticketingService, *repositorymocks.MockUserRepository, *repositorymocks.MockWalletRepository, *repositorymocks.MockTicketRepository, *servicemocks.MockReceiptGenerator) {
	userRepo := repositorymocks.NewMockUserRepository(ctrl)
	walletRepo := repositorymocks.NewMockWalletRepository(ctrl)
	ticketRepo := repositorymocks.NewMockTicketRepository(ctrl)
	receipts := servicemocks.NewMockReceiptGenerator(ctrl)
	svc := NewTicketingService(userRepo, walletRepo, ticketRepo, receipts)
	return svc, userRepo, walletRepo, ticketRepo, receipts
}

func TestTicketingService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("first registrant gets a padded counter ID", func(t *testing.T) {
		svc, userRepo, walletRepo, _, _ := newTestService(ctrl)

		userRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.User) error {
				assert.Equal(t, "ada0001", u.ID)
				assert.Equal(t, "Ada", u.FirstName)
				assert.Equal(t, models.RoleClientPassenger, u.Role)
				return nil
			})
		walletRepo.EXPECT().Create(gomock.Any(), "ada0001").Return(nil)

		userID, err := svc.RegisterUser(ctx, "Ada", models.RoleClientPassenger, "08031234567", "Central Terminal")
		assert.NoError(t, err)
		assert.Equal(t, "ada0001", userID)
	})

	t.Run("ID lowercases the first name", func(t *testing.T) {
		svc, userRepo, walletRepo, _, _ := newTestService(ctrl)

		userRepo.EXPECT().Count(gomock.Any()).Return(41, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		walletRepo.EXPECT().Create(gomock.Any(), "bello0042").Return(nil)

		userID, err := svc.RegisterUser(ctx, "BELLO", models.RoleBusConductor, "", "")
		assert.NoError(t, err)
		assert.Equal(t, "bello0042", userID)
	})

	// Empty first names are accepted and produce a bare counter ID; the
	// form does not enforce a value and neither does the core.
	t.Run("empty first name yields degenerate ID", func(t *testing.T) {
		svc, userRepo, walletRepo, _, _ := newTestService(ctrl)

		userRepo.EXPECT().Count(gomock.Any()).Return(2, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		walletRepo.EXPECT().Create(gomock.Any(), "0003").Return(nil)

		userID, err := svc.RegisterUser(ctx, "", models.RolePrivateTicketAgent, "", "")
		assert.NoError(t, err)
		assert.Equal(t, "0003", userID)
	})

	t.Run("count failure surfaces as internal", func(t *testing.T) {
		svc, userRepo, _, _, _ := newTestService(ctrl)

		userRepo.EXPECT().Count(gomock.Any()).Return(0, fmt.Errorf("disk gone"))

		_, err := svc.RegisterUser(ctx, "Ada", models.RoleClientPassenger, "", "")
		assert.ErrorIs(t, err, pkgerrors.ErrInternal)
	})
}

func TestTicketingService_LoadWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("credits and returns the new balance", func(t *testing.T) {
		svc, _, walletRepo, _, _ := newTestService(ctrl)

		amount := decimal.NewFromInt(500)
		walletRepo.EXPECT().Credit(gomock.Any(), "ada0001", amount).Return(decimal.NewFromInt(500), nil)

		newBalance, err := svc.LoadWallet(ctx, "ada0001", models.FundingBankTransfer, amount)
		assert.NoError(t, err)
		assert.Equal(t, "500", newBalance.String())
	})

	t.Run("rejects non-positive amounts without touching the wallet", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(ctrl)

		_, err := svc.LoadWallet(ctx, "ada0001", models.FundingUSSD, decimal.Zero)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidAmount)

		_, err = svc.LoadWallet(ctx, "ada0001", models.FundingUSSD, decimal.NewFromInt(-100))
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidAmount)
	})

	t.Run("unknown wallet error passes through", func(t *testing.T) {
		svc, _, walletRepo, _, _ := newTestService(ctrl)

		walletRepo.EXPECT().Credit(gomock.Any(), "ghost0001", gomock.Any()).
			Return(decimal.Zero, pkgerrors.ErrUserNotFound)

		_, err := svc.LoadWallet(ctx, "ghost0001", models.FundingCreditUnit, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
	})
}

func TestTicketingService_PurchaseTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	issued := time.Date(2024, 3, 15, 14, 37, 9, 0, time.UTC)

	t.Run("successful purchase", func(t *testing.T) {
		svc, _, walletRepo, ticketRepo, receipts := newTestService(ctrl)
		svc.now = func() time.Time { return issued }

		price := models.TicketSingleRide.Price()
		walletRepo.EXPECT().GetBalance(gomock.Any(), "ada0001").Return(decimal.NewFromInt(500), nil)
		receipts.EXPECT().Generate(gomock.Any()).DoAndReturn(
			func(tk *models.Ticket) (string, error) {
				return "qr_codes/" + tk.ID + ".png", nil
			})
		walletRepo.EXPECT().Debit(gomock.Any(), "ada0001", price).Return(decimal.NewFromInt(300), nil)
		ticketRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		ticket, err := svc.PurchaseTicket(ctx, "ada0001", models.TicketSingleRide, "Gusau Central")
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("TKT-%d", issued.Unix()), ticket.ID)
		assert.Equal(t, "ada0001", ticket.BuyerID)
		assert.True(t, price.Equal(ticket.Amount))
		assert.True(t, issued.Equal(ticket.IssueTime))
		assert.True(t, issued.Add(30*time.Minute).Equal(ticket.ExpiryTime))
		assert.Equal(t, "Gusau Central", ticket.Terminal)
		assert.Equal(t, "qr_codes/"+ticket.ID+".png", ticket.QRPath)
	})

	t.Run("insufficient funds performs no mutation", func(t *testing.T) {
		svc, _, walletRepo, _, _ := newTestService(ctrl)
		svc.now = func() time.Time { return issued }

		walletRepo.EXPECT().GetBalance(gomock.Any(), "ada0001").Return(decimal.NewFromInt(300), nil)

		_, err := svc.PurchaseTicket(ctx, "ada0001", models.TicketMonthlyPass, "")
		assert.ErrorIs(t, err, pkgerrors.ErrInsufficientFunds)
	})

	t.Run("receipt failure aborts before the debit", func(t *testing.T) {
		svc, _, walletRepo, _, receipts := newTestService(ctrl)
		svc.now = func() time.Time { return issued }

		walletRepo.EXPECT().GetBalance(gomock.Any(), "ada0001").Return(decimal.NewFromInt(1000), nil)
		receipts.EXPECT().Generate(gomock.Any()).Return("", fmt.Errorf("disk full"))

		_, err := svc.PurchaseTicket(ctx, "ada0001", models.TicketDailyPass, "")
		assert.ErrorIs(t, err, pkgerrors.ErrInternal)
	})

	t.Run("daily pass expires at next midnight", func(t *testing.T) {
		svc, _, walletRepo, ticketRepo, receipts := newTestService(ctrl)
		svc.now = func() time.Time { return issued }

		walletRepo.EXPECT().GetBalance(gomock.Any(), "ada0001").Return(decimal.NewFromInt(1000), nil)
		receipts.EXPECT().Generate(gomock.Any()).Return("qr_codes/x.png", nil)
		walletRepo.EXPECT().Debit(gomock.Any(), "ada0001", models.TicketDailyPass.Price()).Return(decimal.NewFromInt(300), nil)
		ticketRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		ticket, err := svc.PurchaseTicket(ctx, "ada0001", models.TicketDailyPass, "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), ticket.ExpiryTime)
	})
}

func TestTicketingService_ListUserIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, walletRepo, _, _ := newTestService(ctrl)

	walletRepo.EXPECT().List(gomock.Any()).Return([]models.Wallet{
		{UserID: "ada0001", Balance: decimal.NewFromInt(300)},
		{UserID: "bello0002", Balance: decimal.Zero},
	}, nil)

	ids, err := svc.ListUserIDs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ada0001", "bello0002"}, ids)
}

func TestTicketingService_GetTicketHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, _, ticketRepo, _ := newTestService(ctrl)

	want := []models.Ticket{{ID: "TKT-1710513429", BuyerID: "ada0001"}}
	ticketRepo.EXPECT().ListByBuyer(gomock.Any(), "ada0001").Return(want, nil)

	got, err := svc.GetTicketHistory(ctx, "ada0001")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
