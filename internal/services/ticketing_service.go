package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/gusau-brt/ticketing-service/internal/infrastructure/observability"
	"github.com/gusau-brt/ticketing-service/internal/models"
	"github.com/gusau-brt/ticketing-service/internal/repository"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

type TicketingService interface {
	RegisterUser(ctx context.Context, firstName string, role models.Role, phone, busStop string) (string, error)
	LoadWallet(ctx context.Context, userID string, method models.FundingMethod, amount decimal.Decimal) (decimal.Decimal, error)
	PurchaseTicket(ctx context.Context, buyerID string, ticketType models.TicketType, terminal string) (*models.Ticket, error)
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	GetTicketHistory(ctx context.Context, buyerID string) ([]models.Ticket, error)
}

// ReceiptGenerator renders the scannable receipt for an issued ticket and
// returns the path of the written image.
type ReceiptGenerator interface {
	Generate(t *models.Ticket) (string, error)
}

type ticketingService struct {
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	ticketRepo repository.TicketRepository
	receipts   ReceiptGenerator

	walletLocks *keyedMutex
	registerMu  sync.Mutex

	now func() time.Time
}

func NewTicketingService(
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	ticketRepo repository.TicketRepository,
	receipts ReceiptGenerator,
) *ticketingService {
	return &ticketingService{
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		ticketRepo:  ticketRepo,
		receipts:    receipts,
		walletLocks: newKeyedMutex(),
		now:         time.Now,
	}
}

// RegisterUser assigns the next counter-derived ID, appends the user row
// and a zero-balance wallet row, and persists both. Registration is
// serialized so the counter is a single authority and IDs stay unique.
func (s *ticketingService) RegisterUser(ctx context.Context, firstName string, role models.Role, phone, busStop string) (string, error) {
	tracer := otel.Tracer("ticketing-service")
	ctx, span := tracer.Start(ctx, "RegisterUser")
	defer span.End()

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user count failed")
		slog.Error("failed to count users", "error", err)
		return "", fmt.Errorf("%w: failed to count users", pkgerrors.ErrInternal)
	}

	userID := fmt.Sprintf("%s%04d", strings.ToLower(firstName), count+1)

	user := &models.User{
		ID:        userID,
		FirstName: firstName,
		Role:      role,
		Phone:     phone,
		BusStop:   busStop,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user creation failed")
		slog.Error("failed to create user", "user_id", userID, "error", err)
		return "", fmt.Errorf("%w: failed to create user", pkgerrors.ErrInternal)
	}
	if err := s.walletRepo.Create(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "wallet creation failed")
		slog.Error("failed to create wallet", "user_id", userID, "error", err)
		return "", fmt.Errorf("%w: failed to create wallet", pkgerrors.ErrInternal)
	}

	observability.RegistrationsTotal.Inc()
	slog.Info("user registered",
		"user_id", userID,
		"role", string(role),
		"bus_stop", busStop)
	return userID, nil
}

// LoadWallet credits the user's wallet. The funding method is display-only
// and is carried through for the success message and logs.
func (s *ticketingService) LoadWallet(ctx context.Context, userID string, method models.FundingMethod, amount decimal.Decimal) (decimal.Decimal, error) {
	tracer := otel.Tracer("ticketing-service")
	ctx, span := tracer.Start(ctx, "LoadWallet")
	defer span.End()

	if amount.LessThanOrEqual(decimal.Zero) {
		span.SetStatus(codes.Error, "non-positive amount")
		slog.Warn("rejected wallet funding", "user_id", userID, "amount", amount.String())
		return decimal.Zero, pkgerrors.ErrInvalidAmount
	}

	unlock := s.walletLocks.Lock(userID)
	defer unlock()

	newBalance, err := s.walletRepo.Credit(ctx, userID, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "credit failed")
		slog.Error("failed to credit wallet", "user_id", userID, "amount", amount.String(), "error", err)
		return decimal.Zero, err
	}

	observability.WalletCreditsTotal.WithLabelValues(string(method)).Inc()
	slog.Info("wallet loaded",
		"user_id", userID,
		"amount", amount.String(),
		"method", string(method),
		"balance", newBalance.String())
	return newBalance, nil
}

// PurchaseTicket checks the buyer's balance against the fixed fare, debits
// the wallet, appends the ticket row, and renders the QR receipt. The
// balance check and debit run under the buyer's wallet lock so concurrent
// purchases cannot over-debit.
func (s *ticketingService) PurchaseTicket(ctx context.Context, buyerID string, ticketType models.TicketType, terminal string) (*models.Ticket, error) {
	tracer := otel.Tracer("ticketing-service")
	ctx, span := tracer.Start(ctx, "PurchaseTicket")
	defer span.End()

	price := ticketType.Price()
	if price.IsZero() {
		span.SetStatus(codes.Error, "unknown ticket type")
		return nil, pkgerrors.ErrInvalidTicketType
	}

	unlock := s.walletLocks.Lock(buyerID)
	defer unlock()

	balance, err := s.walletRepo.GetBalance(ctx, buyerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "balance lookup failed")
		slog.Error("failed to get balance", "user_id", buyerID, "error", err)
		return nil, err
	}
	if balance.LessThan(price) {
		observability.InsufficientFundsTotal.Inc()
		span.SetStatus(codes.Error, "insufficient funds")
		slog.Warn("purchase rejected",
			"user_id", buyerID,
			"ticket_type", string(ticketType),
			"balance", balance.String(),
			"price", price.String())
		return nil, pkgerrors.ErrInsufficientFunds
	}

	now := s.now()
	ticket := &models.Ticket{
		ID:         fmt.Sprintf("TKT-%d", now.Unix()),
		BuyerID:    buyerID,
		Type:       ticketType,
		Amount:     price,
		IssueTime:  now,
		ExpiryTime: ticketType.ExpiryFrom(now),
		Terminal:   terminal,
	}

	qrPath, err := s.receipts.Generate(ticket)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "receipt generation failed")
		slog.Error("failed to generate receipt", "ticket_id", ticket.ID, "error", err)
		return nil, fmt.Errorf("%w: failed to generate receipt", pkgerrors.ErrInternal)
	}
	ticket.QRPath = qrPath

	newBalance, err := s.walletRepo.Debit(ctx, buyerID, price)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "debit failed")
		slog.Error("failed to debit wallet", "user_id", buyerID, "error", err)
		return nil, err
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ticket creation failed")
		slog.Error("failed to persist ticket", "ticket_id", ticket.ID, "error", err)
		return nil, fmt.Errorf("%w: failed to persist ticket", pkgerrors.ErrInternal)
	}

	observability.TicketsIssuedTotal.WithLabelValues(string(ticketType)).Inc()
	slog.Info("ticket issued",
		"ticket_id", ticket.ID,
		"user_id", buyerID,
		"ticket_type", string(ticketType),
		"amount", price.String(),
		"expiry", ticket.ExpiryTime.Format(time.RFC3339),
		"balance", newBalance.String())
	return ticket, nil
}

func (s *ticketingService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	tracer := otel.Tracer("ticketing-service")
	ctx, span := tracer.Start(ctx, "GetBalance")
	defer span.End()

	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to get balance", "user_id", userID, "error", err)
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// ListUserIDs feeds the user dropdowns on the wallet and ticket screens.
// The wallet table drives the list, matching the screens' source of truth.
func (s *ticketingService) ListUserIDs(ctx context.Context) ([]string, error) {
	wallets, err := s.walletRepo.List(ctx)
	if err != nil {
		slog.Error("failed to list wallets", "error", err)
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	ids := make([]string, 0, len(wallets))
	for _, w := range wallets {
		ids = append(ids, w.UserID)
	}
	return ids, nil
}

func (s *ticketingService) GetTicketHistory(ctx context.Context, buyerID string) ([]models.Ticket, error) {
	tracer := otel.Tracer("ticketing-service")
	ctx, span := tracer.Start(ctx, "GetTicketHistory")
	defer span.End()

	tickets, err := s.ticketRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to get ticket history", "user_id", buyerID, "error", err)
		return nil, err
	}
	return tickets, nil
}
