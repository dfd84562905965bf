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

type CSVTicketRepository struct {
	path    string
	mu      sync.RWMutex
	tickets []models.Ticket
}

func NewCSVTicketRepository(path string) (*CSVTicketRepository, error) {
	if err := EnsureTable(path, TicketColumns); err != nil {
		return nil, err
	}
	_, rows, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	tickets := make([]models.Ticket, 0, len(rows))
	for _, row := range rows {
		t, err := ticketFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("malformed ticket row in %s: %w", path, err)
		}
		tickets = append(tickets, t)
	}
	return &CSVTicketRepository{path: path, tickets: tickets}, nil
}

func (r *CSVTicketRepository) Create(ctx context.Context, ticket *models.Ticket) (err error) {
	start := time.Now()
	defer func() { observe("tickets.create", start, err) }()

	if ticket == nil {
		return pkgerrors.ErrNilTicket
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, *ticket)
	if err = r.saveLocked(); err != nil {
		r.tickets = r.tickets[:len(r.tickets)-1]
		return fmt.Errorf("failed to persist ticket %s: %w", ticket.ID, err)
	}
	return nil
}

func (r *CSVTicketRepository) ListByBuyer(ctx context.Context, buyerID string) ([]models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Ticket
	for _, t := range r.tickets {
		if t.BuyerID == buyerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *CSVTicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

func (r *CSVTicketRepository) saveLocked() error {
	rows := make([][]string, 0, len(r.tickets))
	for _, t := range r.tickets {
		rows = append(rows, []string{
			t.ID,
			t.BuyerID,
			string(t.Type),
			t.Amount.String(),
			t.IssueTime.Format(time.RFC3339Nano),
			t.ExpiryTime.Format(time.RFC3339Nano),
			t.Terminal,
			t.QRPath,
		})
	}
	return SaveTable(r.path, TicketColumns, rows)
}

func ticketFromRow(row []string) (models.Ticket, error) {
	if len(row) != len(TicketColumns) {
		return models.Ticket{}, fmt.Errorf("expected %d columns, got %d", len(TicketColumns), len(row))
	}
	amount, err := decimal.NewFromString(row[3])
	if err != nil {
		return models.Ticket{}, fmt.Errorf("bad amount: %w", err)
	}
	issued, err := time.Parse(time.RFC3339Nano, row[4])
	if err != nil {
		return models.Ticket{}, fmt.Errorf("bad issue_time: %w", err)
	}
	expiry, err := time.Parse(time.RFC3339Nano, row[5])
	if err != nil {
		return models.Ticket{}, fmt.Errorf("bad expiry_time: %w", err)
	}
	return models.Ticket{
		ID:         row[0],
		BuyerID:    row[1],
		Type:       models.TicketType(row[2]),
		Amount:     amount,
		IssueTime:  issued,
		ExpiryTime: expiry,
		Terminal:   row[6],
		QRPath:     row[7],
	}, nil
}
