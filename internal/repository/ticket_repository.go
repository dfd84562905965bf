package repository

import (
	"context"

	"github.com/gusau-brt/ticketing-service/internal/models"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	ListByBuyer(ctx context.Context, buyerID string) ([]models.Ticket, error)
	List(ctx context.Context) ([]models.Ticket, error)
}
