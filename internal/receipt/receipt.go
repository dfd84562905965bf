// Package receipt renders the scannable receipt issued with every ticket:
// a QR code encoding the ticket's identifying metadata, written as one PNG
// per ticket named after the ticket ID.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/gusau-brt/ticketing-service/internal/models"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

const qrSize = 256

type PNGGenerator struct {
	dir string
}

func NewPNGGenerator(dir string) (*PNGGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create QR dir %s: %w", dir, err)
	}
	return &PNGGenerator{dir: dir}, nil
}

// Payload is the text block encoded in the QR image.
func Payload(t *models.Ticket) string {
	return fmt.Sprintf("TicketID:%s\nUser:%s\nType:%s\nExpiry:%s",
		t.ID, t.BuyerID, t.Type.Label(), t.ExpiryTime.Format(time.RFC3339))
}

// Generate writes the receipt image and returns its path.
func (g *PNGGenerator) Generate(t *models.Ticket) (string, error) {
	if t == nil {
		return "", pkgerrors.ErrNilTicket
	}
	path := filepath.Join(g.dir, t.ID+".png")
	if err := qrcode.WriteFile(Payload(t), qrcode.Medium, qrSize, path); err != nil {
		return "", fmt.Errorf("failed to write receipt for %s: %w", t.ID, err)
	}
	return path, nil
}
