package receipt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gusau-brt/ticketing-service/internal/models"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

func testTicket() *models.Ticket {
	issued := time.Date(2024, 3, 15, 14, 37, 9, 0, time.UTC)
	return &models.Ticket{
		ID:         "TKT-1710513429",
		BuyerID:    "ada0001",
		Type:       models.TicketSingleRide,
		Amount:     models.TicketSingleRide.Price(),
		IssueTime:  issued,
		ExpiryTime: issued.Add(30 * time.Minute),
	}
}

func TestPayload(t *testing.T) {
	payload := Payload(testTicket())
	assert.Contains(t, payload, "TicketID:TKT-1710513429")
	assert.Contains(t, payload, "User:ada0001")
	assert.Contains(t, payload, "Type:Single Ride – ₦200")
	assert.Contains(t, payload, "Expiry:2024-03-15T15:07:09Z")
}

func TestGenerateWritesPNG(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewPNGGenerator(dir)
	require.NoError(t, err)

	ticket := testTicket()
	path, err := gen.Generate(ticket)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "TKT-1710513429.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestGenerateNilTicket(t *testing.T) {
	gen, err := NewPNGGenerator(t.TempDir())
	require.NoError(t, err)

	_, err = gen.Generate(nil)
	assert.ErrorIs(t, err, pkgerrors.ErrNilTicket)
}
