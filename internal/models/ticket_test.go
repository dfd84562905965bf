package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

func TestTicketTypePrices(t *testing.T) {
	assert.Equal(t, "200", TicketSingleRide.Price().String())
	assert.Equal(t, "700", TicketDailyPass.Price().String())
	assert.Equal(t, "15000", TicketMonthlyPass.Price().String())
}

func TestParseTicketType(t *testing.T) {
	t.Run("bare names", func(t *testing.T) {
		for _, want := range TicketTypes() {
			got, err := ParseTicketType(string(want))
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("priced labels", func(t *testing.T) {
		got, err := ParseTicketType("Single Ride – ₦200")
		assert.NoError(t, err)
		assert.Equal(t, TicketSingleRide, got)

		got, err = ParseTicketType("Monthly Pass – ₦15,000")
		assert.NoError(t, err)
		assert.Equal(t, TicketMonthlyPass, got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseTicketType("Weekly Pass")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidTicketType)
	})
}

func TestExpiryFrom(t *testing.T) {
	issued := time.Date(2024, 3, 15, 14, 37, 9, 0, time.UTC)

	t.Run("single ride is 30 minutes", func(t *testing.T) {
		assert.Equal(t, issued.Add(30*time.Minute), TicketSingleRide.ExpiryFrom(issued))
	})

	t.Run("monthly pass is 30 days", func(t *testing.T) {
		assert.Equal(t, issued.Add(30*24*time.Hour), TicketMonthlyPass.ExpiryFrom(issued))
	})

	t.Run("daily pass ends at next midnight", func(t *testing.T) {
		want := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, TicketDailyPass.ExpiryFrom(issued))
	})

	t.Run("daily pass bought just before midnight still ends at next midnight", func(t *testing.T) {
		lateNight := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
		want := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, TicketDailyPass.ExpiryFrom(lateNight))
	})

	t.Run("daily pass across month end", func(t *testing.T) {
		endOfMonth := time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC)
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, TicketDailyPass.ExpiryFrom(endOfMonth))
	})
}

func TestParseRole(t *testing.T) {
	got, err := ParseRole("Bus Conductor")
	assert.NoError(t, err)
	assert.Equal(t, RoleBusConductor, got)

	_, err = ParseRole("Driver")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidRole)
}

func TestParseFundingMethod(t *testing.T) {
	got, err := ParseFundingMethod("Bank Transfer")
	assert.NoError(t, err)
	assert.Equal(t, FundingBankTransfer, got)

	_, err = ParseFundingMethod("Cash")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidInput)
}
