package models

import (
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

type TicketType string

const (
	TicketSingleRide  TicketType = "Single Ride"
	TicketDailyPass   TicketType = "Daily Pass"
	TicketMonthlyPass TicketType = "Monthly Pass"
)

func TicketTypes() []TicketType {
	return []TicketType{TicketSingleRide, TicketDailyPass, TicketMonthlyPass}
}

// Label is the form the ticket type takes in the Buy Ticket screen,
// e.g. "Single Ride – ₦200".
func (t TicketType) Label() string {
	switch t {
	case TicketSingleRide:
		return "Single Ride – ₦200"
	case TicketDailyPass:
		return "Daily Pass – ₦700"
	case TicketMonthlyPass:
		return "Monthly Pass – ₦15,000"
	}
	return string(t)
}

// ParseTicketType accepts both the bare type name and the priced label
// rendered in the purchase form.
func ParseTicketType(s string) (TicketType, error) {
	for _, t := range TicketTypes() {
		if s == string(t) || s == t.Label() {
			return t, nil
		}
	}
	return "", pkgerrors.ErrInvalidTicketType
}

// Price returns the fixed fare for the ticket type in naira.
func (t TicketType) Price() decimal.Decimal {
	switch t {
	case TicketSingleRide:
		return decimal.NewFromInt(200)
	case TicketDailyPass:
		return decimal.NewFromInt(700)
	case TicketMonthlyPass:
		return decimal.NewFromInt(15000)
	}
	return decimal.Zero
}

// ExpiryFrom derives the validity deadline for a ticket issued at now.
// A Daily Pass expires at 00:00:00 of the calendar day after issuance,
// not 24 hours after purchase.
func (t TicketType) ExpiryFrom(now time.Time) time.Time {
	switch t {
	case TicketSingleRide:
		return now.Add(30 * time.Minute)
	case TicketDailyPass:
		next := now.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
	case TicketMonthlyPass:
		return now.Add(30 * 24 * time.Hour)
	}
	return now
}

// Ticket is a purchase record. Rows are immutable after issuance; there is
// no redemption flow, so ExpiryTime is informational only.
type Ticket struct {
	ID         string
	BuyerID    string
	Type       TicketType
	Amount     decimal.Decimal
	IssueTime  time.Time
	ExpiryTime time.Time
	Terminal   string
	QRPath     string
}
