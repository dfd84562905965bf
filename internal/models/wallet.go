package models

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

// Wallet holds the stored balance for one user. Exactly one wallet exists
// per registered user, created with a zero balance at registration.
type Wallet struct {
	UserID  string
	Balance decimal.Decimal
}

// FundingMethod is display-only: it is echoed in the success message and
// logs but never validated against an external payment channel.
type FundingMethod string

const (
	FundingUSSD         FundingMethod = "USSD"
	FundingBankTransfer FundingMethod = "Bank Transfer"
	FundingCreditUnit   FundingMethod = "Credit Unit"
)

func FundingMethods() []FundingMethod {
	return []FundingMethod{FundingUSSD, FundingBankTransfer, FundingCreditUnit}
}

func ParseFundingMethod(s string) (FundingMethod, error) {
	for _, m := range FundingMethods() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", pkgerrors.ErrInvalidInput
}
