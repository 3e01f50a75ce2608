package valueobject

import "github.com/shopspring/decimal"

// BalanceStatus labels which way a ledger book settles.
type BalanceStatus string

const (
	// BalanceOwedToOwner means the business owes the counterparty.
	BalanceOwedToOwner BalanceStatus = "owedToOwner"
	// BalanceOwedByOwner means the counterparty owes the business.
	BalanceOwedByOwner BalanceStatus = "owedByOwner"
	// BalanceSettled means the account is even.
	BalanceSettled BalanceStatus = "settled"
)

// Balance summarizes a two-sided ledger book. Net = Received − Given;
// positive means the business owes the counterparty.
type Balance struct {
	Received decimal.Decimal
	Given    decimal.Decimal
	Net      decimal.Decimal
	Status   BalanceStatus
}

// NewBalance computes a Balance from the two side totals.
func NewBalance(received, given decimal.Decimal) Balance {
	net := received.Sub(given)
	status := BalanceSettled
	switch {
	case net.Sign() > 0:
		status = BalanceOwedToOwner
	case net.Sign() < 0:
		status = BalanceOwedByOwner
	}
	return Balance{
		Received: received,
		Given:    given,
		Net:      net,
		Status:   status,
	}
}
