package valueobject

import "github.com/honey-ledger/backend/internal/domain/textnorm"

// LedgerMode selects the shape of a supplier's right-hand page: cash
// payments, or quantities of material given back in kind.
type LedgerMode string

const (
	LedgerModePayments      LedgerMode = "payments"
	LedgerModeMaterialGiven LedgerMode = "materialGiven"
)

// LedgerModeTable maps a diacritic-folded supplier name to its ledger
// mode. Suppliers not in the table use the payments mode.
type LedgerModeTable map[string]LedgerMode

// DefaultLedgerModeTable returns the supplier special cases. The comb
// foundation supplier is settled in returned wax, not cash.
func DefaultLedgerModeTable() LedgerModeTable {
	return LedgerModeTable{
		"bincag petek": LedgerModeMaterialGiven,
	}
}

// ModeFor resolves the ledger mode for a supplier name. Matching is
// on the folded key so spelling and casing variants agree.
func (t LedgerModeTable) ModeFor(supplierName string) LedgerMode {
	if mode, ok := t[textnorm.FoldKey(supplierName)]; ok {
		return mode
	}
	return LedgerModePayments
}
