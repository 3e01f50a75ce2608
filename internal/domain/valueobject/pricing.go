// Package valueobject defines immutable domain values and rule tables.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BulkRule prices a product by the dozen: every complete case of
// CaseSize units costs the flat CaseRate and the remainder is charged
// at the unit price. It only applies to whole-number quantities.
type BulkRule struct {
	CaseSize int
	CaseRate decimal.Decimal
}

// PricingTable maps a product name key to its bulk pricing rule.
// Products without a rule are priced flat at unitPrice×quantity.
type PricingTable map[string]BulkRule

// DefaultPricingTable holds the bulk-discounted products. The keys
// are the catalog names, upper-cased and trimmed.
func DefaultPricingTable() PricingTable {
	dozen := BulkRule{CaseSize: 12, CaseRate: decimal.NewFromInt(1000)}
	return PricingTable{
		"RULAMIT": dozen,
		"VAROSET": dozen,
	}
}

// pricingKey mirrors how the rule table is keyed: a plain trimmed
// upper-case, not the locale fold used elsewhere.
func pricingKey(productName string) string {
	return strings.ToUpper(strings.TrimSpace(productName))
}

// Total computes the stored price for a quantity of the named product.
// Quantities of zero or less fall back to the bare unit price, which
// matches how the entry forms treat a missing quantity.
func (t PricingTable) Total(productName string, quantity, unitPrice decimal.Decimal) decimal.Decimal {
	if quantity.Sign() <= 0 {
		return unitPrice
	}
	rule, ok := t[pricingKey(productName)]
	if ok && quantity.IsInteger() {
		caseSize := decimal.NewFromInt(int64(rule.CaseSize))
		fullCases := quantity.Div(caseSize).Floor()
		remainder := quantity.Sub(fullCases.Mul(caseSize))
		return fullCases.Mul(rule.CaseRate).Add(remainder.Mul(unitPrice))
	}
	return unitPrice.Mul(quantity)
}
