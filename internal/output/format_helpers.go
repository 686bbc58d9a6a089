package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/paystruct/salary-breakdown/pkg/decimal"
)

// FormatCurrency formats an amount with 2 decimals, prefixed by the currency code or symbol.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).Format(currency)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
