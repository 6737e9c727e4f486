package command

import (
	"regexp"
	"strconv"

	"go-baki-pos/internal/model"
)

// Patterns are tried in this order; the first hit wins.
var (
	creditRe  = regexp.MustCompile(`(?i)(\w+)\s+(\d+)\s+taka\s+baki`)
	paymentRe = regexp.MustCompile(`(?i)(\w+)\s+(\d+)\s+taka\s+(dilo|payment|paid)`)
	saleRe    = regexp.MustCompile(`(?i)(\w+)\s+(\d+)\s+(kg|liter|piece)\s+(bikri|sale)`)
	stockRe   = regexp.MustCompile(`(?i)(\w+)\s+(\d+)\s+(kg|liter|piece)\s+(stock|ashlo)`)
	priceRe   = regexp.MustCompile(`(?i)(\d+)\s+taka`)
)

// Classify never fails: anything that matches no pattern is Unclassified.
func Classify(utterance string) Command {
	if m := creditRe.FindStringSubmatch(utterance); m != nil {
		return CreditGrant{Raw: utterance, Customer: m[1], Amount: parseAmount(m[2])}
	}
	if m := paymentRe.FindStringSubmatch(utterance); m != nil {
		return Payment{Raw: utterance, Customer: m[1], Amount: parseAmount(m[2])}
	}
	if m := saleRe.FindStringSubmatch(utterance); m != nil {
		var total int64
		if p := priceRe.FindStringSubmatch(utterance); p != nil {
			total = parseAmount(p[1])
		}
		return CashSale{
			Raw:      utterance,
			Product:  m[1],
			Quantity: parseQuantity(m[2]),
			Unit:     model.ParseUnit(m[3]),
			Amount:   total,
		}
	}
	if m := stockRe.FindStringSubmatch(utterance); m != nil {
		return StockIn{
			Raw:      utterance,
			Product:  m[1],
			Quantity: parseQuantity(m[2]),
			Unit:     model.ParseUnit(m[3]),
		}
	}
	return Unclassified{Raw: utterance}
}

// The patterns only capture digit runs, so the only possible failure is an
// out-of-range value, which strconv already clamps to the int64 limit.
func parseAmount(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// MaxQuantity bounds a spoken quantity. ParseFloat turns very long digit runs
// into +Inf, which would poison stock levels and break JSON encoding.
const MaxQuantity = 1e9

func parseQuantity(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f > MaxQuantity {
		return MaxQuantity
	}
	return f
}
