package currency

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Converter turns supplier EUR amounts into whole DZD at a fixed configured
// rate. DZD has no minor unit in this system's usage, so amounts are plain
// integers and formatting carries zero decimals.
type Converter struct {
	rate    float64
	printer *message.Printer
}

// NewConverter builds a converter for the given rate and display locale
// (BCP 47, e.g. "fr"). The rate is configuration, not a constant, so
// repricing does not need a deploy of new code paths.
func NewConverter(rate float64, locale string) (*Converter, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("conversion rate must be positive, got %v", rate)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse display locale %q: %w", locale, err)
	}
	return &Converter{rate: rate, printer: message.NewPrinter(tag)}, nil
}

// ToMinorUnits converts a EUR amount to whole DZD, rounding halves to the
// nearest integer.
func (c *Converter) ToMinorUnits(eur float64) int64 {
	return int64(math.Round(eur * c.rate))
}

// ConvertTotal converts a supplier decimal price string such as "200.00".
func (c *Converter) ConvertTotal(total string) (int64, error) {
	eur, err := strconv.ParseFloat(total, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price total %q: %w", total, err)
	}
	return c.ToMinorUnits(eur), nil
}

// Format renders a DZD amount with locale digit grouping and no decimals,
// e.g. "30 000 DZD" under a French locale.
func (c *Converter) Format(amount int64) string {
	return c.printer.Sprintf("%v DZD", number.Decimal(amount, number.MaxFractionDigits(0)))
}
