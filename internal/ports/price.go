package ports

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a decimal amount with two fractional digits, held in minor units (cents).
type Price int64

// MaxPrice bounds accepted prices in either direction.
const MaxPrice Price = 99_999_999_999

// PriceFromFloat rounds f half away from zero to two fractional digits.
// f must lie within MaxPrice; ParsePrice checks that.
func PriceFromFloat(f float64) Price {
	return Price(math.Round(f * 100))
}

// ParsePrice parses a decimal string such as "59.99" or "20".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if math.Abs(math.Round(f*100)) > float64(MaxPrice) {
		return 0, Invalid("price", "Price cannot exceed %s", MaxPrice)
	}
	return PriceFromFloat(f), nil
}

func (p Price) Float64() float64 { return float64(p) / 100 }

func (p Price) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the price as a JSON number with two fractional digits.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	v, err := ParsePrice(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
