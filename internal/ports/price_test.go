package ports

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want Price
		ok   bool
	}{
		{"59.99", 5999, true},
		{"20", 2000, true},
		{"0.5", 50, true},
		{"0.29", 29, true},
		{"19.995", 2000, true},
		{"-1.25", -125, true},
		{"", 0, false},
		{"abc", 0, false},
		{"999999999.99", MaxPrice, true},
		{"-999999999.99", -MaxPrice, true},
		{"1000000000", 0, false},
		{"1e17", 0, false},
		{"-1e30", 0, false},
	}
	for _, c := range cases {
		got, err := ParsePrice(c.in)
		if c.ok && err != nil {
			t.Fatalf("ParsePrice(%q): unexpected error %v", c.in, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("ParsePrice(%q): expected error", c.in)
			}
			continue
		}
		if got != c.want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParsePriceRangeIsValidationError(t *testing.T) {
	_, err := ParsePrice("92233720368547758")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "price" || verr.Message != "Price cannot exceed 999999999.99" {
		t.Fatalf("unexpected error %+v", verr)
	}
}

func TestPriceJSON(t *testing.T) {
	var v struct {
		Price Price `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price":39.99}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Price != 3999 {
		t.Fatalf("want 3999, got %d", v.Price)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"price":39.99}` {
		t.Fatalf("unexpected json %s", b)
	}
	if Price(-5).String() != "-0.05" {
		t.Fatalf("unexpected negative format %s", Price(-5).String())
	}
}
