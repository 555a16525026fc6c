package transaction_test

import (
	"testing"

	"Spendly/internal/domain/transaction"
)

func TestNormalizeMerchant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase is uppercased", in: "swiggy", want: "SWIGGY"},
		{name: "punctuation dropped", in: "Swiggy*Order-123", want: "SWIGGYORDER123"},
		{name: "whitespace collapsed", in: "  AMAZON   PAY  ", want: "AMAZON PAY"},
		{name: "tabs and newlines collapse too", in: "UBER\t\nINDIA", want: "UBER INDIA"},
		{name: "form feed and vertical tab separate words", in: "UBER\fEATS\vINDIA", want: "UBER EATS INDIA"},
		{name: "non-breaking space separates words", in: "UBER\u00a0EATS", want: "UBER EATS"},
		{name: "non-ascii dropped", in: "CAFÉ COFFEE", want: "CAF COFFEE"},
		{name: "digits kept", in: "store 24x7", want: "STORE 24X7"},
		{name: "empty stays empty", in: "", want: ""},
		{name: "only symbols becomes empty", in: "***---***", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := transaction.NormalizeMerchant(tt.in)
			if got != tt.want {
				t.Fatalf("NormalizeMerchant(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeMerchantIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Swiggy*Order-123", "  AMAZON   PAY  ", "UPI/P2M/324123/PhonePe"}
	for _, in := range inputs {
		once := transaction.NormalizeMerchant(in)
		twice := transaction.NormalizeMerchant(once)
		if once != twice {
			t.Fatalf("normalization not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
