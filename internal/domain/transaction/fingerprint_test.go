package transaction_test

import (
	"testing"
	"time"

	"Spendly/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(249.50)

	first := transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", ts)
	second := transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", ts)

	if first != second {
		t.Fatalf("same inputs produced different fingerprints: %s vs %s", first, second)
	}
	if len(first) != transaction.FingerprintLength {
		t.Fatalf("expected length %d, got %d", transaction.FingerprintLength, len(first))
	}
}

func TestFingerprintTimezoneInsensitive(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	utc := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	local := utc.In(ist)

	amount := decimal.NewFromInt(100)
	a := transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", utc)
	b := transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", local)

	if a != b {
		t.Fatalf("same instant in different zones fingerprinted differently: %s vs %s", a, b)
	}
}

func TestFingerprintFieldSensitivity(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	amount := decimal.NewFromInt(100)
	base := transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", ts)

	variants := map[string]string{
		"amount":    transaction.Fingerprint(decimal.NewFromInt(101), transaction.TypeDebit, "SWIGGY", ts),
		"type":      transaction.Fingerprint(amount, transaction.TypeCredit, "SWIGGY", ts),
		"merchant":  transaction.Fingerprint(amount, transaction.TypeDebit, "ZOMATO", ts),
		"timestamp": transaction.Fingerprint(amount, transaction.TypeDebit, "SWIGGY", ts.Add(time.Second)),
	}

	for field, got := range variants {
		if got == base {
			t.Fatalf("changing %s did not change the fingerprint", field)
		}
	}
}
