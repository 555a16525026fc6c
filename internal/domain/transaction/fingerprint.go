package transaction

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// FingerprintLength is the size of the deduplication key stored per
// transaction: the first 32 hex characters of a SHA-256 digest.
const FingerprintLength = 32

// Fingerprint derives the deduplication key from a transaction's defining
// fields. The timestamp is normalized to UTC so the same logical instant
// fingerprints identically regardless of the device's timezone offset, and
// the amount is rendered canonically (no trailing zeros) by decimal.String.
func Fingerprint(amount decimal.Decimal, typ Types, merchant string, timestamp time.Time) string {
	data := amount.String() + "|" + string(typ) + "|" + merchant + "|" + timestamp.UTC().Format(time.RFC3339Nano)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}
