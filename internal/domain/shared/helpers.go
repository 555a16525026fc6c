package shared

import (
	"strings"
)

// IsUniqueConstraintError reports whether err looks like a postgres unique
// violation. Used by the user get-or-create path and the batch transaction
// save, which both treat "already there" as a normal outcome.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "violates unique constraint") ||
		strings.Contains(errStr, "idx_users_device_id") ||
		strings.Contains(errStr, "idx_transactions_fingerprint") ||
		strings.Contains(errStr, "idx_merchant_mappings_pattern")
}
