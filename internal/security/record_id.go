package security

import (
	"fmt"
	"time"
)

const recordIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const recordIDSuffixLength = 6

// NewRecordID builds a record identifier of the form
// "<prefix>_<creation millis>_<random suffix>". The suffix keeps ids
// distinct even when two records are created within the same millisecond.
func NewRecordID(prefix string, now time.Time) (string, error) {
	suffix, err := RandomString(recordIDSuffixLength, recordIDAlphabet)
	if err != nil {
		return "", fmt.Errorf("record id suffix: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix), nil
}
