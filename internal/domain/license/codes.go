package license

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketpos/backend/internal/domain/shared"
)

// Unlock-code key prefixes. The part of a code before the first '-' is
// matched against this set; anything after it is an opaque suffix.
const (
	KeyProAll    = "PRO_ALL"
	KeyProPay    = "PRO_PAY"
	KeyProImpExp = "PRO_IMPEXP"
	KeyProReport = "PRO_REPORT"
	KeyProScan   = "PRO_SCAN"
)

// unlockTable maps each code key to the features it enables.
var unlockTable = map[string][]Feature{
	KeyProAll:    {FeaturePayments, FeatureImpExp, FeatureReports, FeatureScanner},
	KeyProPay:    {FeaturePayments},
	KeyProImpExp: {FeatureImpExp},
	KeyProReport: {FeatureReports},
	KeyProScan:   {FeatureScanner},
}

// NormalizeCode trims surrounding whitespace and upper-cases a raw code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DecodeCode resolves a raw unlock code to the features it enables. The code
// is normalized, then the substring before the first '-' is looked up in the
// fixed key table. Unknown keys fail with ErrInvalidUnlockCode.
func DecodeCode(code string) ([]Feature, error) {
	key, _, _ := strings.Cut(NormalizeCode(code), "-")
	features, ok := unlockTable[key]
	if !ok {
		return nil, shared.ErrInvalidUnlockCode
	}
	return features, nil
}

// SplitTokens splits license-file content on commas and line breaks into
// trimmed, non-empty tokens.
func SplitTokens(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, ",", "\n"), "\n")
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// GenerateCode produces a distributable code for the given key, e.g.
// "PRO_PAY-9XK7". The suffix carries no meaning; only the key is verified.
func GenerateCode(key string) (string, error) {
	if _, ok := unlockTable[key]; !ok {
		return "", shared.ErrInvalidUnlockCode
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return key + "-" + suffix, nil
}
