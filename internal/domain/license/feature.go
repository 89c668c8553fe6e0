package license

// Feature identifies one gated capability
type Feature string

const (
	// FeaturePayments enables non-cash payment methods at checkout
	FeaturePayments Feature = "payments"
	// FeatureImpExp enables tabular inventory import/export
	FeatureImpExp Feature = "impexp"
	// FeatureReports enables sales reporting views
	FeatureReports Feature = "reports"
	// FeatureScanner enables barcode scanner input
	FeatureScanner Feature = "scanner"
)

// AllFeatures returns all valid features
func AllFeatures() []Feature {
	return []Feature{
		FeaturePayments,
		FeatureImpExp,
		FeatureReports,
		FeatureScanner,
	}
}

// IsValid checks if the feature is valid
func (f Feature) IsValid() bool {
	switch f {
	case FeaturePayments, FeatureImpExp, FeatureReports, FeatureScanner:
		return true
	default:
		return false
	}
}

// String returns the string representation of the feature
func (f Feature) String() string {
	return string(f)
}
