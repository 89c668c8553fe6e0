package license

import "strings"

// Flags holds the persisted unlock state, one boolean per feature. The key
// set is fixed: unknown keys in a stored document are dropped on load and
// missing keys default to false. Flags are monotonic, a feature only ever
// transitions from locked to unlocked.
type Flags struct {
	Payments bool `json:"payments"`
	ImpExp   bool `json:"impexp"`
	Reports  bool `json:"reports"`
	Scanner  bool `json:"scanner"`
}

// DefaultFlags returns the first-run state with every feature locked.
func DefaultFlags() Flags {
	return Flags{}
}

// Enabled reports whether the given feature is unlocked.
func (f Flags) Enabled(feature Feature) bool {
	switch feature {
	case FeaturePayments:
		return f.Payments
	case FeatureImpExp:
		return f.ImpExp
	case FeatureReports:
		return f.Reports
	case FeatureScanner:
		return f.Scanner
	default:
		return false
	}
}

// Enable unlocks the given feature. Unknown features are ignored.
func (f *Flags) Enable(feature Feature) {
	switch feature {
	case FeaturePayments:
		f.Payments = true
	case FeatureImpExp:
		f.ImpExp = true
	case FeatureReports:
		f.Reports = true
	case FeatureScanner:
		f.Scanner = true
	}
}

// EnabledFeatures returns the unlocked features in declaration order.
func (f Flags) EnabledFeatures() []Feature {
	enabled := make([]Feature, 0, 4)
	for _, feature := range AllFeatures() {
		if f.Enabled(feature) {
			enabled = append(enabled, feature)
		}
	}
	return enabled
}

// Summary returns a human-readable line of the unlocked features, e.g.
// "Unlocked: payments, reports" or "Unlocked: none".
func (f Flags) Summary() string {
	enabled := f.EnabledFeatures()
	if len(enabled) == 0 {
		return "Unlocked: none"
	}
	names := make([]string, len(enabled))
	for i, feature := range enabled {
		names[i] = feature.String()
	}
	return "Unlocked: " + strings.Join(names, ", ")
}
