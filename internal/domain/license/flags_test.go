package license

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFlags(t *testing.T) {
	flags := DefaultFlags()

	for _, feature := range AllFeatures() {
		assert.False(t, flags.Enabled(feature), feature.String())
	}
}

func TestFlags_Enable(t *testing.T) {
	flags := DefaultFlags()

	flags.Enable(FeaturePayments)
	flags.Enable(FeatureScanner)

	assert.True(t, flags.Enabled(FeaturePayments))
	assert.True(t, flags.Enabled(FeatureScanner))
	assert.False(t, flags.Enabled(FeatureImpExp))
	assert.False(t, flags.Enabled(FeatureReports))

	// Unknown features are ignored.
	flags.Enable(Feature("turbo"))
	assert.False(t, flags.Enabled(Feature("turbo")))
}

func TestFlags_Summary(t *testing.T) {
	flags := DefaultFlags()
	assert.Equal(t, "Unlocked: none", flags.Summary())

	flags.Enable(FeaturePayments)
	flags.Enable(FeatureReports)
	assert.Equal(t, "Unlocked: payments, reports", flags.Summary())
}

func TestFlags_UnmarshalDropsUnknownKeys(t *testing.T) {
	// Unknown keys from a hand-edited document are dropped, missing keys
	// default to false.
	var flags Flags
	err := json.Unmarshal([]byte(`{"payments": true, "turbo": true}`), &flags)

	require.NoError(t, err)
	assert.True(t, flags.Payments)
	assert.False(t, flags.ImpExp)
	assert.False(t, flags.Reports)
	assert.False(t, flags.Scanner)
}

func TestFeature_IsValid(t *testing.T) {
	for _, feature := range AllFeatures() {
		assert.True(t, feature.IsValid(), feature.String())
	}
	assert.False(t, Feature("turbo").IsValid())
}
