package license

import (
	"errors"
	"os"

	"github.com/pocketpos/backend/internal/domain/license"
	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/pocketpos/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Manager owns the feature-flag document and applies offline unlock codes
// to it. It sits entirely outside the sales path; the core never branches
// on license state.
type Manager struct {
	res *persistence.Resource[license.Flags]
	log *zap.Logger
}

// NewManager creates a manager over the given flags document resource.
func NewManager(res *persistence.Resource[license.Flags], log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{res: res, log: log}
}

// LoadFlags reads the flags document. A missing or corrupt document yields
// the all-locked defaults, unknown keys are dropped, and missing keys
// default to false. Whenever the stored form differs from the canonical
// one (first run, partial or hand-edited document), the canonical form is
// rewritten in place.
func (m *Manager) LoadFlags() license.Flags {
	flags := m.res.Load(license.DefaultFlags())
	if !m.res.IsCanonical(flags) {
		if err := m.res.Save(flags); err != nil {
			m.log.Warn("flags self-heal write failed", zap.Error(err))
		}
	}
	return flags
}

// UnlockFromCode applies one unlock code. Unknown codes fail with
// ErrInvalidUnlockCode and leave the flags unchanged; known codes enable
// the mapped features (never disabling any) and persist. The resulting
// flags are returned in both cases.
func (m *Manager) UnlockFromCode(code string) (license.Flags, error) {
	flags := m.LoadFlags()

	features, err := license.DecodeCode(code)
	if err != nil {
		return flags, err
	}

	for _, feature := range features {
		flags.Enable(feature)
	}
	if err := m.res.Save(flags); err != nil {
		m.log.Warn("flags write failed after unlock", zap.Error(err))
	}
	m.log.Info("features unlocked", zap.String("summary", flags.Summary()))
	return flags, nil
}

// UnlockFromFile applies every code token found in a license file. The file
// content is split on commas and line breaks into trimmed non-empty tokens;
// invalid tokens are silently skipped. Success means at least one token
// unlocked something. An absent file fails with ErrLicenseFileNotFound and
// a file with no valid tokens with ErrNoValidCodes.
func (m *Manager) UnlockFromFile(path string) (license.Flags, error) {
	content, err := persistence.ReadText(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.LoadFlags(), shared.ErrLicenseFileNotFound
		}
		m.log.Warn("license file unreadable", zap.String("path", path), zap.Error(err))
		return m.LoadFlags(), shared.ErrLicenseFileNotFound
	}

	unlocked := false
	flags := m.LoadFlags()
	for _, token := range license.SplitTokens(content) {
		result, err := m.UnlockFromCode(token)
		if err != nil {
			continue
		}
		flags = result
		unlocked = true
	}

	if !unlocked {
		return flags, shared.ErrNoValidCodes
	}
	return flags, nil
}

// UnlockedSummary returns the human-readable unlocked-features line for the
// current flags.
func (m *Manager) UnlockedSummary() string {
	return m.LoadFlags().Summary()
}
