package discovery

import (
	"strings"
	"time"

	"github.com/thoreinstein/edfind/internal/errors"
)

// Tier selects how thorough a discovery run is.
type Tier string

const (
	Fast          Tier = "fast"
	Comprehensive Tier = "comprehensive"
	Smart         Tier = "smart"
)

// DefaultTier is used when no tier is configured.
const DefaultTier = Comprehensive

// ErrUnknownTier is returned by ParseTier for unrecognized names.
var ErrUnknownTier = errors.New("unknown discovery tier")

// Tiers returns every tier from fastest to most thorough.
func Tiers() []Tier {
	return []Tier{Fast, Comprehensive, Smart}
}

// ParseTier parses a tier name, case-insensitively. An empty name yields
// DefaultTier.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTier, nil
	}
	for _, t := range Tiers() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownTier, "%q (want fast, comprehensive or smart)", s)
}

// Budget is the nominal time bound of a whole discovery batch.
func (t Tier) Budget() time.Duration {
	switch t {
	case Fast:
		return 5 * time.Second
	case Smart:
		return 30 * time.Second
	default:
		return 15 * time.Second
	}
}

// scansApplications reports whether the tier uses application services.
func (t Tier) scansApplications() bool {
	return t == Comprehensive || t == Smart
}
