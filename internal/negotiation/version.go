package negotiation

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Negotiator gates SDK clients on a minimum version.
type Negotiator struct {
	minVersion string
}

// NewNegotiator creates a Negotiator. An empty minVersion accepts any
// well-formed version.
func NewNegotiator(minVersion string) *Negotiator {
	return &Negotiator{minVersion: minVersion}
}

// MinVersion returns the configured minimum SDK version.
func (n *Negotiator) MinVersion() string {
	return n.minVersion
}

// Check validates the client's version against the minimum.
// Returns *VersionError when the version is not semver or is too old.
func (n *Negotiator) Check(client *ClientContext) error {
	cv := normalizeVersion(client.Version)
	if !semver.IsValid(cv) {
		return &VersionError{
			Code:          SDKClientRequired,
			Message:       fmt.Sprintf("SDK version %q is not a semantic version", client.Version),
			ClientVersion: client.Version,
			MinVersion:    n.minVersion,
		}
	}

	if n.minVersion == "" {
		return nil
	}

	if semver.Compare(cv, normalizeVersion(n.minVersion)) < 0 {
		return &VersionError{
			Code:          SDKVersionUnsupported,
			Message:       fmt.Sprintf("SDK version %s is below minimum supported version %s", client.Version, n.minVersion),
			ClientVersion: client.Version,
			MinVersion:    n.minVersion,
		}
	}

	return nil
}

// VersionError is returned when a client's SDK version is rejected.
type VersionError struct {
	Code          string
	Message       string
	ClientVersion string
	MinVersion    string
}

func (e *VersionError) Error() string {
	return e.Message
}

// normalizeVersion adds "v" prefix if needed for semver parsing.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
