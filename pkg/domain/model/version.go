package model

// LatestLabel is the filename fallback used when no concrete version could
// be determined. It never appears as an API path segment on its own; the
// latest-package URL is a separate template.
const LatestLabel = "latest"

// VersionSpec captures how the target version was determined. Explicit is
// the version the caller supplied, Resolved is the newest version reported
// by the metadata endpoint. Both may be empty.
type VersionSpec struct {
	Explicit string
	Resolved string
}

// Label returns the version string embedded in the artifact filename.
func (x VersionSpec) Label() string {
	switch {
	case x.Explicit != "":
		return x.Explicit
	case x.Resolved != "":
		return x.Resolved
	default:
		return LatestLabel
	}
}

// PathSegment returns the version segment of the package download URL.
// A resolved version is advisory (filename only); the download path uses
// the latest-template unless the caller pinned a version explicitly.
func (x VersionSpec) PathSegment() string {
	if x.Explicit != "" {
		return x.Explicit
	}
	return LatestLabel
}
