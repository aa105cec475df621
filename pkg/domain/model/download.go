package model

import "path/filepath"

// ArtifactExt is the file extension of the downloaded package.
const ArtifactExt = ".vsix"

// DownloadRequest is the input of one pipeline run, built once from CLI
// input and read-only afterwards.
type DownloadRequest struct {
	Ref              *ExtensionRef
	Version          string // explicit version, empty to resolve the latest
	Directory        string
	SkipVersionCheck bool
}

// DownloadTarget is one candidate URL for the package payload. Targets are
// generated in priority order (platform-specific before universal) and
// consumed one at a time.
type DownloadTarget struct {
	URL         string
	Destination string // final artifact path
	Description string
}

// TempPath returns the sibling temporary file the payload is streamed into
// before validation and the atomic rename commit.
func (x DownloadTarget) TempPath() string {
	return x.Destination + ".tmp"
}

// DownloadResult is the terminal outcome of a successful pipeline run. A
// file at Path is guaranteed complete and validated.
type DownloadResult struct {
	Path        string
	Size        int64
	Version     string // version label used in the filename
	Description string // description of the target that succeeded
}

// ArtifactName returns the output filename, which is identical for every
// candidate URL of a run: {publisher}.{name}-{label}.vsix
func ArtifactName(ref *ExtensionRef, label string) string {
	return ref.Publisher + "." + ref.Name + "-" + label + ArtifactExt
}

// ArtifactPath returns the final destination path under dir.
func ArtifactPath(dir string, ref *ExtensionRef, label string) string {
	return filepath.Join(dir, ArtifactName(ref, label))
}
