package gallery

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/vsixget/pkg/domain/model"
)

const (
	// DefaultBaseURL is the Visual Studio Marketplace gallery API root.
	DefaultBaseURL = "https://marketplace.visualstudio.com/_apis/public/gallery"

	// DefaultPlatform is the target platform tried before falling back to
	// the universal package.
	DefaultPlatform = "linux-x64"
)

// metadataURL is the version-metadata endpoint for an extension.
func metadataURL(base string, ref *model.ExtensionRef) string {
	return strings.TrimRight(base, "/") +
		"/publishers/" + url.PathEscape(ref.Publisher) +
		"/vsextensions/" + url.PathEscape(ref.Name)
}

// packageURL is the payload endpoint; segment is an explicit version or the
// latest-template segment.
func packageURL(base string, ref *model.ExtensionRef, segment string) string {
	return metadataURL(base, ref) + "/" + url.PathEscape(segment) + "/vspackage"
}

// Targets returns the candidate download URLs in priority order: the
// platform-qualified package first, then the universal package. Both share
// the same destination filename, so whichever succeeds commits to the same
// path.
func (x *Client) Targets(ref *model.ExtensionRef, ver model.VersionSpec, dir string) []model.DownloadTarget {
	dest := model.ArtifactPath(dir, ref, ver.Label())
	pkg := packageURL(x.cfg.BaseURL, ref, ver.PathSegment())

	return []model.DownloadTarget{
		{
			URL:         pkg + "?targetPlatform=" + url.QueryEscape(x.cfg.Platform),
			Destination: dest,
			Description: "platform-specific package (" + x.cfg.Platform + ")",
		},
		{
			URL:         pkg,
			Destination: dest,
			Description: "universal package",
		},
	}
}
