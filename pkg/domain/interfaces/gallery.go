package interfaces

import (
	"context"

	"github.com/m-mizutani/vsixget/pkg/domain/model"
)

// GalleryClient abstracts the marketplace gallery API. One implementation
// lives in pkg/infra/gallery; tests supply mocks.
type GalleryClient interface {
	// LatestVersion returns the newest published version for the
	// extension. A single attempt; retries are the caller's concern.
	LatestVersion(ctx context.Context, ref *model.ExtensionRef) (string, error)

	// Targets returns the candidate download URLs in priority order.
	Targets(ref *model.ExtensionRef, ver model.VersionSpec, dir string) []model.DownloadTarget

	// Download streams the package payload of one target into its
	// temporary file and returns the number of bytes written. A single
	// attempt; no partial temporary file survives a failed call.
	Download(ctx context.Context, target model.DownloadTarget) (int64, error)
}
