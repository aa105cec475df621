package interfaces

import (
	"context"

	"github.com/m-mizutani/vsixget/pkg/domain/model"
)

// DownloadUseCase runs the whole download pipeline for one request.
type DownloadUseCase interface {
	Download(ctx context.Context, req *model.DownloadRequest) (*model.DownloadResult, error)
}
