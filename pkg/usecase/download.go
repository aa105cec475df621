package usecase

import (
	"context"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/domain/interfaces"
	"github.com/m-mizutani/vsixget/pkg/domain/model"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
	"github.com/m-mizutani/vsixget/pkg/utils/retry"
)

type downloadUseCase struct {
	gallery interfaces.GalleryClient
	policy  retry.Policy
}

// Option configures the download use case.
type Option func(*downloadUseCase)

// WithRetryPolicy overrides the default retry policy (3 attempts, 1s/2s
// exponential backoff, transport errors only).
func WithRetryPolicy(policy retry.Policy) Option {
	return func(uc *downloadUseCase) {
		uc.policy = policy
	}
}

// NewDownload creates the download pipeline use case.
func NewDownload(gallery interfaces.GalleryClient, options ...Option) interfaces.DownloadUseCase {
	uc := &downloadUseCase{
		gallery: gallery,
		policy: retry.Policy{
			MaxAttempts: 3,
			Backoff:     retry.Exponential(time.Second),
			Retryable: func(err error) bool {
				return goerr.HasTag(err, types.ErrTagTransport)
			},
		},
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// Download runs the pipeline: resolve the version label, build candidate
// URLs, then per candidate fetch with retry, validate, and commit. A failed
// candidate advances to the next one; exhausting all candidates is the
// terminal failure. The destination path only ever holds a complete,
// validated artifact.
func (uc *downloadUseCase) Download(ctx context.Context, req *model.DownloadRequest) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	ver, err := uc.resolveVersion(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.Directory, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("directory", req.Directory))
	}

	targets := uc.gallery.Targets(req.Ref, ver, req.Directory)

	var lastErr error
	for _, target := range targets {
		logger.Info("trying download target",
			"description", target.Description,
			"url", target.URL,
		)

		result, err := uc.tryTarget(ctx, target)
		if err != nil {
			logger.Warn("download target failed",
				"description", target.Description,
				"error", err,
			)
			lastErr = err
			continue
		}

		result.Version = ver.Label()
		return result, nil
	}

	return nil, goerr.Wrap(lastErr, "all download attempts failed",
		goerr.T(types.ErrTagExhausted),
		goerr.V("extension", req.Ref.String()),
	)
}

// resolveVersion turns the request into a VersionSpec. Resolution is
// advisory: except for a definitive 404 from the metadata endpoint, any
// failure degrades to the latest label and the download proceeds.
func (uc *downloadUseCase) resolveVersion(ctx context.Context, req *model.DownloadRequest) (model.VersionSpec, error) {
	logger := ctxlog.From(ctx)

	if req.Version != "" {
		if _, err := semver.NewVersion(req.Version); err != nil {
			logger.Warn("explicit version is not a semantic version, using as-is",
				"version", req.Version,
			)
		}
		return model.VersionSpec{Explicit: req.Version}, nil
	}

	if req.SkipVersionCheck {
		logger.Info("skipping version check as requested")
		return model.VersionSpec{}, nil
	}

	logger.Info("no version specified, fetching latest", "extension", req.Ref.String())

	var resolved string
	err := uc.policy.Do(ctx, func(ctx context.Context) error {
		version, err := uc.gallery.LatestVersion(ctx, req.Ref)
		if err != nil {
			return err
		}
		resolved = version
		return nil
	})

	switch {
	case err == nil:
		logger.Info("latest version", "version", resolved)
		return model.VersionSpec{Resolved: resolved}, nil

	case goerr.HasTag(err, types.ErrTagNotFound):
		// The download endpoints key on the same publisher/name pair,
		// so they cannot succeed either. Fail the run here.
		return model.VersionSpec{}, err

	default:
		logger.Warn("could not determine latest version, using 'latest' in filename", "error", err)
		return model.VersionSpec{}, nil
	}
}

// tryTarget fetches one candidate with retry, validates the temporary file,
// and commits it with an atomic rename.
func (uc *downloadUseCase) tryTarget(ctx context.Context, target model.DownloadTarget) (*model.DownloadResult, error) {
	var size int64
	err := uc.policy.Do(ctx, func(ctx context.Context) error {
		n, err := uc.gallery.Download(ctx, target)
		if err != nil {
			return err
		}
		size = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	tmpPath := target.TempPath()
	if err := VerifyVSIX(tmpPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			ctxlog.From(ctx).Warn("failed to remove invalid download", "path", tmpPath, "error", rmErr)
		}
		return nil, err
	}

	if err := os.Rename(tmpPath, target.Destination); err != nil {
		_ = os.Remove(tmpPath)
		return nil, goerr.Wrap(err, "failed to move artifact into place",
			goerr.V("from", tmpPath),
			goerr.V("to", target.Destination),
		)
	}

	return &model.DownloadResult{
		Path:        target.Destination,
		Size:        size,
		Description: target.Description,
	}, nil
}
