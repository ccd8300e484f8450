package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/gosonic/gosonic/pkg/domain/interfaces"
	"github.com/gosonic/gosonic/pkg/domain/model"
)

const defaultDownloadConcurrency = 4

type downloadUseCase struct {
	client      interfaces.SubsonicClient
	concurrency int
}

// DownloadOption is a functional option for the download use case
type DownloadOption func(*downloadUseCase)

// WithConcurrency sets the maximum number of parallel transfers
func WithConcurrency(n int) DownloadOption {
	return func(uc *downloadUseCase) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(client interfaces.SubsonicClient, opts ...DownloadOption) interfaces.DownloadUseCase {
	uc := &downloadUseCase{
		client:      client,
		concurrency: defaultDownloadConcurrency,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Download fetches one media file and streams it to a file under destDir.
// The file name comes from the server's Content-Disposition header, falling
// back to the media ID.
func (uc *downloadUseCase) Download(ctx context.Context, id, destDir string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)
	transferID := uuid.NewString()

	stream, err := uc.client.Download(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start download", goerr.V("id", id))
	}
	defer stream.Body.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("dir", destDir))
	}

	name := stream.Filename
	if name == "" {
		name = id
	}
	destPath := filepath.Join(destDir, filepath.Base(name))

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	written, err := io.Copy(destFile, stream.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write media file", goerr.V("path", destPath), goerr.V("id", id))
	}

	logger.Info("Downloaded media",
		"transfer_id", transferID,
		"id", id,
		"path", destPath,
		"size_bytes", written,
	)

	return &model.DownloadResult{
		TransferID: transferID,
		SongID:     id,
		Path:       destPath,
		Size:       written,
	}, nil
}

// DownloadAll fetches the given media IDs with bounded concurrency. The
// first failing transfer cancels the rest.
func (uc *downloadUseCase) DownloadAll(ctx context.Context, ids []string, destDir string) ([]*model.DownloadResult, error) {
	results := make([]*model.DownloadResult, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			result, err := uc.Download(ctx, id, destDir)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Batch download complete",
		"count", len(results),
		"dest_dir", destDir,
	)
	return results, nil
}
