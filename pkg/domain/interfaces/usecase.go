package interfaces

import (
	"context"

	"github.com/gosonic/gosonic/pkg/domain/model"
)

// BrowseUseCase defines library browsing operations
type BrowseUseCase interface {
	Ping(ctx context.Context) (*model.Response, error)
	GetLicense(ctx context.Context) (*model.License, error)
	MusicFolders(ctx context.Context) ([]model.MusicFolder, error)
	Indexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error)
	Directory(ctx context.Context, id string) (*model.Directory, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Artists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error)
}

// DownloadUseCase defines media download operations
type DownloadUseCase interface {
	// Download fetches one media file and writes it under destDir
	Download(ctx context.Context, id, destDir string) (*model.DownloadResult, error)

	// DownloadAll fetches multiple media files with bounded concurrency;
	// the first failure cancels the remaining transfers
	DownloadAll(ctx context.Context, ids []string, destDir string) ([]*model.DownloadResult, error)
}
