package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/gosonic/gosonic/pkg/domain/interfaces"
	"github.com/gosonic/gosonic/pkg/domain/model"
)

type browseUseCase struct {
	client interfaces.SubsonicClient
}

// NewBrowse creates a new instance of BrowseUseCase
func NewBrowse(client interfaces.SubsonicClient) interfaces.BrowseUseCase {
	return &browseUseCase{
		client: client,
	}
}

// Ping tests connectivity and credentials against the server
func (uc *browseUseCase) Ping(ctx context.Context) (*model.Response, error) {
	resp, err := uc.client.Ping(ctx)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Server reachable",
		"status", resp.Status,
		"server_version", resp.Version,
	)
	return resp, nil
}

// GetLicense returns the server's license details
func (uc *browseUseCase) GetLicense(ctx context.Context) (*model.License, error) {
	return uc.client.GetLicense(ctx)
}

// MusicFolders returns all configured top-level music folders
func (uc *browseUseCase) MusicFolders(ctx context.Context) ([]model.MusicFolder, error) {
	folders, err := uc.client.GetMusicFolders(ctx)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Fetched music folders", "count", len(folders))
	return folders, nil
}

// Indexes returns folder-organized artists
func (uc *browseUseCase) Indexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error) {
	return uc.client.GetIndexes(ctx, q)
}

// Directory returns all entries of one music directory
func (uc *browseUseCase) Directory(ctx context.Context, id string) (*model.Directory, error) {
	dir, err := uc.client.GetMusicDirectory(ctx, id)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Fetched music directory",
		"id", dir.ID,
		"name", dir.Name,
		"entries", len(dir.Child),
	)
	return dir, nil
}

// Genres returns all genres
func (uc *browseUseCase) Genres(ctx context.Context) ([]model.Genre, error) {
	return uc.client.GetGenres(ctx)
}

// Artists returns ID3-organized artists
func (uc *browseUseCase) Artists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error) {
	return uc.client.GetArtists(ctx, musicFolderID)
}
