package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/gosonic/gosonic/pkg/domain/model"
)

// mockSubsonicClient is a hand-rolled mock of interfaces.SubsonicClient
type mockSubsonicClient struct {
	pingFunc      func(ctx context.Context) (*model.Response, error)
	licenseFunc   func(ctx context.Context) (*model.License, error)
	foldersFunc   func(ctx context.Context) ([]model.MusicFolder, error)
	indexesFunc   func(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error)
	directoryFunc func(ctx context.Context, id string) (*model.Directory, error)
	genresFunc    func(ctx context.Context) ([]model.Genre, error)
	artistsFunc   func(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error)
	downloadFunc  func(ctx context.Context, id string) (*model.MediaStream, error)
	streamFunc    func(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error)
	coverArtFunc  func(ctx context.Context, id string, size int) (*model.MediaStream, error)
	scrobbleFunc  func(ctx context.Context, id string, submission bool) error

	mu            sync.Mutex
	downloadCalls []string
}

var errMockNotConfigured = errors.New("mock not configured")

// calledIDs returns the IDs passed to Download, in call order
func (m *mockSubsonicClient) calledIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.downloadCalls...)
}

func (m *mockSubsonicClient) Ping(ctx context.Context) (*model.Response, error) {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetLicense(ctx context.Context) (*model.License, error) {
	if m.licenseFunc != nil {
		return m.licenseFunc(ctx)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetMusicFolders(ctx context.Context) ([]model.MusicFolder, error) {
	if m.foldersFunc != nil {
		return m.foldersFunc(ctx)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetIndexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error) {
	if m.indexesFunc != nil {
		return m.indexesFunc(ctx, q)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetMusicDirectory(ctx context.Context, id string) (*model.Directory, error) {
	if m.directoryFunc != nil {
		return m.directoryFunc(ctx, id)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetGenres(ctx context.Context) ([]model.Genre, error) {
	if m.genresFunc != nil {
		return m.genresFunc(ctx)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetArtists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error) {
	if m.artistsFunc != nil {
		return m.artistsFunc(ctx, musicFolderID)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) Download(ctx context.Context, id string) (*model.MediaStream, error) {
	m.mu.Lock()
	m.downloadCalls = append(m.downloadCalls, id)
	m.mu.Unlock()
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, id)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) Stream(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, id, maxBitRate)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) GetCoverArt(ctx context.Context, id string, size int) (*model.MediaStream, error) {
	if m.coverArtFunc != nil {
		return m.coverArtFunc(ctx, id, size)
	}
	return nil, errMockNotConfigured
}

func (m *mockSubsonicClient) Scrobble(ctx context.Context, id string, submission bool) error {
	if m.scrobbleFunc != nil {
		return m.scrobbleFunc(ctx, id, submission)
	}
	return errMockNotConfigured
}
