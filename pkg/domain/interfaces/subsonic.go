package interfaces

import (
	"context"

	"github.com/gosonic/gosonic/pkg/domain/model"
)

// SubsonicClient defines operations against a Subsonic-compatible media
// server. Browse operations return typed payloads unwrapped from the
// response envelope; binary operations return a stream the caller must
// close.
type SubsonicClient interface {
	// Ping tests connectivity and credentials, returning the full response
	// so the caller can inspect the server's protocol version
	Ping(ctx context.Context) (*model.Response, error)

	// GetLicense returns the server's software license details
	GetLicense(ctx context.Context) (*model.License, error)

	// GetMusicFolders returns all configured top-level music folders
	GetMusicFolders(ctx context.Context) ([]model.MusicFolder, error)

	// GetIndexes returns folder-organized artists; q may be nil
	GetIndexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error)

	// GetMusicDirectory returns all entries in one music directory
	GetMusicDirectory(ctx context.Context, id string) (*model.Directory, error)

	// GetGenres returns all genres
	GetGenres(ctx context.Context) ([]model.Genre, error)

	// GetArtists returns ID3-organized artists, optionally limited to one
	// music folder (empty musicFolderID means all folders)
	GetArtists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error)

	// Download fetches the original media file for the given ID
	Download(ctx context.Context, id string) (*model.MediaStream, error)

	// Stream fetches a (possibly transcoded) stream for the given ID;
	// maxBitRate 0 leaves the server default
	Stream(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error)

	// GetCoverArt fetches cover art, scaled to size pixels if size > 0
	GetCoverArt(ctx context.Context, id string, size int) (*model.MediaStream, error)

	// Scrobble registers playback of the given media; submission false
	// records a "now playing" notification instead
	Scrobble(ctx context.Context, id string, submission bool) error
}
