package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	controller "github.com/gosonic/gosonic/pkg/controller/http"
	"github.com/gosonic/gosonic/pkg/domain/model"
)

// mockSubsonicClient implements interfaces.SubsonicClient for handler tests
type mockSubsonicClient struct {
	streamFunc   func(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error)
	coverArtFunc func(ctx context.Context, id string, size int) (*model.MediaStream, error)

	scrobbled chan string
}

var errNotConfigured = errors.New("mock not configured")

func (m *mockSubsonicClient) Ping(ctx context.Context) (*model.Response, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetLicense(ctx context.Context) (*model.License, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetMusicFolders(ctx context.Context) ([]model.MusicFolder, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetIndexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetMusicDirectory(ctx context.Context, id string) (*model.Directory, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetGenres(ctx context.Context) ([]model.Genre, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetArtists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) Download(ctx context.Context, id string) (*model.MediaStream, error) {
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) Stream(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, id, maxBitRate)
	}
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) GetCoverArt(ctx context.Context, id string, size int) (*model.MediaStream, error) {
	if m.coverArtFunc != nil {
		return m.coverArtFunc(ctx, id, size)
	}
	return nil, errNotConfigured
}

func (m *mockSubsonicClient) Scrobble(ctx context.Context, id string, submission bool) error {
	if m.scrobbled != nil {
		m.scrobbled <- id
	}
	return nil
}

func audioStream(content string) *model.MediaStream {
	return &model.MediaStream{
		Body:        io.NopCloser(strings.NewReader(content)),
		ContentType: "audio/mpeg",
		Size:        int64(len(content)),
	}
}

func TestMediaHandler_Stream(t *testing.T) {
	mock := &mockSubsonicClient{
		scrobbled: make(chan string, 1),
		streamFunc: func(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
			gt.Value(t, id).Equal("123")
			gt.Value(t, maxBitRate).Equal(128)
			return audioStream("stream bytes"), nil
		},
	}
	server, err := controller.NewServer(context.Background(), mock)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/123?maxBitRate=128", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, w.Header().Get("Content-Type")).Equal("audio/mpeg")
	gt.Value(t, w.Body.String()).Equal("stream bytes")

	// Scrobble is dispatched asynchronously after the stream completes
	select {
	case id := <-mock.scrobbled:
		gt.Value(t, id).Equal("123")
	case <-time.After(time.Second):
		t.Error("scrobble was not submitted")
	}
}

func TestMediaHandler_Stream_ScrobbleDisabled(t *testing.T) {
	mock := &mockSubsonicClient{
		scrobbled: make(chan string, 1),
		streamFunc: func(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
			return audioStream("data"), nil
		},
	}

	server, err := controller.NewServer(context.Background(), mock, controller.WithScrobble(false))
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/123", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)

	select {
	case <-mock.scrobbled:
		t.Error("scrobble should not be submitted when disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMediaHandler_Stream_UpstreamError(t *testing.T) {
	mock := &mockSubsonicClient{
		streamFunc: func(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
			return nil, errNotConfigured
		},
	}

	server, err := controller.NewServer(context.Background(), mock)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/123", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadGateway)
}

func TestMediaHandler_Stream_InvalidMaxBitRate(t *testing.T) {
	server, err := controller.NewServer(context.Background(), &mockSubsonicClient{})
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/123?maxBitRate=loud", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)
}

func TestMediaHandler_Cover(t *testing.T) {
	mock := &mockSubsonicClient{
		coverArtFunc: func(ctx context.Context, id string, size int) (*model.MediaStream, error) {
			gt.Value(t, id).Equal("al-55")
			gt.Value(t, size).Equal(300)
			return &model.MediaStream{
				Body:        io.NopCloser(strings.NewReader("png bytes")),
				ContentType: "image/png",
				Size:        9,
			}, nil
		},
	}

	server, err := controller.NewServer(context.Background(), mock)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/cover/al-55?size=300", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, w.Header().Get("Content-Type")).Equal("image/png")
	gt.Value(t, w.Body.String()).Equal("png bytes")
}
