package http

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gosonic/gosonic/pkg/domain/interfaces"
	"github.com/gosonic/gosonic/pkg/utils/async"
)

// MediaHandler proxies stream and cover art requests to the media server,
// injecting authentication on the upstream side
type MediaHandler struct {
	client   interfaces.SubsonicClient
	scrobble bool
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(client interfaces.SubsonicClient, scrobble bool) *MediaHandler {
	return &MediaHandler{
		client:   client,
		scrobble: scrobble,
	}
}

// HandleStream proxies a media stream. An optional maxBitRate query
// parameter is passed through to the server. After the full stream has
// been delivered, a scrobble submission is dispatched in the background.
func (h *MediaHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, goerr.New("missing media id"), http.StatusBadRequest)
		return
	}

	maxBitRate := 0
	if raw := r.URL.Query().Get("maxBitRate"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, goerr.New("invalid maxBitRate"), http.StatusBadRequest)
			return
		}
		maxBitRate = parsed
	}

	stream, err := h.client.Stream(ctx, id, maxBitRate)
	if err != nil {
		logger.Error("Failed to open upstream stream", "error", err, "id", id)
		writeError(w, err, http.StatusBadGateway)
		return
	}
	defer stream.Body.Close()

	if stream.ContentType != "" {
		w.Header().Set("Content-Type", stream.ContentType)
	}
	if stream.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(stream.Size, 10))
	}

	written, err := io.Copy(w, stream.Body)
	if err != nil {
		// Headers are already sent; nothing to do but log
		logger.Warn("Stream copy interrupted", "error", err, "id", id, "bytes", written)
		return
	}

	if h.scrobble {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return h.client.Scrobble(ctx, id, true)
		})
	}
}

// HandleCover proxies cover art, with an optional size query parameter
func (h *MediaHandler) HandleCover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, goerr.New("missing cover id"), http.StatusBadRequest)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, goerr.New("invalid size"), http.StatusBadRequest)
			return
		}
		size = parsed
	}

	art, err := h.client.GetCoverArt(ctx, id, size)
	if err != nil {
		logger.Error("Failed to fetch cover art", "error", err, "id", id)
		writeError(w, err, http.StatusBadGateway)
		return
	}
	defer art.Body.Close()

	if art.ContentType != "" {
		w.Header().Set("Content-Type", art.ContentType)
	}
	if _, err := io.Copy(w, art.Body); err != nil {
		logger.Warn("Cover art copy interrupted", "error", err, "id", id)
	}
}
