package subsonic

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gosonic/gosonic/pkg/domain/interfaces"
	"github.com/gosonic/gosonic/pkg/domain/model"
	"github.com/gosonic/gosonic/pkg/domain/types"
)

// Client talks to a Subsonic-compatible media server using token
// authentication. A fresh salt/token pair is generated for every request.
type Client struct {
	base       *url.URL
	username   string
	password   string
	httpClient *http.Client
	limiter    *RateLimiter
}

var _ interfaces.SubsonicClient = (*Client)(nil)

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the default request pacing
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(c *Client) {
		c.limiter = NewRateLimiter(cfg)
	}
}

// New creates a client for the given server base URL. The URL may carry a
// path prefix (e.g. https://host:4040/subsonic); a trailing slash on the
// prefix is ignored.
func New(server, username, password string, opts ...Option) (*Client, error) {
	base, err := url.Parse(server)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid server URL", goerr.T(types.ErrTagConfig), goerr.V("server", server))
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, goerr.New("server URL must be http or https", goerr.T(types.ErrTagConfig), goerr.V("server", server))
	}
	if base.Host == "" {
		return nil, goerr.New("server URL has no host", goerr.T(types.ErrTagConfig), goerr.V("server", server))
	}

	client := &Client{
		base:       base,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    NewRateLimiter(DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// endpointPath joins the server path prefix with /rest and the endpoint
func endpointPath(prefix, endpoint string) string {
	return strings.TrimSuffix(prefix, "/") + "/rest" + endpoint
}

// requestURL builds a fully authenticated request URL for the endpoint
func (c *Client) requestURL(endpoint string, extra url.Values) (string, error) {
	salt, err := newSalt()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("u", c.username)
	query.Set("t", authToken(c.password, salt))
	query.Set("s", salt)
	query.Set("c", types.ClientName)
	query.Set("v", types.ProtocolVersion)
	query.Set("f", "json")
	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	u := *c.base
	u.Path = endpointPath(c.base.Path, endpoint)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// get performs a rate-limited GET against the endpoint
func (c *Client) get(ctx context.Context, endpoint string, extra url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter interrupted", goerr.V("endpoint", endpoint))
	}

	reqURL, err := c.requestURL(endpoint, extra)
	if err != nil {
		return nil, err
	}
	ctxlog.From(ctx).Debug("Subsonic API request", "endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.T(types.ErrTagTransport), goerr.V("endpoint", endpoint))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request failed", goerr.T(types.ErrTagTransport), goerr.V("endpoint", endpoint))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.RecordRateLimitError(retryAfter)
	}

	return resp, nil
}

// getEnvelope performs a GET and decodes the subsonic-response envelope,
// converting failed envelopes and non-200 statuses into errors
func (c *Client) getEnvelope(ctx context.Context, endpoint string, extra url.Values) (*model.Response, error) {
	resp, err := c.get(ctx, endpoint, extra)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code", goerr.T(types.ErrTagAPI),
			goerr.V("endpoint", endpoint), goerr.V("status", resp.StatusCode))
	}

	var env model.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, goerr.Wrap(err, "failed to decode response", goerr.T(types.ErrTagTransport), goerr.V("endpoint", endpoint))
	}

	if env.Response.Failed() {
		apiErr := env.Response.Error
		if apiErr == nil {
			apiErr = &model.Error{Code: model.ErrCodeGeneric, Message: "unknown error"}
		}
		return nil, goerr.Wrap(apiErr, "API request failed", goerr.T(types.ErrTagAPI),
			goerr.V("endpoint", endpoint), goerr.V("code", apiErr.Code))
	}

	return &env.Response, nil
}

// getMedia performs a GET against a binary endpoint and hands the body to
// the caller. Some servers report errors on binary endpoints as a JSON
// envelope with status 200, so the content type is checked first.
func (c *Client) getMedia(ctx context.Context, endpoint string, extra url.Values) (*model.MediaStream, error) {
	resp, err := c.get(ctx, endpoint, extra)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, goerr.New("unexpected status code", goerr.T(types.ErrTagAPI),
			goerr.V("endpoint", endpoint), goerr.V("status", resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		defer resp.Body.Close()
		var env model.Envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, goerr.Wrap(err, "failed to decode response", goerr.T(types.ErrTagTransport), goerr.V("endpoint", endpoint))
		}
		apiErr := env.Response.Error
		if apiErr == nil {
			apiErr = &model.Error{Code: model.ErrCodeGeneric, Message: "unknown error"}
		}
		return nil, goerr.Wrap(apiErr, "API request failed", goerr.T(types.ErrTagAPI),
			goerr.V("endpoint", endpoint), goerr.V("code", apiErr.Code))
	}

	var filename string
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}

	return &model.MediaStream{
		Body:        resp.Body,
		ContentType: contentType,
		Filename:    filename,
		Size:        resp.ContentLength,
	}, nil
}

// Ping tests connectivity with the server. The returned response carries
// the server's protocol version.
func (c *Client) Ping(ctx context.Context) (*model.Response, error) {
	return c.getEnvelope(ctx, "/ping", nil)
}

// GetLicense returns details about the server's software license
func (c *Client) GetLicense(ctx context.Context) (*model.License, error) {
	resp, err := c.getEnvelope(ctx, "/getLicense", nil)
	if err != nil {
		return nil, err
	}
	if resp.License == nil {
		return nil, goerr.New("response has no license element", goerr.T(types.ErrTagAPI))
	}
	return resp.License, nil
}

// GetMusicFolders returns all configured top-level music folders
func (c *Client) GetMusicFolders(ctx context.Context) ([]model.MusicFolder, error) {
	resp, err := c.getEnvelope(ctx, "/getMusicFolders", nil)
	if err != nil {
		return nil, err
	}
	if resp.MusicFolders == nil {
		return nil, goerr.New("response has no musicFolders element", goerr.T(types.ErrTagAPI))
	}
	return resp.MusicFolders.MusicFolder, nil
}

// GetIndexes returns an indexed structure of all folder-organized artists.
// Unset query fields are omitted from the request.
func (c *Client) GetIndexes(ctx context.Context, q *model.IndexesQuery) (*model.Indexes, error) {
	extra := url.Values{}
	if q != nil {
		if q.MusicFolderID != "" {
			extra.Set("musicFolderId", q.MusicFolderID)
		}
		if q.IfModifiedSince > 0 {
			extra.Set("ifModifiedSince", strconv.FormatInt(q.IfModifiedSince, 10))
		}
	}

	resp, err := c.getEnvelope(ctx, "/getIndexes", extra)
	if err != nil {
		return nil, err
	}
	if resp.Indexes == nil {
		return nil, goerr.New("response has no indexes element", goerr.T(types.ErrTagAPI))
	}
	return resp.Indexes, nil
}

// GetMusicDirectory returns a listing of all files in a music directory,
// typically the albums of an artist or the songs of an album
func (c *Client) GetMusicDirectory(ctx context.Context, id string) (*model.Directory, error) {
	resp, err := c.getEnvelope(ctx, "/getMusicDirectory", url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	if resp.Directory == nil {
		return nil, goerr.New("response has no directory element", goerr.T(types.ErrTagAPI))
	}
	return resp.Directory, nil
}

// GetGenres returns all genres
func (c *Client) GetGenres(ctx context.Context) ([]model.Genre, error) {
	resp, err := c.getEnvelope(ctx, "/getGenres", nil)
	if err != nil {
		return nil, err
	}
	if resp.Genres == nil {
		return nil, goerr.New("response has no genres element", goerr.T(types.ErrTagAPI))
	}
	return resp.Genres.Genre, nil
}

// GetArtists is similar to GetIndexes but organizes music according to ID3
// tags
func (c *Client) GetArtists(ctx context.Context, musicFolderID string) (*model.ArtistsID3, error) {
	extra := url.Values{}
	if musicFolderID != "" {
		extra.Set("musicFolderId", musicFolderID)
	}

	resp, err := c.getEnvelope(ctx, "/getArtists", extra)
	if err != nil {
		return nil, err
	}
	if resp.Artists == nil {
		return nil, goerr.New("response has no artists element", goerr.T(types.ErrTagAPI))
	}
	return resp.Artists, nil
}

// Download fetches the original media file for the given ID without
// transcoding
func (c *Client) Download(ctx context.Context, id string) (*model.MediaStream, error) {
	return c.getMedia(ctx, "/download", url.Values{"id": {id}})
}

// Stream fetches a stream for the given ID, transcoded down to maxBitRate
// kbps if maxBitRate > 0
func (c *Client) Stream(ctx context.Context, id string, maxBitRate int) (*model.MediaStream, error) {
	extra := url.Values{"id": {id}}
	if maxBitRate > 0 {
		extra.Set("maxBitRate", strconv.Itoa(maxBitRate))
	}
	return c.getMedia(ctx, "/stream", extra)
}

// GetCoverArt fetches cover art for the given ID, scaled to size pixels if
// size > 0
func (c *Client) GetCoverArt(ctx context.Context, id string, size int) (*model.MediaStream, error) {
	extra := url.Values{"id": {id}}
	if size > 0 {
		extra.Set("size", strconv.Itoa(size))
	}
	return c.getMedia(ctx, "/getCoverArt", extra)
}

// Scrobble registers playback of the given media on the server, which may
// forward it to last.fm. submission false records "now playing" instead.
func (c *Client) Scrobble(ctx context.Context, id string, submission bool) error {
	extra := url.Values{
		"id":         {id},
		"submission": {strconv.FormatBool(submission)},
	}
	_, err := c.getEnvelope(ctx, "/scrobble", extra)
	return err
}
