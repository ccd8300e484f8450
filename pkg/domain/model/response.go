package model

import "fmt"

// Response status values as rendered in the "subsonic-response" envelope
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Subsonic API error codes
const (
	ErrCodeGeneric           = 0
	ErrCodeMissingParameter  = 10
	ErrCodeClientMustUpgrade = 20
	ErrCodeServerMustUpgrade = 30
	ErrCodeWrongCredentials  = 40
	ErrCodeNotAuthorized     = 50
	ErrCodeTrialExpired      = 60
	ErrCodeNotFound          = 70
)

// Envelope is the top-level JSON document returned by every Subsonic
// endpoint when f=json is requested.
type Envelope struct {
	Response Response `json:"subsonic-response"`
}

// Response is the body of the subsonic-response envelope. Exactly one of the
// payload fields is set depending on the endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Error   *Error `json:"error,omitempty"`

	License      *License      `json:"license,omitempty"`
	MusicFolders *MusicFolders `json:"musicFolders,omitempty"`
	Indexes      *Indexes      `json:"indexes,omitempty"`
	Directory    *Directory    `json:"directory,omitempty"`
	Genres       *Genres       `json:"genres,omitempty"`
	Artists      *ArtistsID3   `json:"artists,omitempty"`
}

// Failed reports whether the server rejected the request
func (r *Response) Failed() bool {
	return r.Status == StatusFailed
}

// Error is the error element of a failed subsonic-response
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("subsonic error %d: %s", e.Code, e.Message)
}
