package types

import "github.com/m-mizutani/goerr/v2"

// Error tags to distinguish failures reported by the Subsonic server from
// failures reaching it at all.
var (
	// ErrTagAPI marks errors returned by the Subsonic API itself, either as
	// a failed response envelope or a non-200 status code
	ErrTagAPI = goerr.NewTag("subsonic_api")

	// ErrTagTransport marks network and protocol level failures
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagConfig marks invalid or incomplete configuration
	ErrTagConfig = goerr.NewTag("config")
)
