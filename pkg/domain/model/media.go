package model

import "io"

// MediaStream is the result of a binary endpoint (download, stream,
// getCoverArt). The caller owns Body and must close it.
type MediaStream struct {
	Body        io.ReadCloser
	ContentType string
	// Filename is taken from the Content-Disposition header, empty if the
	// server did not send one
	Filename string
	// Size is the Content-Length, -1 if unknown
	Size int64
}

// DownloadResult describes one media file written to local disk
type DownloadResult struct {
	TransferID string // Unique ID assigned to this transfer
	SongID     string // Subsonic ID of the downloaded media
	Path       string // Destination file path
	Size       int64  // Bytes written
}
