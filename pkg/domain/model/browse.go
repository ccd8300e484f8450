package model

// MusicFolders is the getMusicFolders payload
type MusicFolders struct {
	MusicFolder []MusicFolder `json:"musicFolder"`
}

// MusicFolder is a configured top-level media library root
type MusicFolder struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Indexes is the getIndexes payload: artists grouped by index letter,
// organized by filesystem structure
type Indexes struct {
	LastModified    int64   `json:"lastModified"`
	IgnoredArticles string  `json:"ignoredArticles,omitempty"`
	Index           []Index `json:"index,omitempty"`
	Child           []Child `json:"child,omitempty"`
}

// Index is one letter group of artists
type Index struct {
	Name   string   `json:"name"`
	Artist []Artist `json:"artist"`
}

// Artist is a filesystem-organized artist entry
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IndexesQuery narrows a getIndexes call. Zero values mean the parameter is
// omitted from the request.
type IndexesQuery struct {
	MusicFolderID string
	// IfModifiedSince is milliseconds since epoch; only return a result if
	// the artist collection changed since then
	IfModifiedSince int64
}

// Directory is the getMusicDirectory payload: all entries in one music
// directory, typically the albums of an artist or the songs of an album
type Directory struct {
	ID     string  `json:"id"`
	Parent string  `json:"parent,omitempty"`
	Name   string  `json:"name"`
	Child  []Child `json:"child,omitempty"`
}

// Child is a single entry in a directory listing, either a sub-directory
// or a media file
type Child struct {
	ID          string `json:"id"`
	Parent      string `json:"parent,omitempty"`
	IsDir       bool   `json:"isDir"`
	Title       string `json:"title"`
	Album       string `json:"album,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Track       int    `json:"track,omitempty"`
	Year        int    `json:"year,omitempty"`
	Genre       string `json:"genre,omitempty"`
	CoverArt    string `json:"coverArt,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	BitRate     int    `json:"bitRate,omitempty"`
	Path        string `json:"path,omitempty"`
}

// Genres is the getGenres payload
type Genres struct {
	Genre []Genre `json:"genre"`
}

// Genre is a single genre with usage counts
type Genre struct {
	Value      string `json:"value"`
	SongCount  int    `json:"songCount"`
	AlbumCount int    `json:"albumCount"`
}

// ArtistsID3 is the getArtists payload: artists grouped by index letter,
// organized by ID3 tags rather than folder structure
type ArtistsID3 struct {
	IgnoredArticles string     `json:"ignoredArticles,omitempty"`
	Index           []IndexID3 `json:"index"`
}

// IndexID3 is one letter group of ID3 artists
type IndexID3 struct {
	Name   string      `json:"name"`
	Artist []ArtistID3 `json:"artist"`
}

// ArtistID3 is an ID3-organized artist entry
type ArtistID3 struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CoverArt   string `json:"coverArt,omitempty"`
	AlbumCount int    `json:"albumCount,omitempty"`
}
