package schema

import (
	"time"

	"apibay/categories"
)

// Torrent is one indexed item as returned by the search and listing
// endpoints. All fields are populated during normalization; optional
// strings are empty when the upstream omitted them.
type Torrent struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	InfoHash string        `json:"info_hash"`
	Leechers int           `json:"leechers"`
	Seeders  int           `json:"seeders"`
	NumFiles int           `json:"num_files"`
	Size     int64         `json:"size"`
	Username string        `json:"username"`
	Added    time.Time     `json:"added"`
	Status   string        `json:"status"`
	Category categories.ID `json:"category"`
	IMDB     string        `json:"imdb,omitempty"`
}

// TorrentDetails is a Torrent plus the fields only the single-torrent
// lookup returns.
type TorrentDetails struct {
	Torrent
	Descr        string `json:"descr"`
	Language     string `json:"language,omitempty"`
	TextLanguage string `json:"text_language,omitempty"`
}

// FileEntry is one file inside a torrent's file listing.
type FileEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
