// Package magnet builds magnet URIs for normalized torrent records.
package magnet

import (
	"net/url"
	"strings"
)

// defaultTrackers is the announce list used when the caller supplies none.
// Callers wanting different trackers pass their own; the default is never
// mutated at runtime.
var defaultTrackers = []string{
	"udp://tracker.opentrackr.org:1337/announce",
	"udp://open.stealth.si:80/announce",
	"udp://tracker.torrent.eu.org:451/announce",
	"udp://tracker.bittor.pw:1337/announce",
	"udp://public.popcorn-tracker.org:6969/announce",
	"udp://exodus.desync.com:6969/announce",
	"udp://open.demonii.com:1337/announce",
}

// DefaultTrackers returns a copy of the built-in announce list.
func DefaultTrackers() []string {
	trackers := make([]string, len(defaultTrackers))
	copy(trackers, defaultTrackers)
	return trackers
}

// Link assembles a magnet URI from an info hash and display name. When no
// trackers are given the default announce list is used.
func Link(infoHash, name string, trackers ...string) string {
	if len(trackers) == 0 {
		trackers = defaultTrackers
	}

	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(strings.ToLower(infoHash))
	if name != "" {
		b.WriteString("&dn=")
		b.WriteString(url.QueryEscape(name))
	}
	for _, tracker := range trackers {
		b.WriteString("&tr=")
		b.WriteString(url.QueryEscape(tracker))
	}
	return b.String()
}
