// Package normalize turns the loosely shaped JSON payloads of the upstream
// index into typed records. Every function here is pure and stateless:
// input is the decoded response body (decoded with json.Decoder.UseNumber),
// output is either typed records or a *ContentError. Sentinel payloads the
// API uses to signal "nothing here" (the literal text "false", a single
// "No results returned" item, the misspelled not-found record) are data,
// not errors, and normalize to empty or absent results.
package normalize

import (
	"apibay/logging"
	"apibay/schema"
)

const (
	// noResultsSentinel is the name of the single fake item the list
	// endpoints return instead of an empty list.
	noResultsSentinel = "No results returned"
	// notFoundSentinel is the upstream's literal, misspelled not-found
	// marker. It must be matched verbatim.
	notFoundSentinel = "Torrent does not exsist."
)

// TorrentList normalizes the body of a listing call (search, by-user,
// top100/recent). Items that fail field coercion are dropped with a
// warning so one malformed record cannot hide the rest; order is
// preserved as returned by the upstream.
func TorrentList(raw any) ([]schema.Torrent, error) {
	items, ok := raw.([]any)
	if !ok {
		if m, ok := raw.(map[string]any); ok {
			if msg := stringify(m["error"]); msg != "" {
				return nil, &ContentError{Msg: "API returned an error: " + msg, Payload: m}
			}
			if len(m) == 0 {
				// the transport translates the literal "false" body to {}
				return []schema.Torrent{}, nil
			}
		}
		return nil, errUnexpectedShape("torrent list", raw)
	}

	torrents := make([]schema.Torrent, 0, len(items))
	if len(items) == 0 {
		return torrents, nil
	}
	if first, ok := items[0].(map[string]any); ok && len(items) == 1 {
		if stringify(first["name"]) == noResultsSentinel {
			return torrents, nil
		}
	}

	for _, rawItem := range items {
		item, ok := rawItem.(map[string]any)
		if !ok {
			logging.Warn().Interface("item", rawItem).Msg("Skipping non-object torrent item")
			continue
		}
		t, err := torrentFromItem(item)
		if err != nil {
			logging.Warn().Err(err).Msg("Skipping malformed torrent item")
			continue
		}
		torrents = append(torrents, t)
	}
	return torrents, nil
}

// TorrentDetails normalizes the body of a single-torrent lookup. A nil
// result with a nil error means the torrent does not exist; unlike list
// items, a details payload has no siblings to fall back on, so coercion
// failures surface as a *ContentError.
func TorrentDetails(raw any) (*schema.TorrentDetails, error) {
	item, ok := raw.(map[string]any)
	if !ok {
		return nil, errUnexpectedShape("torrent details", raw)
	}
	if len(item) == 0 {
		return nil, nil
	}
	if stringify(item["name"]) == notFoundSentinel {
		return nil, nil
	}

	t, err := torrentFromItem(item)
	if err != nil {
		return nil, err
	}
	return &schema.TorrentDetails{
		Torrent:      t,
		Descr:        stringField(item, "descr", ""),
		Language:     optionalField(item, "language"),
		TextLanguage: optionalField(item, "textLanguage"),
	}, nil
}

// PageCount normalizes the body of a pcnt query, a single-element list
// holding a string-encoded integer. The endpoint is advisory: any
// deviation yields zero rather than an error.
func PageCount(raw any) int {
	items, ok := raw.([]any)
	if !ok || len(items) != 1 {
		return 0
	}
	n, err := coerceInt(items[0])
	if err != nil {
		return 0
	}
	return int(n)
}
