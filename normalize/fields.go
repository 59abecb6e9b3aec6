package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"apibay/categories"
	"apibay/schema"
)

// maxUnixSeconds is the last representable second of year 9999. The
// upstream occasionally emits millisecond epochs; anything past this
// boundary is reinterpreted as milliseconds. Unverified against the real
// upstream, kept exactly as observed.
const maxUnixSeconds = 253402300799

// anonymousUser is what the upstream substitutes for a missing uploader.
const anonymousUser = "Anonymous"

// coerceInt converts the loosely typed values the API emits for numeric
// fields. The API encodes numbers as strings, so that is the common case;
// json.Number shows up because responses are decoded with UseNumber.
func coerceInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}

// stringify renders a raw JSON scalar as a string.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// intField reads a numeric field from a raw item. Absent keys default to
// zero; a present but non-coercible value fails the whole item.
func intField(item map[string]any, key string) (int64, error) {
	v, ok := item[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := coerceInt(v)
	if err != nil {
		return 0, errField(key, item)
	}
	return n, nil
}

func stringField(item map[string]any, key, def string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return def
	}
	if s := stringify(v); s != "" {
		return s
	}
	return def
}

// optionalField keeps a value only when it is non-empty after
// stringification and trimming; everything else is absent.
func optionalField(item map[string]any, key string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// torrentFromItem coerces the field set shared by list items and the
// details lookup. Unknown keys in the raw item are ignored.
func torrentFromItem(item map[string]any) (schema.Torrent, error) {
	var t schema.Torrent

	id, err := intField(item, "id")
	if err != nil {
		return t, err
	}
	leechers, err := intField(item, "leechers")
	if err != nil {
		return t, err
	}
	seeders, err := intField(item, "seeders")
	if err != nil {
		return t, err
	}
	numFiles, err := intField(item, "num_files")
	if err != nil {
		return t, err
	}
	size, err := intField(item, "size")
	if err != nil {
		return t, err
	}
	category, err := intField(item, "category")
	if err != nil {
		return t, err
	}
	added, err := intField(item, "added")
	if err != nil {
		return t, err
	}
	if added > maxUnixSeconds {
		added /= 1000
	}

	t = schema.Torrent{
		ID:       int(id),
		Name:     stringField(item, "name", ""),
		InfoHash: strings.ToLower(stringField(item, "info_hash", "")),
		Leechers: int(leechers),
		Seeders:  int(seeders),
		NumFiles: int(numFiles),
		Size:     size,
		Username: stringField(item, "username", anonymousUser),
		Added:    time.Unix(added, 0).UTC(),
		Status:   stringField(item, "status", ""),
		Category: categories.ID(category),
		IMDB:     optionalField(item, "imdb"),
	}
	return t, nil
}
