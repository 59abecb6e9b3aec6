package normalize

import (
	"apibay/logging"
	"apibay/schema"
)

// fileMatcher attempts to recognize one historically observed encoding of
// a file-listing element. Matchers are pure; a false return means "not
// this shape", letting the next matcher try.
type fileMatcher func(elem any) (schema.FileEntry, bool)

// fileMatchers is tried in priority order; the first match wins. Three
// encodings of the same logical [name, size] pair have been observed in
// the wild across mirrors and API revisions.
var fileMatchers = []fileMatcher{
	matchNamedLists,
	matchIndexedMap,
	matchBarePair,
}

// FileList normalizes the body of a file-listing call. Elements matching
// none of the known shapes are dropped with a warning, so the listing is
// always best-effort; only a non-list top level (other than the empty-map
// and absent sentinels) is a hard error.
func FileList(raw any) ([]schema.FileEntry, error) {
	if raw == nil {
		return []schema.FileEntry{}, nil
	}
	elems, ok := raw.([]any)
	if !ok {
		if m, ok := raw.(map[string]any); ok && len(m) == 0 {
			return []schema.FileEntry{}, nil
		}
		return nil, errUnexpectedShape("file list", raw)
	}

	files := make([]schema.FileEntry, 0, len(elems))
	for _, elem := range elems {
		entry, ok := matchFile(elem)
		if !ok {
			logging.Warn().Interface("element", elem).Msg("Skipping unrecognized file-list element")
			continue
		}
		files = append(files, entry)
	}
	return files, nil
}

func matchFile(elem any) (schema.FileEntry, bool) {
	for _, match := range fileMatchers {
		if entry, ok := match(elem); ok {
			return entry, true
		}
	}
	return schema.FileEntry{}, false
}

// matchNamedLists handles {"name": [x], "size": [y]} where x and y may
// themselves be single-element lists (a double-wrapped variant).
func matchNamedLists(elem any) (schema.FileEntry, bool) {
	m, ok := elem.(map[string]any)
	if !ok {
		return schema.FileEntry{}, false
	}
	names, ok := m["name"].([]any)
	if !ok || len(names) == 0 {
		return schema.FileEntry{}, false
	}
	sizes, ok := m["size"].([]any)
	if !ok || len(sizes) == 0 {
		return schema.FileEntry{}, false
	}
	return pairEntry(unwrap(names[0]), unwrap(sizes[0]))
}

// matchIndexedMap handles {"<opaque index>": [[name, size], ...]}.
func matchIndexedMap(elem any) (schema.FileEntry, bool) {
	m, ok := elem.(map[string]any)
	if !ok {
		return schema.FileEntry{}, false
	}
	for _, v := range m {
		rows, ok := v.([]any)
		if !ok || len(rows) == 0 {
			continue
		}
		pair, ok := rows[0].([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		return pairEntry(pair[0], pair[1])
	}
	return schema.FileEntry{}, false
}

// matchBarePair handles a bare [name, size] element where name is a
// string and size is an integer or a digit-only string.
func matchBarePair(elem any) (schema.FileEntry, bool) {
	pair, ok := elem.([]any)
	if !ok || len(pair) != 2 {
		return schema.FileEntry{}, false
	}
	if _, ok := pair[0].(string); !ok {
		return schema.FileEntry{}, false
	}
	return pairEntry(pair[0], pair[1])
}

// unwrap peels one level of single-element list nesting.
func unwrap(v any) any {
	if inner, ok := v.([]any); ok && len(inner) > 0 {
		return inner[0]
	}
	return v
}

func pairEntry(name, size any) (schema.FileEntry, bool) {
	n, err := coerceInt(size)
	if err != nil {
		return schema.FileEntry{}, false
	}
	return schema.FileEntry{Name: stringify(name), Size: n}, true
}
