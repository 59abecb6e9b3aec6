package apibay

import (
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"

	"apibay/schema"
	"apibay/utils"
)

// SortBySimilarity reorders search results by Jaccard similarity between
// each torrent's name and the query, best match first. Large result sets
// (>20) drop the zero-similarity tail. The upstream's own ordering is
// preserved among equal scores; an empty query is a no-op.
func SortBySimilarity(torrents []schema.Torrent, query string) []schema.Torrent {
	if query == "" || len(torrents) == 0 {
		return torrents
	}

	type scored struct {
		torrent    schema.Torrent
		similarity float32
	}

	qLower := strings.ToLower(query)
	splitLength := 2
	results := make([]scored, len(torrents))
	for i, t := range torrents {
		nLower := strings.ReplaceAll(strings.ToLower(t.Name), ".", " ")
		results[i] = scored{t, edlib.JaccardSimilarity(nLower, qLower, splitLength)}
	}

	if len(results) > 20 {
		results = utils.Filter(results, func(s scored) bool {
			return s.similarity > 0
		})
	}

	slices.SortStableFunc(results, func(a, b scored) int {
		return int((b.similarity - a.similarity) * 1000)
	})

	sorted := make([]schema.Torrent, len(results))
	for i, s := range results {
		sorted[i] = s.torrent
	}
	return sorted
}
