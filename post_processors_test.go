package apibay

import (
	"reflect"
	"testing"

	"apibay/schema"
)

func TestSortBySimilarity(t *testing.T) {
	torrents := []schema.Torrent{
		{ID: 1, Name: "Qwertzuiop Xkcd Vvvv"},
		{ID: 2, Name: "Big.Buck.Bunny.2008.1080p"},
		{ID: 3, Name: "Big Buck Bunny"},
	}

	got := SortBySimilarity(torrents, "big buck bunny")
	if len(got) != 3 {
		t.Fatalf("SortBySimilarity() returned %d items, want 3", len(got))
	}
	if got[0].ID != 3 {
		t.Errorf("best match ID = %d, want 3", got[0].ID)
	}
	if got[2].ID != 1 {
		t.Errorf("worst match ID = %d, want 1", got[2].ID)
	}
}

func TestSortBySimilarityEmptyQuery(t *testing.T) {
	torrents := []schema.Torrent{
		{ID: 2, Name: "b"},
		{ID: 1, Name: "a"},
	}
	got := SortBySimilarity(torrents, "")
	if !reflect.DeepEqual(got, torrents) {
		t.Errorf("SortBySimilarity() with empty query reordered results: %v", got)
	}
}

func TestSortBySimilarityDropsZeroTail(t *testing.T) {
	// above 20 results, entries with no overlap with the query are cut
	torrents := make([]schema.Torrent, 0, 22)
	for i := 0; i < 21; i++ {
		torrents = append(torrents, schema.Torrent{ID: i, Name: "linux iso collection"})
	}
	torrents = append(torrents, schema.Torrent{ID: 99, Name: "qqqq"})

	got := SortBySimilarity(torrents, "linux iso")
	for _, torrent := range got {
		if torrent.ID == 99 {
			t.Fatalf("zero-similarity entry survived the cut: %+v", torrent)
		}
	}
	if len(got) != 21 {
		t.Errorf("SortBySimilarity() kept %d items, want 21", len(got))
	}
}
