package categories

import "testing"

func TestDomain(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{name: "audio", id: AudioFLAC, want: "audio"},
		{name: "video", id: VideoHDMovies, want: "video"},
		{name: "application", id: ApplicationUNIX, want: "application"},
		{name: "games", id: GamesPC, want: "games"},
		{name: "other", id: OtherEbooks, want: "other"},
		{name: "5xx block is not part of the table", id: 501, want: ""},
		{name: "none", id: None, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Domain(tt.id); got != tt.want {
				t.Errorf("Domain(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestEveryDomainEndsInOtherBucket(t *testing.T) {
	for domain, entries := range Categories {
		var hasBucket bool
		for _, id := range entries {
			if id%100 == 99 {
				hasBucket = true
			}
			if got := Domain(id); got != domain {
				t.Errorf("Domain(%d) = %q, want %q", id, got, domain)
			}
		}
		if !hasBucket {
			t.Errorf("domain %q has no .99 bucket", domain)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want bool
	}{
		{name: "known id", id: VideoTVShows, want: true},
		{name: "unassigned id inside a domain", id: 210, want: false},
		{name: "none", id: None, want: false},
		{name: "out of range", id: 700, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.id); got != tt.want {
				t.Errorf("Valid(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
