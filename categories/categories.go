// Package categories holds the static category table of the upstream
// index. The IDs form a closed enumeration partitioned by hundreds digit
// (audio 1xx, video 2xx, application 3xx, games 4xx, other 6xx); each
// domain ends with an "other" bucket at its .99 boundary.
//
// Regenerate with cmd/categorygen when the upstream table changes.
package categories

// ID is a numerical category identifier.
type ID int

// None leaves the category filter out of a query entirely.
const None ID = 0

const (
	AudioMusic      ID = 101
	AudioBooks      ID = 102
	AudioSoundClips ID = 103
	AudioFLAC       ID = 104
	AudioOther      ID = 199

	VideoMovies      ID = 201
	VideoMoviesDVDR  ID = 202
	VideoMusicVideos ID = 203
	VideoMovieClips  ID = 204
	VideoTVShows     ID = 205
	VideoHandheld    ID = 206
	VideoHDMovies    ID = 207
	VideoHDTVShows   ID = 208
	Video3D          ID = 209
	VideoOther       ID = 299

	ApplicationWindows  ID = 301
	ApplicationMac      ID = 302
	ApplicationUNIX     ID = 303
	ApplicationHandheld ID = 304
	ApplicationIOS      ID = 305
	ApplicationAndroid  ID = 306
	ApplicationOther    ID = 399

	GamesPC       ID = 401
	GamesMac      ID = 402
	GamesPSX      ID = 403
	GamesXbox360  ID = 404
	GamesWii      ID = 405
	GamesHandheld ID = 406
	GamesIOS      ID = 407
	GamesAndroid  ID = 408
	GamesOther    ID = 499

	OtherEbooks    ID = 601
	OtherComics    ID = 602
	OtherPictures  ID = 603
	OtherCovers    ID = 604
	OtherPhysibles ID = 605
	OtherOther     ID = 699
)

// Categories maps domain and human-readable names to IDs, mirroring the
// upstream web UI's grouping.
var Categories = map[string]map[string]ID{
	"audio": {
		"music":       AudioMusic,
		"audio_books": AudioBooks,
		"sound_clips": AudioSoundClips,
		"FLAC":        AudioFLAC,
		"other":       AudioOther,
	},
	"video": {
		"movies":       VideoMovies,
		"movies_dvdr":  VideoMoviesDVDR,
		"music_videos": VideoMusicVideos,
		"movie_clips":  VideoMovieClips,
		"tv_shows":     VideoTVShows,
		"handheld":     VideoHandheld,
		"hd_movies":    VideoHDMovies,
		"hd_tv_shows":  VideoHDTVShows,
		"3d":           Video3D,
		"other":        VideoOther,
	},
	"application": {
		"windows":  ApplicationWindows,
		"mac":      ApplicationMac,
		"UNIX":     ApplicationUNIX,
		"handheld": ApplicationHandheld,
		"IOS":      ApplicationIOS,
		"android":  ApplicationAndroid,
		"other":    ApplicationOther,
	},
	"games": {
		"PC":       GamesPC,
		"mac":      GamesMac,
		"psx":      GamesPSX,
		"xbox360":  GamesXbox360,
		"wii":      GamesWii,
		"handheld": GamesHandheld,
		"IOS":      GamesIOS,
		"android":  GamesAndroid,
		"other":    GamesOther,
	},
	"other": {
		"ebooks":    OtherEbooks,
		"comics":    OtherComics,
		"pictures":  OtherPictures,
		"covers":    OtherCovers,
		"physibles": OtherPhysibles,
		"other":     OtherOther,
	},
}

// Domain returns the domain name for an ID based on its hundreds digit,
// or "" when the ID falls outside the known partitions.
func Domain(id ID) string {
	switch id / 100 {
	case 1:
		return "audio"
	case 2:
		return "video"
	case 3:
		return "application"
	case 4:
		return "games"
	case 6:
		return "other"
	}
	return ""
}

// Valid reports whether id is part of the closed enumeration.
func Valid(id ID) bool {
	domain, ok := Categories[Domain(id)]
	if !ok {
		return false
	}
	for _, v := range domain {
		if v == id {
			return true
		}
	}
	return false
}
