package consts

// Version is the library version reported when no tag is injected.
const Version = "0.2.0"

// These will be injected via -ldflags at build time
var (
	gitSha string = "unknown"
	gitTag string = "unknown"
)

func GetBuildInfo() map[string]string {
	version := gitTag
	if version == "unknown" {
		version = Version
	}
	return map[string]string{
		"revision": gitSha,
		"version":  version,
	}
}
