package portal

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/lectern-cli/lectern/log"
	"github.com/samber/mo"
)

// Format distinguishes the two supported streaming formats.
type Format int

const (
	// Progressive is a single-file streamable video (direct download).
	Progressive Format = iota
	// Segmented is a playlist-based format requiring a remux step.
	Segmented
)

func (f Format) String() string {
	if f == Segmented {
		return "segmented"
	}
	return "progressive"
}

// ResolvedVideo is a playable address and its detected format.
type ResolvedVideo struct {
	URL    string
	Format Format
}

// segmentedExt is the playlist extension identifying the segmented format.
// The API never states the format explicitly; it is derived from the URL path.
const segmentedExt = ".m3u8"

// subContent models the inner JSON document embedded in LectureDetail.
type subContent struct {
	SavePlayback *savePlayback `json:"save_playback"`
}

type savePlayback struct {
	Contents string `json:"contents"`
	Duration int    `json:"contents_duration"`
}

// ResolveVideo extracts the playable address from a lecture detail.
//
// The detail's sub_content field is a second, independently encoded JSON
// document. Absent, empty, or malformed content, or a present document
// without a playback entry, all mean "no recording available": a normal
// value, never an error. Parse failures are logged and swallowed.
func ResolveVideo(detail LectureDetail) mo.Option[ResolvedVideo] {
	if strings.TrimSpace(detail.SubContent) == "" {
		return mo.None[ResolvedVideo]()
	}

	var inner subContent
	if err := json.Unmarshal([]byte(detail.SubContent), &inner); err != nil {
		log.Warnf("undecodable sub_content for %q: %v", detail.Title, err)
		return mo.None[ResolvedVideo]()
	}

	if inner.SavePlayback == nil || inner.SavePlayback.Contents == "" {
		return mo.None[ResolvedVideo]()
	}

	address := inner.SavePlayback.Contents
	return mo.Some(ResolvedVideo{
		URL:    address,
		Format: detectFormat(address),
	})
}

// detectFormat inspects the URL path for the segmented-playlist extension.
func detectFormat(address string) Format {
	parsed, err := url.Parse(address)
	if err != nil {
		// Fall back to a raw suffix check on unparseable addresses.
		if strings.HasSuffix(address, segmentedExt) {
			return Segmented
		}
		return Progressive
	}

	if strings.HasSuffix(parsed.Path, segmentedExt) {
		return Segmented
	}
	return Progressive
}
