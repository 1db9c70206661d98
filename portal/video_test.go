package portal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveVideo(t *testing.T) {
	Convey("Given lecture details with assorted sub_content", t, func() {
		Convey("A playlist URL resolves to the segmented format", func() {
			detail := LectureDetail{SubContent: `{"save_playback":{"contents":"https://x/y.m3u8"}}`}
			resolved := ResolveVideo(detail)
			So(resolved.IsPresent(), ShouldBeTrue)
			So(resolved.MustGet().URL, ShouldEqual, "https://x/y.m3u8")
			So(resolved.MustGet().Format, ShouldEqual, Segmented)
		})

		Convey("A direct file URL resolves to the progressive format", func() {
			detail := LectureDetail{SubContent: `{"save_playback":{"contents":"https://x/y.mp4"}}`}
			resolved := ResolveVideo(detail)
			So(resolved.IsPresent(), ShouldBeTrue)
			So(resolved.MustGet().URL, ShouldEqual, "https://x/y.mp4")
			So(resolved.MustGet().Format, ShouldEqual, Progressive)
		})

		Convey("Format detection ignores query strings", func() {
			detail := LectureDetail{SubContent: `{"save_playback":{"contents":"https://x/y.m3u8?sign=abc.mp4"}}`}
			So(ResolveVideo(detail).MustGet().Format, ShouldEqual, Segmented)
		})

		Convey("Empty sub_content means no recording", func() {
			So(ResolveVideo(LectureDetail{SubContent: ""}).IsAbsent(), ShouldBeTrue)
		})

		Convey("Malformed sub_content means no recording, not an error", func() {
			So(func() { ResolveVideo(LectureDetail{SubContent: "not json"}) }, ShouldNotPanic)
			So(ResolveVideo(LectureDetail{SubContent: "not json"}).IsAbsent(), ShouldBeTrue)
		})

		Convey("A document without save_playback means no recording", func() {
			So(ResolveVideo(LectureDetail{SubContent: `{"other":1}`}).IsAbsent(), ShouldBeTrue)
		})

		Convey("A playback entry with an empty address means no recording", func() {
			So(ResolveVideo(LectureDetail{SubContent: `{"save_playback":{"contents":""}}`}).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestFormatString(t *testing.T) {
	Convey("Formats render their names", t, func() {
		So(Progressive.String(), ShouldEqual, "progressive")
		So(Segmented.String(), ShouldEqual, "segmented")
	})
}
