package history

import (
	"testing"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/portal"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func sampleLecture() *SavedLecture {
	lecture := portal.LectureSummary{
		LectureID: 42,
		SubID:     7,
		Title:     "Operating Systems",
		Lecturer:  "Prof. Ritchie",
		Room:      "Main Hall 101",
		BeginTime: "2026-03-02 08:00:00",
		EndTime:   "2026-03-02 09:40:00",
	}
	video := portal.ResolvedVideo{
		URL:    "https://cdn.example.edu/recordings/42/7/index.m3u8",
		Format: portal.Segmented,
	}

	return NewSavedLecture(lecture, video, "/downloads/operating-systems.mp4")
}

func TestHistory(t *testing.T) {
	Convey("Given a capture record", t, func() {
		record := sampleLecture()

		Convey("When it is saved", func() {
			err := Save(record)

			Convey("Then it should not error", func() {
				So(err, ShouldBeNil)

				Convey("And it should be readable back with a timestamp", func() {
					saved, err := Get()
					So(err, ShouldBeNil)
					So(saved, ShouldContainKey, record.encode())
					So(saved[record.encode()].SavedAt, ShouldNotBeEmpty)
				})
			})
		})

		Convey("When the same lecture is saved twice", func() {
			So(Save(record), ShouldBeNil)

			again := sampleLecture()
			again.Path = "/downloads/operating-systems (retake).mp4"
			So(Save(again), ShouldBeNil)

			Convey("Then the later record wins", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved[record.encode()].Path, ShouldEqual, again.Path)
			})
		})

		Convey("When it is removed", func() {
			So(Save(record), ShouldBeNil)
			err := Remove(record)

			Convey("Then it should not error", func() {
				So(err, ShouldBeNil)

				Convey("And it should be gone", func() {
					saved, err := Get()
					So(err, ShouldBeNil)
					So(saved, ShouldNotContainKey, record.encode())
				})
			})
		})
	})
}
