package portal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFlatten(t *testing.T) {
	Convey("Given time-slot groupings", t, func() {
		slots := []TimeSlot{
			{Section: 1, Lectures: []LectureSummary{{Title: "Algebra"}, {Title: "Biology"}}},
			{Section: 2, Lectures: nil},
			{Section: 3, Lectures: []LectureSummary{{Title: "Advanced Algebra"}}},
		}

		Convey("Flatten preserves slot and in-slot order", func() {
			flat := Flatten(slots)
			So(len(flat), ShouldEqual, 3)
			So(flat[0].Title, ShouldEqual, "Algebra")
			So(flat[1].Title, ShouldEqual, "Biology")
			So(flat[2].Title, ShouldEqual, "Advanced Algebra")
		})
	})
}

func TestFilterLectures(t *testing.T) {
	Convey("Given a flattened lecture sequence", t, func() {
		lectures := []LectureSummary{
			{Title: "Algebra", Lecturer: "Chen", Room: "A-101"},
			{Title: "Biology", Lecturer: "Okafor", Room: "B-202"},
			{Title: "Advanced Algebra", Lecturer: "Chen", Room: "A-103"},
		}

		Convey("A lowercase keyword matches titles case-insensitively, order preserved", func() {
			got := FilterLectures(lectures, "algebra")
			So(len(got), ShouldEqual, 2)
			So(got[0].Title, ShouldEqual, "Algebra")
			So(got[1].Title, ShouldEqual, "Advanced Algebra")
		})

		Convey("An uppercase keyword matches the same set", func() {
			So(FilterLectures(lectures, "ALGEBRA"), ShouldResemble, FilterLectures(lectures, "algebra"))
		})

		Convey("Lecturer and room fields also match", func() {
			So(len(FilterLectures(lectures, "okafor")), ShouldEqual, 1)
			So(len(FilterLectures(lectures, "a-10")), ShouldEqual, 2)
		})

		Convey("An empty keyword keeps everything", func() {
			So(FilterLectures(lectures, "  "), ShouldResemble, lectures)
		})

		Convey("No match yields an empty sequence", func() {
			So(FilterLectures(lectures, "chemistry"), ShouldBeEmpty)
		})
	})
}
