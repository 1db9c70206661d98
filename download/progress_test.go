package download

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBarWidth(t *testing.T) {
	Convey("Given a terminal and a title", t, func() {
		Convey("A title wider than the terminal still yields a positive width", func() {
			So(barWidth(80, strings.Repeat("x", 99)), ShouldEqual, 10)
		})

		Convey("A narrow terminal falls back to the fixed width", func() {
			So(barWidth(40, "lecture"), ShouldEqual, 28)
		})

		Convey("A wide terminal is capped", func() {
			So(barWidth(300, "lecture"), ShouldEqual, 48)
		})

		Convey("Mid-range terminals size to the remaining columns", func() {
			So(barWidth(80, strings.Repeat("x", 20)), ShouldEqual, 30)
		})
	})
}

func TestBar(t *testing.T) {
	Convey("Given a title longer than the terminal is wide", t, func() {
		progress, done := Bar(strings.Repeat("Advanced Topics in ", 6))

		Convey("Rendering progress never panics", func() {
			So(func() {
				progress(0, 100_000)
				progress(50_000, 100_000)
				progress(100_000, 100_000)
				done()
			}, ShouldNotPanic)
		})
	})

	Convey("Given an unknown total", t, func() {
		progress, done := Bar("lecture")

		Convey("The byte-counter path renders without panicking", func() {
			So(func() {
				progress(1024, 0)
				done()
			}, ShouldNotPanic)
		})
	})
}
