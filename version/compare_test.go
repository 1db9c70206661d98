package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two version strings", t, func() {
		Convey("When they are equal", func() {
			comp, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 0)
		})

		Convey("When the first is newer", func() {
			for _, pair := range [][2]string{
				{"2.0.0", "1.9.9"},
				{"1.3.0", "1.2.9"},
				{"1.2.4", "1.2.3"},
			} {
				comp, err := Compare(pair[0], pair[1])
				So(err, ShouldBeNil)
				So(comp, ShouldEqual, 1)
			}
		})

		Convey("When the first is older", func() {
			comp, err := Compare("0.9.0", "1.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, -1)
		})

		Convey("When a v prefix is present", func() {
			comp, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 0)
		})

		Convey("When a version is malformed", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
