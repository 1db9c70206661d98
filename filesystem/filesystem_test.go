package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Given the filesystem facade", t, func() {
		Convey("It defaults to the OS backend", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be swapped to an in-memory backend", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			Convey("And the in-memory backend round-trips file content", func() {
				So(API().WriteFile("probe.txt", []byte("ok"), 0644), ShouldBeNil)
				data, err := API().ReadFile("probe.txt")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "ok")
			})
		})
	})
}
