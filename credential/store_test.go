package credential

import (
	"testing"

	"github.com/lectern-cli/lectern/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given a store on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore("test-credential.json")

		valid := Credential{Authorization: "Bearer token-1", Cookie: "session=abc"}

		Convey("Save then Load round-trips the credential", func() {
			So(store.Save(valid), ShouldBeNil)

			loaded := store.Load()
			So(loaded.IsPresent(), ShouldBeTrue)
			So(loaded.MustGet(), ShouldResemble, valid)
		})

		Convey("Save is an idempotent overwrite", func() {
			So(store.Save(valid), ShouldBeNil)
			replacement := Credential{Authorization: "Bearer token-2", Cookie: "session=def"}
			So(store.Save(replacement), ShouldBeNil)
			So(store.Load().MustGet(), ShouldResemble, replacement)
		})

		Convey("Save rejects an invalid credential", func() {
			So(store.Save(Credential{Authorization: "nope", Cookie: "c"}), ShouldNotBeNil)
			So(store.Load().IsAbsent(), ShouldBeTrue)
		})

		Convey("Load on a missing file is absent", func() {
			So(store.Load().IsAbsent(), ShouldBeTrue)
		})

		Convey("Load on garbage bytes self-heals", func() {
			So(filesystem.API().WriteFile(store.Path(), []byte("{not json"), 0600), ShouldBeNil)

			So(store.Load().IsAbsent(), ShouldBeTrue)

			exists, err := filesystem.API().Exists(store.Path())
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Load on well-formed but invalid content self-heals", func() {
			So(filesystem.API().WriteFile(store.Path(), []byte(`{"authorization":"Basic x","cookie":"c"}`), 0600), ShouldBeNil)

			So(store.Load().IsAbsent(), ShouldBeTrue)

			exists, _ := filesystem.API().Exists(store.Path())
			So(exists, ShouldBeFalse)
		})

		Convey("Invalidate on a missing file does not panic", func() {
			So(store.Invalidate, ShouldNotPanic)
			So(store.Invalidate, ShouldNotPanic)
		})
	})
}
