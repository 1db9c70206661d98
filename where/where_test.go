package where

import (
	"path/filepath"
	"testing"

	"github.com/lectern-cli/lectern/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		t.Setenv(EnvConfigPath, filepath.Join("custom", "conf"))

		Convey("Config resolves to the override", func() {
			So(Config(), ShouldEqual, filepath.Join("custom", "conf"))
		})

		Convey("Logs nests under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("custom", "conf", "logs"))
		})

		Convey("History nests under the config directory", func() {
			So(History(), ShouldEqual, filepath.Join("custom", "conf", "history.json"))
		})
	})

	Convey("The credential path stays relative to the working directory", t, func() {
		So(Credential(), ShouldEqual, "lectern-credential.json")
		So(filepath.IsAbs(Credential()), ShouldBeFalse)
	})
}
