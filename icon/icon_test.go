package icon

import (
	"testing"

	"github.com/lectern-cli/lectern/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestVariants(t *testing.T) {
	Convey("Given the icon registry", t, func() {
		Convey("Every registered icon renders under every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for id := range icons {
					So(Get(id), ShouldNotBeEmpty)
				}
			}
		})

		Convey("An unknown variant falls back to plain", func() {
			viper.Set(key.IconsVariant, "holographic")
			So(Get(Fail), ShouldEqual, "[!]")
		})
	})
}
