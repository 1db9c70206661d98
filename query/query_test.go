package query

import (
	"testing"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestRemember(t *testing.T) {
	Convey("Given a filter keyword", t, func() {
		Convey("When it is remembered", func() {
			err := Remember("Distributed Systems", 1)

			Convey("Then it should not error", func() {
				So(err, ShouldBeNil)

				Convey("And a matching suggestion should come back", func() {
					suggestion := Suggest("distributed")
					So(suggestion.IsPresent(), ShouldBeTrue)
					So(suggestion.MustGet(), ShouldEqual, "distributed systems")
				})
			})
		})

		Convey("When the keyword is blank", func() {
			err := Remember("   ", 1)

			Convey("Then it should be dropped without error", func() {
				So(err, ShouldBeNil)
				So(SuggestMany(""), ShouldNotContain, "")
			})
		})
	})
}

func TestSuggestMany(t *testing.T) {
	Convey("Given several remembered keywords with different ranks", t, func() {
		So(Remember("linear algebra", 1), ShouldBeNil)
		So(Remember("linear algebra", 5), ShouldBeNil)
		So(Remember("linguistics", 1), ShouldBeNil)

		Convey("When suggestions are requested", func() {
			suggestions := SuggestMany("lin")

			Convey("Then the most used keyword should come first", func() {
				So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
				So(suggestions[0], ShouldEqual, "linear algebra")
			})
		})

		Convey("When suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			Convey("Then nothing should be suggested", func() {
				So(SuggestMany("lin"), ShouldBeEmpty)
			})
		})
	})
}
