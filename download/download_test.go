package download

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

var testCred = credential.Credential{Authorization: "Bearer dl-token", Cookie: "c=1"}

func TestFetch(t *testing.T) {
	Convey("Given a server streaming a known payload", t, func() {
		filesystem.SetMemMapFs()
		payload := strings.Repeat("v", 100_000)

		var gotAuth, gotCookie string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotCookie = r.Header.Get("Cookie")
			w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
			fmt.Fprint(w, payload)
		}))
		defer server.Close()

		Convey("Fetch writes the full payload and reports monotonic progress", func() {
			var calls int
			var lastWritten, lastTotal int64
			err := Fetch(server.URL+"/lecture.mp4", "out/lecture.mp4", testCred, func(written, total int64) {
				So(written, ShouldBeGreaterThanOrEqualTo, lastWritten)
				lastWritten, lastTotal = written, total
				calls++
			})
			So(err, ShouldBeNil)

			data, readErr := filesystem.API().ReadFile("out/lecture.mp4")
			So(readErr, ShouldBeNil)
			So(len(data), ShouldEqual, len(payload))

			So(calls, ShouldBeGreaterThan, 0)
			So(lastWritten, ShouldEqual, int64(len(payload)))
			So(lastTotal, ShouldEqual, int64(len(payload)))

			Convey("Credential headers were attached", func() {
				So(gotAuth, ShouldEqual, "Bearer dl-token")
				So(gotCookie, ShouldEqual, "c=1")
			})
		})

		Convey("A nil progress callback is tolerated", func() {
			So(Fetch(server.URL+"/lecture.mp4", "out/quiet.mp4", testCred, nil), ShouldBeNil)
		})
	})

	Convey("Given a server streaming without a known length", t, func() {
		filesystem.SetMemMapFs()
		payload := strings.Repeat("v", 100_000)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// No Content-Length: net/http serves this chunked.
			fmt.Fprint(w, payload)
		}))
		defer server.Close()

		Convey("Fetch reports total as zero but still writes everything", func() {
			var lastWritten, lastTotal int64
			err := Fetch(server.URL+"/lecture.mp4", "out/chunked.mp4", testCred, func(written, total int64) {
				lastWritten, lastTotal = written, total
			})
			So(err, ShouldBeNil)
			So(lastTotal, ShouldEqual, 0)
			So(lastWritten, ShouldEqual, int64(len(payload)))

			data, readErr := filesystem.API().ReadFile("out/chunked.mp4")
			So(readErr, ShouldBeNil)
			So(len(data), ShouldEqual, len(payload))
		})
	})

	Convey("Given a server rejecting the request", t, func() {
		filesystem.SetMemMapFs()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		Convey("Fetch surfaces the status and writes nothing", func() {
			err := Fetch(server.URL+"/missing.mp4", "out/missing.mp4", testCred, nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")

			exists, _ := filesystem.API().Exists("out/missing.mp4")
			So(exists, ShouldBeFalse)
		})
	})
}
