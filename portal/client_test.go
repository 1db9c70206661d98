package portal

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

var testCred = credential.Credential{Authorization: "Bearer test-token", Cookie: "session=1"}

// newTestClient points a client at a stub portal.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	viper.Set(key.PortalBaseURL, server.URL)
	return NewClient(testCred)
}

func TestLocations(t *testing.T) {
	Convey("Given a portal serving one campus", t, func() {
		var gotAuth, gotCookie, gotTenant string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotCookie = r.Header.Get("Cookie")
			gotTenant = r.URL.Query().Get("tenant_id")
			fmt.Fprint(w, `{"code":0,"msg":"ok","total":1,"list":[
				{"id":1,"name":"Main Campus","buildings":[{"id":10,"name":"Science Hall"}]}
			]}`)
		})

		campuses, err := client.Locations()
		So(err, ShouldBeNil)

		Convey("The campus tree is decoded", func() {
			So(len(campuses), ShouldEqual, 1)
			So(campuses[0].Name, ShouldEqual, "Main Campus")
			So(campuses[0].Buildings[0].ID, ShouldEqual, 10)
		})

		Convey("Both credential headers and the tenant identifier are sent", func() {
			So(gotAuth, ShouldEqual, "Bearer test-token")
			So(gotCookie, ShouldEqual, "session=1")
			So(gotTenant, ShouldEqual, "1")
		})
	})
}

func TestSchedule(t *testing.T) {
	Convey("Given a portal serving a schedule", t, func() {
		var gotDate, gotBuilding string
		var hasBuilding bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotDate = r.URL.Query().Get("date")
			gotBuilding = r.URL.Query().Get("building_id")
			hasBuilding = r.URL.Query().Has("building_id")
			fmt.Fprint(w, `{"code":0,"msg":"","total":1,"list":[
				{"section":1,"begin_time":"08:00","end_time":"09:35","courses":[
					{"id":7,"sub_id":70,"title":"Calculus I","professor":"Li","location":"S-201",
					 "begin_time":"2026-03-02 08:00:00","end_time":"2026-03-02 09:35:00"}
				]}
			]}`)
		})

		date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		Convey("The date serializes as YYYY-MM-DD", func() {
			slots, err := client.Schedule(date, mo.None[int]())
			So(err, ShouldBeNil)
			So(gotDate, ShouldEqual, "2026-03-02")
			So(hasBuilding, ShouldBeFalse)
			So(slots[0].Lectures[0].LectureID, ShouldEqual, 7)
			So(slots[0].Lectures[0].SubID, ShouldEqual, 70)
		})

		Convey("A present building narrows the query", func() {
			_, err := client.Schedule(date, mo.Some(10))
			So(err, ShouldBeNil)
			So(gotBuilding, ShouldEqual, "10")
		})
	})
}

func TestLectureDetail(t *testing.T) {
	Convey("Given a portal serving lecture detail", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"code":0,"msg":"","total":1,"list":[
				{"title":"Calculus I","professor":"Li","location":"S-201",
				 "begin_time":"2026-03-02 08:00:00",
				 "sub_content":"{\"save_playback\":{\"contents\":\"https://cdn/x.mp4\"}}"}
			]}`)
		})

		detail, err := client.LectureDetail(7, 70)
		So(err, ShouldBeNil)
		So(detail.Title, ShouldEqual, "Calculus I")

		Convey("The doubly-encoded payload resolves", func() {
			resolved := ResolveVideo(detail)
			So(resolved.MustGet().URL, ShouldEqual, "https://cdn/x.mp4")
			So(resolved.MustGet().Format, ShouldEqual, Progressive)
		})
	})

	Convey("An empty detail list is an error", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"code":0,"msg":"","total":0,"list":[]}`)
		})

		_, err := client.LectureDetail(7, 70)
		So(err, ShouldNotBeNil)
	})
}

func TestErrorClassification(t *testing.T) {
	Convey("Given portal failures", t, func() {
		Convey("A non-2xx response is a TransportError", func() {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})

			_, err := client.Locations()
			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(transportErr.StatusCode, ShouldEqual, 401)
			So(IsAuthFailure(err), ShouldBeTrue)
		})

		Convey("A non-zero envelope code is an ApplicationError with the portal's message", func() {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"code":40001,"msg":"quota exceeded","total":0,"list":null}`)
			})

			_, err := client.Locations()
			var appErr *ApplicationError
			So(errors.As(err, &appErr), ShouldBeTrue)
			So(appErr.Message, ShouldEqual, "quota exceeded")
			So(IsAuthFailure(err), ShouldBeFalse)
		})

		Convey("Unauthorized message text classifies as an auth failure", func() {
			So(IsAuthFailure(&ApplicationError{Code: 7, Message: "Unauthorized request"}), ShouldBeTrue)
			So(IsAuthFailure(&ApplicationError{Code: 7, Message: "Forbidden"}), ShouldBeTrue)
			So(IsAuthFailure(&TransportError{StatusCode: 500}), ShouldBeFalse)
			So(IsAuthFailure(errors.New("plain")), ShouldBeFalse)
		})
	})
}
