package portal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/network"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Endpoint paths and the tenant identifier baked into every request.
const (
	locationsPath = "/v1/live/locations"
	schedulePath  = "/v1/live/schedule"
	detailPath    = "/v1/live/detail"

	tenantParam = "tenant_id"
	tenantID    = "1"
)

// Client performs authenticated GET requests against the portal.
// It carries exactly one credential pair and performs no retries; every
// failure propagates so the caller can decide on invalidation.
type Client struct {
	base string
	cred credential.Credential
	http *http.Client
}

// NewClient builds a client for the configured portal base URL.
func NewClient(cred credential.Credential) *Client {
	return &Client{
		base: viper.GetString(key.PortalBaseURL),
		cred: cred,
		http: network.Client,
	}
}

// Credential returns the pair this client authenticates with.
func (c *Client) Credential() credential.Credential {
	return c.cred
}

// get performs a single authenticated GET and decodes the envelope payload.
func get[T any](c *Client, path string, params url.Values) (T, error) {
	var zero T

	if params == nil {
		params = url.Values{}
	}
	params.Set(tenantParam, tenantID)

	req, err := http.NewRequest(http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", c.cred.Authorization)
	req.Header.Set("Cookie", c.cred.Cookie)
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("portal request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &TransportError{StatusCode: resp.StatusCode}
	}

	var envelope Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, fmt.Errorf("decode portal response: %w", err)
	}

	if envelope.Code != 0 {
		return zero, &ApplicationError{Code: envelope.Code, Message: envelope.Message}
	}

	return envelope.List, nil
}

// Locations fetches all campuses with their buildings.
func (c *Client) Locations() ([]Campus, error) {
	log.Debugf("fetching campus locations")
	return get[[]Campus](c, locationsPath, nil)
}

// Schedule fetches the time-slot groupings of one calendar day,
// optionally narrowed to a single building.
func (c *Client) Schedule(date time.Time, buildingID mo.Option[int]) ([]TimeSlot, error) {
	params := url.Values{}
	params.Set("date", date.Format("2006-01-02"))
	if id, ok := buildingID.Get(); ok {
		params.Set("building_id", strconv.Itoa(id))
	}

	log.Debugf("fetching schedule for %s", date.Format("2006-01-02"))
	return get[[]TimeSlot](c, schedulePath, params)
}

// LectureDetail fetches recording metadata for one scheduled session.
func (c *Client) LectureDetail(lectureID, subID int) (LectureDetail, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(lectureID))
	params.Set("sub_id", strconv.Itoa(subID))

	log.Debugf("fetching detail for lecture %d/%d", lectureID, subID)
	details, err := get[[]LectureDetail](c, detailPath, params)
	if err != nil {
		return LectureDetail{}, err
	}
	if len(details) == 0 {
		return LectureDetail{}, fmt.Errorf("lecture %d/%d not found", lectureID, subID)
	}
	return details[0], nil
}
