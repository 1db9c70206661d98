// Package version tracks the running release and discovers newer ones.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/util"
	"github.com/lectern-cli/lectern/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent stable release tag from GitHub.
// Results are cached for two days to stay clear of API rate limits.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := http.Get("https://api.github.com/repos/lectern-cli/lectern/releases/latest")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
