// Package download moves resolved videos onto the local filesystem.
//
// Progressive sources are streamed directly; segmented (playlist) sources
// are delegated to an external transcoder that remuxes into a single file.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/network"
	"github.com/spf13/viper"
)

// Progress reports bytes transferred so far and, when known, the total
// expected bytes (zero when the server does not announce a length).
// It must not block; it is called from the transfer loop.
type Progress func(written, total int64)

// copyBufferSize is the chunk size of the sequential transfer loop.
const copyBufferSize = 32 * 1024

// Fetch streams a progressive video to dest, reporting progress after each
// chunk. Both the response body and the destination file are released on
// every exit path; on error the partial file is left in place.
func Fetch(address, dest string, cred credential.Credential, progress Progress) error {
	req, err := http.NewRequest(http.MethodGet, address, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("Authorization", cred.Authorization)
	req.Header.Set("Cookie", cred.Cookie)
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download returned HTTP %d", resp.StatusCode)
	}

	if err := filesystem.API().MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	sink, err := filesystem.API().Create(dest)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer func() { _ = sink.Close() }()

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	var written int64
	buf := make([]byte, copyBufferSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := sink.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write destination: %w", writeErr)
			}
			written += int64(n)
			if progress != nil {
				progress(written, total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read stream: %w", readErr)
		}
	}

	log.Infof("downloaded %s (%d bytes)", dest, written)
	return nil
}

// Transcode delegates a segmented source to the configured external
// transcoder, passing the credential pair as raw request headers.
// The invocation contract (argument order, header formatting) is fixed.
func Transcode(address, dest string, cred credential.Credential) error {
	binary := viper.GetString(key.DownloadTranscoder)
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("transcoder %q not found in PATH: %w", binary, err)
	}

	if err := filesystem.API().MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	headers := fmt.Sprintf("Authorization: %s\r\nCookie: %s\r\n", cred.Authorization, cred.Cookie)
	cmd := exec.Command(path,
		"-headers", headers,
		"-user_agent", constant.UserAgent,
		"-i", address,
		"-c", "copy",
		"-y", dest,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("remuxing %s via %s", address, binary)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("transcoder failed: %w", err)
	}
	return nil
}
