// Package download fetches LWJGL artifacts into the local cache directory.
// There is deliberately no retry machinery: a failed download ends the run.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/fs"
	"github.com/CoolCat467/fix-lwjgl/src/print"
)

// Bodies matching either sentinel are treated as "file does not exist" even
// when the server answered 200. Some mirrors serve error documents with a
// success status, so the status check alone is not enough. Known risk: a
// legitimate file containing one of these byte strings is misreported.
var notFoundSentinels = [][]byte{
	[]byte("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Error>"),
	[]byte("404: Not Found"),
}

// Client performs HTTP downloads subject to the configured download policy.
// A zero timeout means requests are unbounded.
type Client struct {
	HTTP      HTTPDoer
	UserAgent string

	allowed bool
}

// New returns a client sharing one underlying connection pool across all
// downloads of a resolution pass.
func New(allowed bool, timeout time.Duration, userAgent string) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: userAgent,
		allowed:   allowed,
	}
}

// Fetch returns the body found at location. Downloading while administratively
// disabled is a fatal error rather than a skip.
func (c *Client) Fetch(ctx context.Context, location string) ([]byte, error) {
	if !c.allowed {
		return nil, errors.Errorf(
			"not allowed to download %q because of configuration file", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "binary/octet-stream, */*")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download from %s", location)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("failed to download from %s: status %s", location, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body from %s", location)
	}
	return data, nil
}

// File downloads one URL into folder, keeping the URL's base filename.
// Existing files are left alone. Returns the path written or found.
func (c *Client) File(ctx context.Context, location, folder string) (string, error) {
	filename, err := baseName(location)
	if err != nil {
		return "", err
	}
	target := filepath.Join(folder, filename)
	if fs.Exists(target) {
		return target, nil
	}

	print.Verb("attempting to download", location, "to", target)
	data, err := c.Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	for _, sentinel := range notFoundSentinels {
		if bytes.Contains(data, sentinel) {
			return "", errors.Errorf("%q does not exist according to %q", filename, location)
		}
	}

	// Executable bit so bundled natives work once extracted by the JVM.
	if err := fs.WriteFileAtomic(target, data, fs.PermDirShared, fs.PermFileExec); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", target)
	}
	return target, nil
}

// Files downloads every URL into folder concurrently. The first failure
// cancels the remaining downloads and is returned; there is no partial-result
// recovery.
func (c *Client) Files(ctx context.Context, urls []string, folder string) error {
	if !fs.Exists(folder) {
		print.Info(fmt.Sprintf("%q does not exist, creating it.", folder))
		if err := fs.EnsureDir(folder, fs.PermDirShared); err != nil {
			return errors.Wrapf(err, "failed to create %s", folder)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, location := range urls {
		location := location
		group.Go(func() error {
			_, err := c.File(ctx, location, folder)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	print.Info(len(urls), "files downloaded.")
	return nil
}

func baseName(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse URL %s", location)
	}
	return path.Base(u.Path), nil
}
