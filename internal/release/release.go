// Package release fetches CSS build binaries from GitHub releases and
// records their provenance.
//
// The daisy style tracks the latest release of the bundled daisyUI build
// of Tailwind; the vanilla style is pinned to a known Tailwind tag until
// v4 stabilizes.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/petal-dev/petal/internal/errors"
)

const (
	daisyRepo      = "banditburai/fastwindcss"
	vanillaRepo    = "tailwindlabs/tailwindcss"
	vanillaVersion = "v4.0.0-beta.9"
)

// Info is the subset of the GitHub release payload petal needs.
type Info struct {
	TagName string  `json:"tag_name"`
	ID      int64   `json:"id"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Client talks to the GitHub releases API. APIBase and DownloadBase are
// overridable for tests.
type Client struct {
	APIBase      string
	DownloadBase string
	HTTP         *http.Client
}

// NewClient returns a client against the real GitHub endpoints.
func NewClient() *Client {
	return &Client{
		APIBase:      "https://api.github.com",
		DownloadBase: "https://github.com",
		HTTP:         &http.Client{Timeout: 30 * time.Second},
	}
}

// apiURL returns the release-info endpoint for a style.
func (c *Client) apiURL(style string) string {
	if style == "daisy" {
		return fmt.Sprintf("%s/repos/%s/releases/latest", c.APIBase, daisyRepo)
	}
	return fmt.Sprintf("%s/repos/%s/releases/tags/%s", c.APIBase, vanillaRepo, vanillaVersion)
}

// downloadURL returns the asset URL for a binary name.
func (c *Client) downloadURL(style, binary string) string {
	if style == "daisy" {
		return fmt.Sprintf("%s/%s/releases/latest/download/%s", c.DownloadBase, daisyRepo, binary)
	}
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", c.DownloadBase, vanillaRepo, vanillaVersion, binary)
}

// FetchInfo retrieves release information for the given style.
func (c *Client) FetchInfo(ctx context.Context, style string) (*Info, error) {
	url := c.apiURL(style)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetwork("release.FetchInfo", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.NewNetwork("release.FetchInfo", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.NewNetwork("release.FetchInfo", url,
			fmt.Errorf("unexpected status %s: %s", resp.Status, body))
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.NewNetwork("release.FetchInfo", url, err)
	}
	return &info, nil
}

// UpToDate reports whether current already satisfies latest. Tags that do
// not parse as semver fall back to string equality, so an exotic tag still
// triggers a re-download only when it actually changed.
func UpToDate(current, latest string) bool {
	if current == "" {
		return false
	}
	cv, errC := semver.NewVersion(current)
	lv, errL := semver.NewVersion(latest)
	if errC != nil || errL != nil {
		return current == latest
	}
	return !cv.LessThan(lv)
}
