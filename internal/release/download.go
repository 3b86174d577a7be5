package release

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
)

// Download fetches the platform binary for cfg's style into destDir and
// returns its provenance. The transfer streams through a temp file that
// is renamed into place only after the hash is computed, so an
// interrupted download never leaves a half-written binary behind.
func (c *Client) Download(ctx context.Context, cfg *config.ProjectConfig, destDir string) (*config.BinaryMetadata, string, error) {
	info, err := c.FetchInfo(ctx, cfg.Style)
	if err != nil {
		return nil, "", err
	}

	binary := cfg.BinaryName()
	dest := filepath.Join(destDir, binary)
	url := c.downloadURL(cfg.Style, binary)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.NewNetwork("release.Download", url, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", errors.NewNetwork("release.Download", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.NewNetwork("release.Download", url,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, "", errors.NewIO("release.Download", destDir, err)
	}

	sha, err := streamToFile(resp.Body, dest)
	if err != nil {
		return nil, "", err
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(dest, 0o755); err != nil {
			return nil, "", errors.NewIO("release.Download", dest, err)
		}
	}

	meta := &config.BinaryMetadata{
		Style:        cfg.Style,
		Version:      info.TagName,
		DownloadedAt: time.Now().UTC(),
		SHA:          sha,
		ReleaseID:    info.ID,
	}
	return meta, dest, nil
}

// streamToFile copies r to dest via temp-then-rename, hashing as it goes.
// Returns the hash as "sha256:<hex>".
func streamToFile(r io.Reader, dest string) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return "", errors.NewIO("release.Download", dest, err)
	}
	tmpName := tmp.Name()

	hasher := sha256.New()
	_, copyErr := io.Copy(io.MultiWriter(tmp, hasher), r)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpName)
		if copyErr == nil {
			copyErr = closeErr
		}
		return "", errors.NewIO("release.Download", dest, copyErr)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", errors.NewIO("release.Download", dest, err)
	}
	return "sha256:" + hex.EncodeToString(hasher.Sum(nil)), nil
}
