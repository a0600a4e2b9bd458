// Package update replaces the running binary with the latest GitHub
// release asset for this platform.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const releaseURL = "https://api.github.com/repos/Clete2/zfs_space_visualizer/releases/latest"

// Version is stamped at build time via -ldflags.
var Version = "dev"

type release struct {
	TagName string  `json:"tag_name"`
	Assets  []asset `json:"assets"`
}

type asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

// assetName maps the platform onto the release artifact naming scheme.
func assetName(goos, goarch string) (string, error) {
	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	default:
		return "", fmt.Errorf("no release artifact for architecture %s", goarch)
	}
	switch goos {
	case "linux":
		return fmt.Sprintf("zfs_space_visualizer-%s-unknown-linux-musl", arch), nil
	case "darwin":
		return fmt.Sprintf("zfs_space_visualizer-%s-apple-darwin", arch), nil
	default:
		return "", fmt.Errorf("no release artifact for OS %s", goos)
	}
}

// Run checks the latest release and swaps the current executable for it
// when the version differs. Progress goes to out.
func Run(ctx context.Context, out io.Writer) error {
	client := &http.Client{Timeout: 30 * time.Second}

	latest, err := fetchLatest(ctx, client)
	if err != nil {
		return err
	}
	if latest.TagName == Version {
		fmt.Fprintf(out, "Already up to date (%s)\n", Version)
		return nil
	}

	wanted, err := assetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	var target *asset
	for i := range latest.Assets {
		if latest.Assets[i].Name == wanted {
			target = &latest.Assets[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("release %s has no asset %s", latest.TagName, wanted)
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	fmt.Fprintf(out, "Updating %s -> %s\n", Version, latest.TagName)
	if err := replaceBinary(ctx, client, target.DownloadURL, executable); err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated to %s\n", latest.TagName)
	return nil
}

func fetchLatest(ctx context.Context, client *http.Client) (*release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query latest release: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query latest release: unexpected status %s", resp.Status)
	}
	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return &rel, nil
}

// replaceBinary downloads to a temp file beside the executable and
// renames it into place so the swap is atomic on the same filesystem.
func replaceBinary(ctx context.Context, client *http.Client, url, executable string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download asset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download asset: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(executable), ".update-*")
	if err != nil {
		return fmt.Errorf("stage update: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write update: %w", err)
	}
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return fmt.Errorf("mark update executable: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flush update: %w", err)
	}
	if err := os.Rename(tmp.Name(), executable); err != nil {
		return fmt.Errorf("install update: %w", err)
	}
	return nil
}
