package update

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAssetName(t *testing.T) {
	cases := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "zfs_space_visualizer-x86_64-unknown-linux-musl"},
		{"linux", "arm64", "zfs_space_visualizer-aarch64-unknown-linux-musl"},
		{"darwin", "amd64", "zfs_space_visualizer-x86_64-apple-darwin"},
		{"darwin", "arm64", "zfs_space_visualizer-aarch64-apple-darwin"},
	}
	for _, tc := range cases {
		got, err := assetName(tc.goos, tc.goarch)
		if err != nil {
			t.Fatalf("assetName(%s, %s): %v", tc.goos, tc.goarch, err)
		}
		if got != tc.want {
			t.Fatalf("assetName(%s, %s) = %q, want %q", tc.goos, tc.goarch, got, tc.want)
		}
	}
}

func TestAssetNameUnsupportedPlatform(t *testing.T) {
	if _, err := assetName("windows", "amd64"); err == nil {
		t.Fatalf("expected error for unsupported OS")
	}
	if _, err := assetName("linux", "riscv64"); err == nil {
		t.Fatalf("expected error for unsupported architecture")
	}
}

func TestReleaseDecoding(t *testing.T) {
	body := `{
		"tag_name": "v1.2.3",
		"assets": [
			{"name": "zfs_space_visualizer-x86_64-unknown-linux-musl",
			 "browser_download_url": "https://example.com/dl/linux"}
		]
	}`
	var rel release
	if err := json.NewDecoder(strings.NewReader(body)).Decode(&rel); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rel.TagName != "v1.2.3" {
		t.Fatalf("unexpected tag %q", rel.TagName)
	}
	if len(rel.Assets) != 1 || rel.Assets[0].DownloadURL != "https://example.com/dl/linux" {
		t.Fatalf("unexpected assets: %+v", rel.Assets)
	}
}
