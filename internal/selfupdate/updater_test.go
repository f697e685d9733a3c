package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "prepdeck_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "prepdeck_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "prepdeck_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "prepdeck_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "prepdeck_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "prepdeck_Windows_x86_64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  prepdeck_Darwin_all.tar.gz\nnot-a-pair\n\ndef456  prepdeck_Linux_x86_64.tar.gz\na b c\n"
	want := map[string]string{
		"prepdeck_Darwin_all.tar.gz":   "abc123",
		"prepdeck_Linux_x86_64.tar.gz": "def456",
	}
	assert.Equal(t, want, parseChecksums([]byte(input)))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	h := sha256.Sum256(data)

	require.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho prepdeck")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "prepdeck", binaryContent)
		got, err := extractBinary(archive, "prepdeck_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "prepdeck.exe", binaryContent)
		got, err := extractBinary(archive, "prepdeck_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", binaryContent)
		_, err := extractBinary(archive, "prepdeck_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prepdeck")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-prepdeck-binary")
	archive := buildTarGz(t, "prepdeck", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	asset, err := assetName()
	require.NoError(t, err)

	releaseHandler := func(checksumLine string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/prepdeck/prepdeck/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case fmt.Sprintf("/prepdeck/prepdeck/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case "/prepdeck/prepdeck/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksumLine))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}
	}

	t.Run("happy path", func(t *testing.T) {
		// The test binary runs on linux/amd64 in CI; skip elsewhere so the
		// canned tar.gz matches the asset the updater requests.
		if filepath.Ext(asset) == ".zip" {
			t.Skip("zip asset platform")
		}

		dir := t.TempDir()
		execPath := filepath.Join(dir, "prepdeck")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := httptest.NewServer(releaseHandler(fmt.Sprintf("%s  %s\n", archiveHex, asset)))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("explicit target version skips the check", func(t *testing.T) {
		if filepath.Ext(asset) == ".zip" {
			t.Skip("zip asset platform")
		}

		dir := t.TempDir()
		execPath := filepath.Join(dir, "prepdeck")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		var checkHit bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/prepdeck/prepdeck/releases/latest" {
				checkHit = true
			}
			releaseHandler(fmt.Sprintf("%s  %s\n", archiveHex, asset))(w, r)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		err := checker.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v1.0.0",
			TargetVersion:  "v2.0.0",
		}, func(UpdateProgress) {})
		require.NoError(t, err)
		assert.False(t, checkHit, "latest-release endpoint should not be queried")
	})

	t.Run("dev build refuses to update", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badLine := fmt.Sprintf("%064d  %s\n", 0, asset)
		server := httptest.NewServer(releaseHandler(badLine))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing release asset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/prepdeck/prepdeck/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive holding a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Size:     int64(len(content)),
		Mode:     0755,
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// buildZip creates a zip archive holding a single file.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
