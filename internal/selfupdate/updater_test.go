package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin is universal", "darwin", "amd64", "lexio_Darwin_all.tar.gz", false},
		{"darwin arm64 same asset", "darwin", "arm64", "lexio_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "lexio_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "lexio_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "lexio_Linux_i386.tar.gz", false},
		{"windows ships zip", "windows", "amd64", "lexio_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "lexio_Windows_arm64.zip", false},
		{"freebsd unsupported", "freebsd", "amd64", "", true},
		{"mips unsupported", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAssetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "two assets",
			input: "1a2b3c  lexio_Linux_x86_64.tar.gz\n4d5e6f  lexio_Windows_x86_64.zip\n",
			want: map[string]string{
				"lexio_Linux_x86_64.tar.gz": "1a2b3c",
				"lexio_Windows_x86_64.zip":  "4d5e6f",
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "garbage lines ignored",
			input: "1a2b3c  lexio_Darwin_all.tar.gz\nnot-a-checksum-line\n\t\ntoo many fields here\n9f8e7d  source.tar.gz\n",
			want: map[string]string{
				"lexio_Darwin_all.tar.gz": "1a2b3c",
				"source.tar.gz":           "9f8e7d",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksumIndex([]byte(tt.input)))
		})
	}
}

func TestCheckSHA256(t *testing.T) {
	payload := []byte("release archive bytes")
	sum := sha256.Sum256(payload)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, checkSHA256(payload, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch wraps ErrChecksum", func(t *testing.T) {
		err := checkSHA256(payload, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestUnpackBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho lexio v2")

	t.Run("tar.gz asset", func(t *testing.T) {
		archive := tarGzWith(t, "lexio", binary)
		got, err := unpackBinary(archive, "lexio_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary nested in a directory", func(t *testing.T) {
		archive := tarGzWith(t, "lexio_Linux_x86_64/lexio", binary)
		got, err := unpackBinary(archive, "lexio_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("archive without the binary", func(t *testing.T) {
		archive := tarGzWith(t, "README.md", []byte("docs only"))
		_, err := unpackBinary(archive, "lexio_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lexio")
	require.NoError(t, os.WriteFile(target, []byte("v1 binary"), 0755))

	replacement := []byte("v2 binary")
	sum := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "original mode survives the swap")
}

// releaseServer serves a fake GitHub: the latest-release API endpoint plus
// download endpoints for the given tag's files.
func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/abhisek/lexio/releases/latest" {
			_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
			return
		}
		prefix := "/abhisek/lexio/releases/download/" + tag + "/"
		if body, ok := files[filepath.Base(r.URL.Path)]; ok && len(r.URL.Path) > len(prefix) {
			_, _ = w.Write(body)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binary := []byte("lexio v2 binary payload")
	archive := tarGzWith(t, "lexio", binary)
	archiveSum := sha256.Sum256(archive)

	asset, err := releaseAsset()
	require.NoError(t, err)
	checksums := []byte(hex.EncodeToString(archiveSum[:]) + "  " + asset + "\n")

	t.Run("full cycle replaces the binary", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "lexio")
		require.NoError(t, os.WriteFile(execPath, []byte("v1"), 0755))

		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": checksums,
		})
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
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("nothing newer", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", nil)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("corrupt download is rejected", func(t *testing.T) {
		wrong := []byte("0000000000000000000000000000000000000000000000000000000000000000  " + asset + "\n")
		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": wrong,
		})
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing release asset", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", nil)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// tarGzWith builds a gzipped tarball holding one regular file.
func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
