package cli

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driveEndpoint(url string) string {
	return url + "/drive/v3/"
}

func TestDriveFilesList(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{
		"nextPageToken": "page-2",
		"files": [{"id": "f1", "name": "notes.txt", "size": "9007199254740993"}]
	}`)

	out, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "list", "-q", "trashed = false", "--page-size", "10")

	require.NoError(t, err)
	require.Len(t, seen.all(), 1)
	req := seen.at(0)
	assert.Equal(t, "/drive/v3/files", req.Path)
	assert.Equal(t, "trashed = false", req.Query["q"][0])
	assert.Equal(t, "10", req.Query["pageSize"][0])
	assert.NotContains(t, req.Query, "pageToken")
	assert.NotContains(t, req.Query, "orderBy")
	assert.NotContains(t, req.Query, "supportsAllDrives")

	got := decodeOutput(t, out)
	assert.Equal(t, "page-2", got["nextPageToken"])
	files := got["files"].([]any)
	require.Len(t, files, 1)
	assert.Equal(t, "9007199254740993", files[0].(map[string]any)["size"])
}

func TestDriveFilesList_NextPage(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{"files": []}`)

	_, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "list", "--page-token", "page-2", "--all-drives")

	require.NoError(t, err)
	req := seen.at(0)
	assert.Equal(t, "page-2", req.Query["pageToken"][0])
	assert.Equal(t, "true", req.Query["includeItemsFromAllDrives"][0])
	assert.Equal(t, "true", req.Query["supportsAllDrives"][0])
}

func TestDriveFilesGet_Fields(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{"id": "f1", "name": "notes.txt"}`)

	out, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "get", "f1", "--fields", "id,name")

	require.NoError(t, err)
	assert.Equal(t, "/drive/v3/files/f1", seen.at(0).Path)
	assert.Equal(t, "id,name", seen.at(0).Query["fields"][0])
	assert.Equal(t, "notes.txt", decodeOutput(t, out)["name"])
}

func TestDriveFilesDownload_ToFile(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, "file content")
	dst := filepath.Join(t.TempDir(), "notes.txt")

	_, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "download", "f1", "-o", dst)

	require.NoError(t, err)
	assert.Equal(t, "media", seen.at(0).Query["alt"][0])
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(data))
}

func TestDriveFilesExport_RequiresMimeType(t *testing.T) {
	_, err := execute(t, "drive", "files", "export", "f1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mime-type")
}

func TestDriveFilesExport(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, "%PDF-1.7")

	out, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "export", "doc1", "--mime-type", "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "/drive/v3/files/doc1/export", seen.at(0).Path)
	assert.Equal(t, "application/pdf", seen.at(0).Query["mimeType"][0])
	assert.Equal(t, "%PDF-1.7", out)
}

func TestDriveFilesUpload(t *testing.T) {
	src := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n1,2\n"), 0600))
	srv, seen := fakeAPI(t, http.StatusOK, `{"id": "new-id", "name": "report.csv", "size": "8"}`)

	out, err := execute(t, "--endpoint", driveEndpoint(srv.URL),
		"drive", "files", "upload", src, "--parent", "folder-1", "--mime-type", "text/csv")

	require.NoError(t, err)
	req := seen.at(0)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/upload/drive/v3/files", req.Path)
	assert.Equal(t, "multipart", req.Query["uploadType"][0])
	assert.Contains(t, req.Header.Get("Content-Type"), "multipart/related")
	assert.Contains(t, string(req.Raw), `"name":"report.csv"`)
	assert.Contains(t, string(req.Raw), `"parents":["folder-1"]`)
	assert.Contains(t, string(req.Raw), "a,b\n1,2\n")
	assert.Equal(t, "new-id", decodeOutput(t, out)["id"])
}

func TestDriveFilesDelete(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusNoContent, "")

	_, err := execute(t, "--endpoint", driveEndpoint(srv.URL), "drive", "files", "delete", "f1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, seen.at(0).Method)
	assert.Equal(t, "/drive/v3/files/f1", seen.at(0).Path)
}

func TestDriveFilesGet_NotFound(t *testing.T) {
	srv, _ := fakeAPI(t, http.StatusNotFound,
		`{"error": {"code": 404, "message": "File not found: f9.", "errors": [{"reason": "notFound"}]}}`)

	_, err := execute(t, "--endpoint", driveEndpoint(srv.URL), "drive", "files", "get", "f9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get file failed (not found)")
	assert.Contains(t, err.Error(), "File not found: f9.")
}

func TestDriveChanges(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{"startPageToken": "1234"}`)

	out, err := execute(t, "--endpoint", driveEndpoint(srv.URL), "drive", "changes", "start-token")
	require.NoError(t, err)
	assert.Equal(t, "/drive/v3/changes/startPageToken", seen.at(0).Path)
	assert.Equal(t, "1234", decodeOutput(t, out)["startPageToken"])

	_, err = execute(t, "--endpoint", driveEndpoint(srv.URL), "drive", "changes", "list", "1234", "--page-size", "50")
	require.NoError(t, err)
	assert.Equal(t, "/drive/v3/changes", seen.at(1).Path)
	assert.Equal(t, "1234", seen.at(1).Query["pageToken"][0])
	assert.Equal(t, "50", seen.at(1).Query["pageSize"][0])
}

func TestDriveAbout_ConfiguredEndpoint(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{"user": {"displayName": "Ada"}}`)
	dir := t.TempDir()

	_, err := executeIn(t, dir, "config", "set", "endpoint.drive", driveEndpoint(srv.URL))
	require.NoError(t, err)
	out, err := executeIn(t, dir, "drive", "about")

	require.NoError(t, err)
	assert.Equal(t, "/drive/v3/about", seen.at(0).Path)
	assert.Equal(t, "*", seen.at(0).Query["fields"][0])
	assert.Contains(t, out, "Ada")
}
