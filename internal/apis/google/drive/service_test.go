package drive

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/apis/google"
	"github.com/custodia-labs/gapi/internal/transcode"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/drive/v3/"),
	)
	require.NoError(t, err)
	return svc
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestFilesList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/drive/v3/files", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "trashed = false", q.Get("q"))
		assert.Equal(t, "2", q.Get("pageSize"))
		for _, absent := range []string{"pageToken", "corpora", "orderBy", "spaces", "supportsAllDrives"} {
			assert.NotContains(t, q, absent)
		}

		writeJSON(w, `{
			"kind": "drive#fileList",
			"nextPageToken": "page-2",
			"files": [
				{"id": "f1", "name": "notes.txt", "size": "9007199254740993", "modifiedTime": "2024-01-15T10:30:00.000Z"},
				{"id": "f2", "name": "folder", "mimeType": "application/vnd.google-apps.folder"}
			]
		}`)
	})

	list, err := svc.Files.List().Q("trashed = false").PageSize(2).Do()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, list.HTTPStatusCode)
	assert.Equal(t, "page-2", list.NextPageToken)
	require.Len(t, list.Files, 2)

	f1 := list.Files[0]
	assert.Equal(t, int64(9007199254740993), f1.Size.Value())
	assert.True(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Equal(f1.ModifiedTime.Time))

	f2 := list.Files[1]
	assert.Nil(t, f2.Size)
	assert.True(t, f2.ModifiedTime.IsZero())
	assert.Equal(t, MimeTypeFolder, f2.MimeType)
}

func TestFilesList_PageTokenIsResubmittedByCaller(t *testing.T) {
	var tokens []string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.URL.Query().Get("pageToken"))
		writeJSON(w, `{"nextPageToken": "next"}`)
	})

	first, err := svc.Files.List().Do()
	require.NoError(t, err)
	_, err = svc.Files.List().PageToken(first.NextPageToken).Do()
	require.NoError(t, err)

	assert.Equal(t, []string{"", "next"}, tokens)
}

func TestFilesGet(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files/f1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("supportsAllDrives"))
		assert.Equal(t, "id,size,contentHints", r.URL.Query().Get("fields"))
		writeJSON(w, `{
			"id": "f1",
			"size": "1024",
			"quotaBytesUsed": "2048",
			"version": "17",
			"createdTime": "2023-12-31T23:59:59.999Z",
			"contentHints": {"thumbnail": {"image": "3q2+7w==", "mimeType": "image/png"}},
			"owners": [{"displayName": "Ada", "me": true}]
		}`)
	})

	f, err := svc.Files.Get("f1").SupportsAllDrives(true).Fields("id", "size", "contentHints").Do()

	require.NoError(t, err)
	assert.Equal(t, int64(1024), f.Size.Value())
	assert.Equal(t, int64(2048), f.QuotaBytesUsed.Value())
	assert.Equal(t, int64(17), f.Version.Value())
	assert.Equal(t, 999*int(time.Millisecond), f.CreatedTime.Nanosecond())
	require.NotNil(t, f.ContentHints)
	assert.Equal(t, transcode.Bytes{0xDE, 0xAD, 0xBE, 0xEF}, f.ContentHints.Thumbnail.Image)
	require.Len(t, f.Owners, 1)
	assert.True(t, f.Owners[0].Me)
}

func TestFilesGet_MalformedFieldFailsWholeCall(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"id": "f1", "size": "large"}`)
	})

	f, err := svc.Files.Get("f1").Do()

	require.Error(t, err)
	assert.Nil(t, f)
	var terr *transcode.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, transcode.KindInt64, terr.Kind)
}

func TestFilesGet_NotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, `{"error": {"code": 404, "message": "File not found: nope."}}`)
	})

	_, err := svc.Files.Get("nope").Do()

	var gerr *googleapi.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "File not found: nope.", gerr.Message)
	assert.True(t, google.IsNotFound(err))
}

func TestFilesGet_Download(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		assert.Equal(t, "true", r.URL.Query().Get("acknowledgeAbuse"))
		_, _ = w.Write([]byte("raw content"))
	})

	res, err := svc.Files.Get("f1").AcknowledgeAbuse(true).Download()
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "raw content", string(data))
}

func TestFilesCreate_EncodesTranscodedFields(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/drive/v3/files", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("keepRevisionForever"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"name":         "report.pdf",
			"parents":      []any{"folder-1"},
			"modifiedTime": "2024-01-15T10:30:00.000Z",
			"contentHints": map[string]any{
				"thumbnail": map[string]any{"image": "3q2+7w==", "mimeType": "image/png"},
			},
		}, body)

		writeJSON(w, `{"id": "new-id", "name": "report.pdf"}`)
	})

	f, err := svc.Files.Create(&File{
		Name:         "report.pdf",
		Parents:      []string{"folder-1"},
		ModifiedTime: transcode.NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
		ContentHints: &FileContentHints{Thumbnail: &FileContentHintsThumbnail{
			Image:    transcode.Bytes{0xDE, 0xAD, 0xBE, 0xEF},
			MimeType: "image/png",
		}},
	}).KeepRevisionForever(true).Do()

	require.NoError(t, err)
	assert.Equal(t, "new-id", f.Id)
}

func TestFilesCreate_Media(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload/drive/v3/files", r.URL.Path)
		assert.Equal(t, "multipart", r.URL.Query().Get("uploadType"))

		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		mr := multipart.NewReader(r.Body, params["boundary"])

		meta, err := mr.NextPart()
		require.NoError(t, err)
		var f File
		require.NoError(t, json.NewDecoder(meta).Decode(&f))
		assert.Equal(t, "hello.txt", f.Name)

		media, err := mr.NextPart()
		require.NoError(t, err)
		data, _ := io.ReadAll(media)
		assert.Equal(t, "hello drive", string(data))

		writeJSON(w, `{"id": "up-1", "size": "11"}`)
	})

	f, err := svc.Files.Create(&File{Name: "hello.txt"}).
		Media(strings.NewReader("hello drive"), "text/plain").
		Do()

	require.NoError(t, err)
	assert.Equal(t, "up-1", f.Id)
	assert.Equal(t, int64(11), f.Size.Value())
}

func TestFilesUpdateAndCopy(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/drive/v3/files/f1":
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "p2", r.URL.Query().Get("addParents"))
			assert.Equal(t, "p1", r.URL.Query().Get("removeParents"))
			writeJSON(w, `{"id": "f1", "parents": ["p2"]}`)
		case "/drive/v3/files/f1/copy":
			assert.Equal(t, http.MethodPost, r.Method)
			writeJSON(w, `{"id": "f1-copy"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	updated, err := svc.Files.Update("f1", &File{}).AddParents("p2").RemoveParents("p1").Do()
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, updated.Parents)

	copied, err := svc.Files.Copy("f1", &File{Name: "copy"}).Do()
	require.NoError(t, err)
	assert.Equal(t, "f1-copy", copied.Id)
}

func TestFilesUpdate_SendsFalse(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		data, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"trashed":false,"starred":false}`, string(data))
		writeJSON(w, `{"id": "f1", "trashed": false}`)
	})

	f, err := svc.Files.Update("f1", &File{
		Trashed: googleapi.Bool(false),
		Starred: googleapi.Bool(false),
	}).Do()

	require.NoError(t, err)
	require.NotNil(t, f.Trashed)
	assert.False(t, *f.Trashed)
	assert.Nil(t, f.Starred)
}

func TestFilesCreate_NilFile(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		assert.Equal(t, "{}", strings.TrimSpace(string(data)))
		writeJSON(w, `{"id": "untitled"}`)
	})

	f, err := svc.Files.Create(nil).Do()

	require.NoError(t, err)
	assert.Equal(t, "untitled", f.Id)
}

func TestFilesDeleteAndEmptyTrash(t *testing.T) {
	var paths []string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Files.Delete("f1").Do())
	require.NoError(t, svc.Files.EmptyTrash().Do())

	assert.Equal(t, []string{"/drive/v3/files/f1", "/drive/v3/files/trash"}, paths)
}

func TestFilesExport(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files/doc-1/export", r.URL.Path)
		assert.Equal(t, "text/plain", r.URL.Query().Get("mimeType"))
		_, _ = w.Write([]byte("exported text"))
	})

	res, err := svc.Files.Export("doc-1", "text/plain").Context(context.Background()).Download()
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "exported text", string(data))
}

func TestFilesGenerateIds(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files/generateIds", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("count"))
		assert.Equal(t, "drive", r.URL.Query().Get("space"))
		writeJSON(w, `{"ids": ["a", "b", "c"], "space": "drive"}`)
	})

	ids, err := svc.Files.GenerateIds().Count(3).Space("drive").Do()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids.Ids)
}

func TestAboutGet(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/about", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("fields"))
		writeJSON(w, `{
			"user": {"displayName": "Ada", "emailAddress": "ada@example.com"},
			"maxUploadSize": "5242880000000",
			"storageQuota": {"usage": "9223372036854775806", "usageInDrive": "0"}
		}`)
	})

	about, err := svc.About.Get().Do()

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", about.User.EmailAddress)
	assert.Equal(t, int64(5242880000000), about.MaxUploadSize.Value())
	assert.Equal(t, int64(9223372036854775806), about.StorageQuota.Usage.Value())
	require.NotNil(t, about.StorageQuota.UsageInDrive)
	assert.Equal(t, int64(0), about.StorageQuota.UsageInDrive.Value())
	assert.Nil(t, about.StorageQuota.Limit)
}

func TestChanges(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/drive/v3/changes/startPageToken":
			writeJSON(w, `{"startPageToken": "100"}`)
		case "/drive/v3/changes":
			assert.Equal(t, "100", r.URL.Query().Get("pageToken"))
			assert.Equal(t, "false", r.URL.Query().Get("includeRemoved"))
			writeJSON(w, `{
				"newStartPageToken": "101",
				"changes": [{"fileId": "f1", "time": "2024-01-15T10:30:00.000Z", "file": {"id": "f1", "size": "5"}}]
			}`)
		default:
			w.WriteHeader(http.StatusGone)
		}
	})

	start, err := svc.Changes.GetStartPageToken().Do()
	require.NoError(t, err)
	assert.Equal(t, "100", start.StartPageToken)

	list, err := svc.Changes.List(start.StartPageToken).IncludeRemoved(false).Do()
	require.NoError(t, err)
	assert.Equal(t, "101", list.NewStartPageToken)
	require.Len(t, list.Changes, 1)
	assert.Equal(t, int64(5), list.Changes[0].File.Size.Value())
	assert.Equal(t, 2024, list.Changes[0].Time.Year())
}

func TestPermissions(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/drive/v3/files/f1/permissions":
			assert.Equal(t, "false", r.URL.Query().Get("sendNotificationEmail"))
			var p Permission
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, "reader", p.Role)
			assert.Equal(t, 2025, p.ExpirationTime.Year())
			writeJSON(w, `{"id": "perm-1", "role": "reader", "type": "user"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/drive/v3/files/f1/permissions":
			writeJSON(w, `{"permissions": [{"id": "perm-1"}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/drive/v3/files/f1/permissions/perm-1":
			writeJSON(w, `{"id": "perm-1", "expirationTime": "2025-06-01T00:00:00Z"}`)
		case r.Method == http.MethodPatch:
			assert.Equal(t, "true", r.URL.Query().Get("removeExpiration"))
			writeJSON(w, `{"id": "perm-1", "role": "writer"}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	created, err := svc.Permissions.Create("f1", &Permission{
		Role:           "reader",
		Type:           "user",
		EmailAddress:   "bob@example.com",
		ExpirationTime: transcode.NewTime(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}).SendNotificationEmail(false).Do()
	require.NoError(t, err)
	assert.Equal(t, "perm-1", created.Id)

	list, err := svc.Permissions.List("f1").Do()
	require.NoError(t, err)
	assert.Len(t, list.Permissions, 1)

	got, err := svc.Permissions.Get("f1", "perm-1").Do()
	require.NoError(t, err)
	assert.Equal(t, time.June, got.ExpirationTime.Month())

	updated, err := svc.Permissions.Update("f1", "perm-1", &Permission{Role: "writer"}).RemoveExpiration(true).Do()
	require.NoError(t, err)
	assert.Equal(t, "writer", updated.Role)

	require.NoError(t, svc.Permissions.Delete("f1", "perm-1").Do())
}

func TestRevisions(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/drive/v3/files/f1/revisions":
			writeJSON(w, `{"revisions": [{"id": "r1", "size": "12", "modifiedTime": "2024-01-15T10:30:00.000Z"}]}`)
		case r.URL.Query().Get("alt") == "media":
			_, _ = w.Write([]byte("old content"))
		case r.Method == http.MethodPatch:
			writeJSON(w, `{"id": "r1", "keepForever": true}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, `{"id": "r1"}`)
		}
	})

	list, err := svc.Revisions.List("f1").PageSize(10).Do()
	require.NoError(t, err)
	require.Len(t, list.Revisions, 1)
	assert.Equal(t, int64(12), list.Revisions[0].Size.Value())

	res, err := svc.Revisions.Get("f1", "r1").Download()
	require.NoError(t, err)
	data, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, "old content", string(data))

	rev, err := svc.Revisions.Update("f1", "r1", &Revision{KeepForever: googleapi.Bool(true)}).Do()
	require.NoError(t, err)
	require.NotNil(t, rev.KeepForever)
	assert.True(t, *rev.KeepForever)

	require.NoError(t, svc.Revisions.Delete("f1", "r1").Do())
}

func TestNew_WithHTTPClient(t *testing.T) {
	svc, err := New(http.DefaultClient)
	require.NoError(t, err)
	assert.Equal(t, basePath, svc.Client().BasePath)

	_, err = New(nil)
	assert.Error(t, err)
}
