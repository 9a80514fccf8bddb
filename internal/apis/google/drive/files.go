package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type FilesListCall struct {
	call *google.Call
}

// List lists the user's files. Only one page is returned; pass
// FileList.NextPageToken to PageToken for the next one.
func (r *FilesService) List() *FilesListCall {
	c := &FilesListCall{call: r.s.core.NewCall(http.MethodGet, "files", nil)}
	return c
}

// Corpora sets the optional parameter "corpora": Bodies of items (files or documents)
// to which the query applies: user, domain, drive or allDrives.
func (c *FilesListCall) Corpora(corpora string) *FilesListCall {
	c.call.SetQuery("corpora", corpora)
	return c
}

// DriveId sets the optional parameter "driveId": ID of the shared drive to search.
func (c *FilesListCall) DriveId(driveId string) *FilesListCall {
	c.call.SetQuery("driveId", driveId)
	return c
}

// IncludeItemsFromAllDrives sets the optional parameter "includeItemsFromAllDrives": Whether both My Drive
// and shared drive items should be included in results.
func (c *FilesListCall) IncludeItemsFromAllDrives(includeItemsFromAllDrives bool) *FilesListCall {
	c.call.SetQuery("includeItemsFromAllDrives", fmt.Sprint(includeItemsFromAllDrives))
	return c
}

// OrderBy sets the optional parameter "orderBy": A comma-separated list of sort keys.
func (c *FilesListCall) OrderBy(orderBy string) *FilesListCall {
	c.call.SetQuery("orderBy", orderBy)
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of files to return
// per page.
func (c *FilesListCall) PageSize(pageSize int64) *FilesListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The token for continuing a previous
// list request on the next page.
func (c *FilesListCall) PageToken(pageToken string) *FilesListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Q sets the optional parameter "q": A query for filtering the file results.
func (c *FilesListCall) Q(q string) *FilesListCall {
	c.call.SetQuery("q", q)
	return c
}

// Spaces sets the optional parameter "spaces": A comma-separated list of spaces to query
// within the corpora: drive and appDataFolder.
func (c *FilesListCall) Spaces(spaces string) *FilesListCall {
	c.call.SetQuery("spaces", spaces)
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesListCall) SupportsAllDrives(supportsAllDrives bool) *FilesListCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesListCall) Fields(s ...googleapi.Field) *FilesListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesListCall) Context(ctx context.Context) *FilesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.list" call.
func (c *FilesListCall) Do(opts ...googleapi.CallOption) (*FileList, error) {
	c.call.SetOptions(opts...)
	ret := &FileList{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type FilesGetCall struct {
	call *google.Call
}

// Get gets a file's metadata or content by ID.
func (r *FilesService) Get(fileID string) *FilesGetCall {
	c := &FilesGetCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}", map[string]string{"fileId": fileID})}
	return c
}

// AcknowledgeAbuse sets the optional parameter "acknowledgeAbuse": Whether the user is
// acknowledging the risk of downloading known malware or other abusive
// files. This is only applicable when alt=media.
func (c *FilesGetCall) AcknowledgeAbuse(acknowledgeAbuse bool) *FilesGetCall {
	c.call.SetQuery("acknowledgeAbuse", fmt.Sprint(acknowledgeAbuse))
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesGetCall) SupportsAllDrives(supportsAllDrives bool) *FilesGetCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesGetCall) Fields(s ...googleapi.Field) *FilesGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesGetCall) Context(ctx context.Context) *FilesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesGetCall) Header() http.Header {
	return c.call.Header()
}

// Download fetches the API endpoint's "media" value, instead of the normal
// API response value. If the returned error is nil, the Response is guaranteed
// to have a 2xx status code. Callers must close the Response.Body as usual.
func (c *FilesGetCall) Download(opts ...googleapi.CallOption) (*http.Response, error) {
	c.call.SetOptions(opts...)
	return c.call.Download()
}

// Do executes the "drive.files.get" call.
func (c *FilesGetCall) Do(opts ...googleapi.CallOption) (*File, error) {
	c.call.SetOptions(opts...)
	ret := &File{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type FilesCreateCall struct {
	call *google.Call
}

// Create creates a new file. Without Media only metadata is sent.
func (r *FilesService) Create(file *File) *FilesCreateCall {
	c := &FilesCreateCall{call: r.s.core.NewCall(http.MethodPost, "files", nil)}
	c.call.SetBody(file)
	return c
}

// IgnoreDefaultVisibility sets the optional parameter "ignoreDefaultVisibility": Whether to ignore
// the domain's default visibility settings for the created file.
func (c *FilesCreateCall) IgnoreDefaultVisibility(ignoreDefaultVisibility bool) *FilesCreateCall {
	c.call.SetQuery("ignoreDefaultVisibility", fmt.Sprint(ignoreDefaultVisibility))
	return c
}

// KeepRevisionForever sets the optional parameter "keepRevisionForever": Whether to set the
// 'keepForever' field in the new head revision.
func (c *FilesCreateCall) KeepRevisionForever(keepRevisionForever bool) *FilesCreateCall {
	c.call.SetQuery("keepRevisionForever", fmt.Sprint(keepRevisionForever))
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesCreateCall) SupportsAllDrives(supportsAllDrives bool) *FilesCreateCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Media specifies the media to upload. The file metadata is sent in the
// same multipart request.
func (c *FilesCreateCall) Media(r io.Reader, contentType string) *FilesCreateCall {
	c.call.SetMedia(r, contentType, uploadPath)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesCreateCall) Fields(s ...googleapi.Field) *FilesCreateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesCreateCall) Context(ctx context.Context) *FilesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.create" call.
func (c *FilesCreateCall) Do(opts ...googleapi.CallOption) (*File, error) {
	c.call.SetOptions(opts...)
	ret := &File{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type FilesUpdateCall struct {
	call *google.Call
}

// Update updates a file's metadata with patch semantics.
func (r *FilesService) Update(fileID string, file *File) *FilesUpdateCall {
	c := &FilesUpdateCall{call: r.s.core.NewCall(http.MethodPatch, "files/{fileId}", map[string]string{"fileId": fileID})}
	c.call.SetBody(file)
	return c
}

// AddParents sets the optional parameter "addParents": A comma-separated list of parent
// IDs to add.
func (c *FilesUpdateCall) AddParents(addParents string) *FilesUpdateCall {
	c.call.SetQuery("addParents", addParents)
	return c
}

// KeepRevisionForever sets the optional parameter "keepRevisionForever": Whether to set the
// 'keepForever' field in the new head revision.
func (c *FilesUpdateCall) KeepRevisionForever(keepRevisionForever bool) *FilesUpdateCall {
	c.call.SetQuery("keepRevisionForever", fmt.Sprint(keepRevisionForever))
	return c
}

// RemoveParents sets the optional parameter "removeParents": A comma-separated list of
// parent IDs to remove.
func (c *FilesUpdateCall) RemoveParents(removeParents string) *FilesUpdateCall {
	c.call.SetQuery("removeParents", removeParents)
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesUpdateCall) SupportsAllDrives(supportsAllDrives bool) *FilesUpdateCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesUpdateCall) Fields(s ...googleapi.Field) *FilesUpdateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesUpdateCall) Context(ctx context.Context) *FilesUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.update" call.
func (c *FilesUpdateCall) Do(opts ...googleapi.CallOption) (*File, error) {
	c.call.SetOptions(opts...)
	ret := &File{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type FilesCopyCall struct {
	call *google.Call
}

// Copy creates a copy of a file and applies any requested updates with
// patch semantics.
func (r *FilesService) Copy(fileID string, file *File) *FilesCopyCall {
	c := &FilesCopyCall{call: r.s.core.NewCall(http.MethodPost, "files/{fileId}/copy", map[string]string{"fileId": fileID})}
	c.call.SetBody(file)
	return c
}

// KeepRevisionForever sets the optional parameter "keepRevisionForever": Whether to set the
// 'keepForever' field in the new head revision.
func (c *FilesCopyCall) KeepRevisionForever(keepRevisionForever bool) *FilesCopyCall {
	c.call.SetQuery("keepRevisionForever", fmt.Sprint(keepRevisionForever))
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesCopyCall) SupportsAllDrives(supportsAllDrives bool) *FilesCopyCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesCopyCall) Fields(s ...googleapi.Field) *FilesCopyCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesCopyCall) Context(ctx context.Context) *FilesCopyCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesCopyCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.copy" call.
func (c *FilesCopyCall) Do(opts ...googleapi.CallOption) (*File, error) {
	c.call.SetOptions(opts...)
	ret := &File{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type FilesDeleteCall struct {
	call *google.Call
}

// Delete permanently deletes a file owned by the user without moving it to
// the trash.
func (r *FilesService) Delete(fileID string) *FilesDeleteCall {
	c := &FilesDeleteCall{call: r.s.core.NewCall(http.MethodDelete, "files/{fileId}", map[string]string{"fileId": fileID})}
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *FilesDeleteCall) SupportsAllDrives(supportsAllDrives bool) *FilesDeleteCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesDeleteCall) Fields(s ...googleapi.Field) *FilesDeleteCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesDeleteCall) Context(ctx context.Context) *FilesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.delete" call.
func (c *FilesDeleteCall) Do(opts ...googleapi.CallOption) error {
	c.call.SetOptions(opts...)
	_, err := c.call.Do(nil)
	return err
}

type FilesEmptyTrashCall struct {
	call *google.Call
}

// EmptyTrash permanently deletes all of the user's trashed files.
func (r *FilesService) EmptyTrash() *FilesEmptyTrashCall {
	c := &FilesEmptyTrashCall{call: r.s.core.NewCall(http.MethodDelete, "files/trash", nil)}
	return c
}

// DriveId sets the optional parameter "driveId": If set, empties the trash of the
// provided shared drive.
func (c *FilesEmptyTrashCall) DriveId(driveId string) *FilesEmptyTrashCall {
	c.call.SetQuery("driveId", driveId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesEmptyTrashCall) Fields(s ...googleapi.Field) *FilesEmptyTrashCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesEmptyTrashCall) Context(ctx context.Context) *FilesEmptyTrashCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesEmptyTrashCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.emptyTrash" call.
func (c *FilesEmptyTrashCall) Do(opts ...googleapi.CallOption) error {
	c.call.SetOptions(opts...)
	_, err := c.call.Do(nil)
	return err
}

type FilesExportCall struct {
	call *google.Call
}

// Export exports a Google Workspace document to the requested MIME type and
// returns exported byte content. Use Download to read the content.
func (r *FilesService) Export(fileID string, mimeType string) *FilesExportCall {
	c := &FilesExportCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}/export", map[string]string{"fileId": fileID})}
	c.call.SetQuery("mimeType", mimeType)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesExportCall) Fields(s ...googleapi.Field) *FilesExportCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesExportCall) Context(ctx context.Context) *FilesExportCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesExportCall) Header() http.Header {
	return c.call.Header()
}

// Download fetches the API endpoint's "media" value, instead of the normal
// API response value. If the returned error is nil, the Response is guaranteed
// to have a 2xx status code. Callers must close the Response.Body as usual.
func (c *FilesExportCall) Download(opts ...googleapi.CallOption) (*http.Response, error) {
	c.call.SetOptions(opts...)
	return c.call.Download()
}

type FilesGenerateIdsCall struct {
	call *google.Call
}

// GenerateIds generates a set of file IDs which can be provided in create or
// copy requests.
func (r *FilesService) GenerateIds() *FilesGenerateIdsCall {
	c := &FilesGenerateIdsCall{call: r.s.core.NewCall(http.MethodGet, "files/generateIds", nil)}
	return c
}

// Count sets the optional parameter "count": The number of IDs to return.
func (c *FilesGenerateIdsCall) Count(count int64) *FilesGenerateIdsCall {
	c.call.SetQuery("count", fmt.Sprint(count))
	return c
}

// Space sets the optional parameter "space": The space in which the IDs can be used to
// create new files: drive or appDataFolder.
func (c *FilesGenerateIdsCall) Space(space string) *FilesGenerateIdsCall {
	c.call.SetQuery("space", space)
	return c
}

// Type sets the optional parameter "type": The type of items which the IDs can be used
// for: files or shortcuts.
func (c *FilesGenerateIdsCall) Type(type_ string) *FilesGenerateIdsCall {
	c.call.SetQuery("type", type_)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *FilesGenerateIdsCall) Fields(s ...googleapi.Field) *FilesGenerateIdsCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *FilesGenerateIdsCall) Context(ctx context.Context) *FilesGenerateIdsCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *FilesGenerateIdsCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.files.generateIds" call.
func (c *FilesGenerateIdsCall) Do(opts ...googleapi.CallOption) (*GeneratedIds, error) {
	c.call.SetOptions(opts...)
	ret := &GeneratedIds{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
