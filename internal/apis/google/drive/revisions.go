package drive

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type RevisionsListCall struct {
	call *google.Call
}

// List lists a file's revisions.
func (r *RevisionsService) List(fileID string) *RevisionsListCall {
	c := &RevisionsListCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}/revisions", map[string]string{"fileId": fileID})}
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of revisions to
// return per page.
func (c *RevisionsListCall) PageSize(pageSize int64) *RevisionsListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The token for continuing a previous
// list request on the next page.
func (c *RevisionsListCall) PageToken(pageToken string) *RevisionsListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *RevisionsListCall) Fields(s ...googleapi.Field) *RevisionsListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *RevisionsListCall) Context(ctx context.Context) *RevisionsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *RevisionsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.revisions.list" call.
func (c *RevisionsListCall) Do(opts ...googleapi.CallOption) (*RevisionList, error) {
	c.call.SetOptions(opts...)
	ret := &RevisionList{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type RevisionsGetCall struct {
	call *google.Call
}

// Get gets a revision's metadata or content by ID.
func (r *RevisionsService) Get(fileID string, revisionID string) *RevisionsGetCall {
	c := &RevisionsGetCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}/revisions/{revisionId}", map[string]string{"fileId": fileID, "revisionId": revisionID})}
	return c
}

// AcknowledgeAbuse sets the optional parameter "acknowledgeAbuse": Whether the user is
// acknowledging the risk of downloading known malware or other abusive
// files.
func (c *RevisionsGetCall) AcknowledgeAbuse(acknowledgeAbuse bool) *RevisionsGetCall {
	c.call.SetQuery("acknowledgeAbuse", fmt.Sprint(acknowledgeAbuse))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *RevisionsGetCall) Fields(s ...googleapi.Field) *RevisionsGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *RevisionsGetCall) Context(ctx context.Context) *RevisionsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *RevisionsGetCall) Header() http.Header {
	return c.call.Header()
}

// Download fetches the API endpoint's "media" value, instead of the normal
// API response value. If the returned error is nil, the Response is guaranteed
// to have a 2xx status code. Callers must close the Response.Body as usual.
func (c *RevisionsGetCall) Download(opts ...googleapi.CallOption) (*http.Response, error) {
	c.call.SetOptions(opts...)
	return c.call.Download()
}

// Do executes the "drive.revisions.get" call.
func (c *RevisionsGetCall) Do(opts ...googleapi.CallOption) (*Revision, error) {
	c.call.SetOptions(opts...)
	ret := &Revision{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type RevisionsUpdateCall struct {
	call *google.Call
}

// Update updates a revision with patch semantics.
func (r *RevisionsService) Update(fileID string, revisionID string, revision *Revision) *RevisionsUpdateCall {
	c := &RevisionsUpdateCall{call: r.s.core.NewCall(http.MethodPatch, "files/{fileId}/revisions/{revisionId}", map[string]string{"fileId": fileID, "revisionId": revisionID})}
	c.call.SetBody(revision)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *RevisionsUpdateCall) Fields(s ...googleapi.Field) *RevisionsUpdateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *RevisionsUpdateCall) Context(ctx context.Context) *RevisionsUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *RevisionsUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.revisions.update" call.
func (c *RevisionsUpdateCall) Do(opts ...googleapi.CallOption) (*Revision, error) {
	c.call.SetOptions(opts...)
	ret := &Revision{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type RevisionsDeleteCall struct {
	call *google.Call
}

// Delete permanently deletes a file version. Only revisions of files with
// binary content can be deleted.
func (r *RevisionsService) Delete(fileID string, revisionID string) *RevisionsDeleteCall {
	c := &RevisionsDeleteCall{call: r.s.core.NewCall(http.MethodDelete, "files/{fileId}/revisions/{revisionId}", map[string]string{"fileId": fileID, "revisionId": revisionID})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *RevisionsDeleteCall) Fields(s ...googleapi.Field) *RevisionsDeleteCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *RevisionsDeleteCall) Context(ctx context.Context) *RevisionsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *RevisionsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.revisions.delete" call.
func (c *RevisionsDeleteCall) Do(opts ...googleapi.CallOption) error {
	c.call.SetOptions(opts...)
	_, err := c.call.Do(nil)
	return err
}
