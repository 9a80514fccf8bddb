package drive

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type ChangesGetStartPageTokenCall struct {
	call *google.Call
}

// GetStartPageToken gets the starting pageToken for listing future changes.
func (r *ChangesService) GetStartPageToken() *ChangesGetStartPageTokenCall {
	c := &ChangesGetStartPageTokenCall{call: r.s.core.NewCall(http.MethodGet, "changes/startPageToken", nil)}
	return c
}

// DriveId sets the optional parameter "driveId": The ID of the shared drive for which
// the starting pageToken for listing future changes will be returned.
func (c *ChangesGetStartPageTokenCall) DriveId(driveId string) *ChangesGetStartPageTokenCall {
	c.call.SetQuery("driveId", driveId)
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *ChangesGetStartPageTokenCall) SupportsAllDrives(supportsAllDrives bool) *ChangesGetStartPageTokenCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ChangesGetStartPageTokenCall) Fields(s ...googleapi.Field) *ChangesGetStartPageTokenCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ChangesGetStartPageTokenCall) Context(ctx context.Context) *ChangesGetStartPageTokenCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ChangesGetStartPageTokenCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.changes.getStartPageToken" call.
func (c *ChangesGetStartPageTokenCall) Do(opts ...googleapi.CallOption) (*StartPageToken, error) {
	c.call.SetOptions(opts...)
	ret := &StartPageToken{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ChangesListCall struct {
	call *google.Call
}

// List lists the changes for a user or shared drive, starting at pageToken.
func (r *ChangesService) List(pageToken string) *ChangesListCall {
	c := &ChangesListCall{call: r.s.core.NewCall(http.MethodGet, "changes", nil)}
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// DriveId sets the optional parameter "driveId": The shared drive from which changes
// will be returned.
func (c *ChangesListCall) DriveId(driveId string) *ChangesListCall {
	c.call.SetQuery("driveId", driveId)
	return c
}

// IncludeItemsFromAllDrives sets the optional parameter "includeItemsFromAllDrives": Whether both My Drive
// and shared drive items should be included in results.
func (c *ChangesListCall) IncludeItemsFromAllDrives(includeItemsFromAllDrives bool) *ChangesListCall {
	c.call.SetQuery("includeItemsFromAllDrives", fmt.Sprint(includeItemsFromAllDrives))
	return c
}

// IncludeRemoved sets the optional parameter "includeRemoved": Whether to include changes
// indicating that items have been removed from the list of changes.
func (c *ChangesListCall) IncludeRemoved(includeRemoved bool) *ChangesListCall {
	c.call.SetQuery("includeRemoved", fmt.Sprint(includeRemoved))
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of changes to return
// per page.
func (c *ChangesListCall) PageSize(pageSize int64) *ChangesListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// RestrictToMyDrive sets the optional parameter "restrictToMyDrive": Whether to restrict the
// results to changes inside the My Drive hierarchy.
func (c *ChangesListCall) RestrictToMyDrive(restrictToMyDrive bool) *ChangesListCall {
	c.call.SetQuery("restrictToMyDrive", fmt.Sprint(restrictToMyDrive))
	return c
}

// Spaces sets the optional parameter "spaces": A comma-separated list of spaces to query
// within the corpora.
func (c *ChangesListCall) Spaces(spaces string) *ChangesListCall {
	c.call.SetQuery("spaces", spaces)
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *ChangesListCall) SupportsAllDrives(supportsAllDrives bool) *ChangesListCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ChangesListCall) Fields(s ...googleapi.Field) *ChangesListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ChangesListCall) Context(ctx context.Context) *ChangesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ChangesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.changes.list" call.
func (c *ChangesListCall) Do(opts ...googleapi.CallOption) (*ChangeList, error) {
	c.call.SetOptions(opts...)
	ret := &ChangeList{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
