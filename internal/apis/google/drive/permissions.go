package drive

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type PermissionsListCall struct {
	call *google.Call
}

// List lists a file's or shared drive's permissions.
func (r *PermissionsService) List(fileID string) *PermissionsListCall {
	c := &PermissionsListCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}/permissions", map[string]string{"fileId": fileID})}
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of permissions to
// return per page.
func (c *PermissionsListCall) PageSize(pageSize int64) *PermissionsListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The token for continuing a previous
// list request on the next page.
func (c *PermissionsListCall) PageToken(pageToken string) *PermissionsListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *PermissionsListCall) SupportsAllDrives(supportsAllDrives bool) *PermissionsListCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PermissionsListCall) Fields(s ...googleapi.Field) *PermissionsListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PermissionsListCall) Context(ctx context.Context) *PermissionsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PermissionsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.permissions.list" call.
func (c *PermissionsListCall) Do(opts ...googleapi.CallOption) (*PermissionList, error) {
	c.call.SetOptions(opts...)
	ret := &PermissionList{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type PermissionsGetCall struct {
	call *google.Call
}

// Get gets a permission by ID.
func (r *PermissionsService) Get(fileID string, permissionID string) *PermissionsGetCall {
	c := &PermissionsGetCall{call: r.s.core.NewCall(http.MethodGet, "files/{fileId}/permissions/{permissionId}", map[string]string{"fileId": fileID, "permissionId": permissionID})}
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *PermissionsGetCall) SupportsAllDrives(supportsAllDrives bool) *PermissionsGetCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PermissionsGetCall) Fields(s ...googleapi.Field) *PermissionsGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PermissionsGetCall) Context(ctx context.Context) *PermissionsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PermissionsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.permissions.get" call.
func (c *PermissionsGetCall) Do(opts ...googleapi.CallOption) (*Permission, error) {
	c.call.SetOptions(opts...)
	ret := &Permission{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type PermissionsCreateCall struct {
	call *google.Call
}

// Create creates a permission for a file or shared drive.
func (r *PermissionsService) Create(fileID string, permission *Permission) *PermissionsCreateCall {
	c := &PermissionsCreateCall{call: r.s.core.NewCall(http.MethodPost, "files/{fileId}/permissions", map[string]string{"fileId": fileID})}
	c.call.SetBody(permission)
	return c
}

// EmailMessage sets the optional parameter "emailMessage": A plain text custom message to
// include in the notification email.
func (c *PermissionsCreateCall) EmailMessage(emailMessage string) *PermissionsCreateCall {
	c.call.SetQuery("emailMessage", emailMessage)
	return c
}

// SendNotificationEmail sets the optional parameter "sendNotificationEmail": Whether to send a
// notification email when sharing to users or groups.
func (c *PermissionsCreateCall) SendNotificationEmail(sendNotificationEmail bool) *PermissionsCreateCall {
	c.call.SetQuery("sendNotificationEmail", fmt.Sprint(sendNotificationEmail))
	return c
}

// TransferOwnership sets the optional parameter "transferOwnership": Whether to transfer
// ownership to the specified user and downgrade the current owner to a
// writer.
func (c *PermissionsCreateCall) TransferOwnership(transferOwnership bool) *PermissionsCreateCall {
	c.call.SetQuery("transferOwnership", fmt.Sprint(transferOwnership))
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *PermissionsCreateCall) SupportsAllDrives(supportsAllDrives bool) *PermissionsCreateCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PermissionsCreateCall) Fields(s ...googleapi.Field) *PermissionsCreateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PermissionsCreateCall) Context(ctx context.Context) *PermissionsCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PermissionsCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.permissions.create" call.
func (c *PermissionsCreateCall) Do(opts ...googleapi.CallOption) (*Permission, error) {
	c.call.SetOptions(opts...)
	ret := &Permission{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type PermissionsUpdateCall struct {
	call *google.Call
}

// Update updates a permission with patch semantics.
func (r *PermissionsService) Update(fileID string, permissionID string, permission *Permission) *PermissionsUpdateCall {
	c := &PermissionsUpdateCall{call: r.s.core.NewCall(http.MethodPatch, "files/{fileId}/permissions/{permissionId}", map[string]string{"fileId": fileID, "permissionId": permissionID})}
	c.call.SetBody(permission)
	return c
}

// RemoveExpiration sets the optional parameter "removeExpiration": Whether to remove the
// expiration date.
func (c *PermissionsUpdateCall) RemoveExpiration(removeExpiration bool) *PermissionsUpdateCall {
	c.call.SetQuery("removeExpiration", fmt.Sprint(removeExpiration))
	return c
}

// TransferOwnership sets the optional parameter "transferOwnership": Whether to transfer
// ownership to the specified user.
func (c *PermissionsUpdateCall) TransferOwnership(transferOwnership bool) *PermissionsUpdateCall {
	c.call.SetQuery("transferOwnership", fmt.Sprint(transferOwnership))
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *PermissionsUpdateCall) SupportsAllDrives(supportsAllDrives bool) *PermissionsUpdateCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PermissionsUpdateCall) Fields(s ...googleapi.Field) *PermissionsUpdateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PermissionsUpdateCall) Context(ctx context.Context) *PermissionsUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PermissionsUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.permissions.update" call.
func (c *PermissionsUpdateCall) Do(opts ...googleapi.CallOption) (*Permission, error) {
	c.call.SetOptions(opts...)
	ret := &Permission{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type PermissionsDeleteCall struct {
	call *google.Call
}

// Delete deletes a permission.
func (r *PermissionsService) Delete(fileID string, permissionID string) *PermissionsDeleteCall {
	c := &PermissionsDeleteCall{call: r.s.core.NewCall(http.MethodDelete, "files/{fileId}/permissions/{permissionId}", map[string]string{"fileId": fileID, "permissionId": permissionID})}
	return c
}

// SupportsAllDrives sets the optional parameter "supportsAllDrives": Whether the requesting application
// supports both My Drives and shared drives.
func (c *PermissionsDeleteCall) SupportsAllDrives(supportsAllDrives bool) *PermissionsDeleteCall {
	c.call.SetQuery("supportsAllDrives", fmt.Sprint(supportsAllDrives))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PermissionsDeleteCall) Fields(s ...googleapi.Field) *PermissionsDeleteCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PermissionsDeleteCall) Context(ctx context.Context) *PermissionsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PermissionsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.permissions.delete" call.
func (c *PermissionsDeleteCall) Do(opts ...googleapi.CallOption) error {
	c.call.SetOptions(opts...)
	_, err := c.call.Do(nil)
	return err
}
