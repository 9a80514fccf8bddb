package sdm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type EnterprisesDevicesGetCall struct {
	call *google.Call
}

// Get gets a device managed by the enterprise.
func (r *EnterprisesDevicesService) Get(name string) *EnterprisesDevicesGetCall {
	c := &EnterprisesDevicesGetCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesDevicesGetCall) Fields(s ...googleapi.Field) *EnterprisesDevicesGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesDevicesGetCall) Context(ctx context.Context) *EnterprisesDevicesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesDevicesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.devices.get" call.
func (c *EnterprisesDevicesGetCall) Do(opts ...googleapi.CallOption) (*Device, error) {
	c.call.SetOptions(opts...)
	ret := &Device{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type EnterprisesDevicesListCall struct {
	call *google.Call
}

// List lists devices managed by the enterprise.
func (r *EnterprisesDevicesService) List(parent string) *EnterprisesDevicesListCall {
	c := &EnterprisesDevicesListCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+parent}/devices", map[string]string{"parent": parent})}
	return c
}

// Filter sets the optional parameter "filter": Optional filter to list devices.
// Filters can be done on customName (custom name of the device) or on
// the structure it belongs to.
func (c *EnterprisesDevicesListCall) Filter(filter string) *EnterprisesDevicesListCall {
	c.call.SetQuery("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize": Optional requested page size.
func (c *EnterprisesDevicesListCall) PageSize(pageSize int64) *EnterprisesDevicesListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": Optional token of the page to
// retrieve.
func (c *EnterprisesDevicesListCall) PageToken(pageToken string) *EnterprisesDevicesListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesDevicesListCall) Fields(s ...googleapi.Field) *EnterprisesDevicesListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesDevicesListCall) Context(ctx context.Context) *EnterprisesDevicesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesDevicesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.devices.list" call.
func (c *EnterprisesDevicesListCall) Do(opts ...googleapi.CallOption) (*ListDevicesResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListDevicesResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type EnterprisesDevicesExecuteCommandCall struct {
	call *google.Call
}

// ExecuteCommand executes a command on the device managed by the
// enterprise.
func (r *EnterprisesDevicesService) ExecuteCommand(name string, executeDeviceCommandRequest *ExecuteDeviceCommandRequest) *EnterprisesDevicesExecuteCommandCall {
	c := &EnterprisesDevicesExecuteCommandCall{call: r.s.core.NewCall(http.MethodPost, "v1/{+name}:executeCommand", map[string]string{"name": name})}
	c.call.SetBody(executeDeviceCommandRequest)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesDevicesExecuteCommandCall) Fields(s ...googleapi.Field) *EnterprisesDevicesExecuteCommandCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesDevicesExecuteCommandCall) Context(ctx context.Context) *EnterprisesDevicesExecuteCommandCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesDevicesExecuteCommandCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.devices.executeCommand" call.
func (c *EnterprisesDevicesExecuteCommandCall) Do(opts ...googleapi.CallOption) (*ExecuteDeviceCommandResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ExecuteDeviceCommandResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
