package sdm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type EnterprisesStructuresRoomsGetCall struct {
	call *google.Call
}

// Get gets a room managed by the enterprise.
func (r *EnterprisesStructuresRoomsService) Get(name string) *EnterprisesStructuresRoomsGetCall {
	c := &EnterprisesStructuresRoomsGetCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesStructuresRoomsGetCall) Fields(s ...googleapi.Field) *EnterprisesStructuresRoomsGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesStructuresRoomsGetCall) Context(ctx context.Context) *EnterprisesStructuresRoomsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesStructuresRoomsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.structures.rooms.get" call.
func (c *EnterprisesStructuresRoomsGetCall) Do(opts ...googleapi.CallOption) (*Room, error) {
	c.call.SetOptions(opts...)
	ret := &Room{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type EnterprisesStructuresRoomsListCall struct {
	call *google.Call
}

// List lists rooms managed by the enterprise.
func (r *EnterprisesStructuresRoomsService) List(parent string) *EnterprisesStructuresRoomsListCall {
	c := &EnterprisesStructuresRoomsListCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+parent}/rooms", map[string]string{"parent": parent})}
	return c
}

// PageSize sets the optional parameter "pageSize": Optional requested page size.
func (c *EnterprisesStructuresRoomsListCall) PageSize(pageSize int64) *EnterprisesStructuresRoomsListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": Optional token of the page to
// retrieve.
func (c *EnterprisesStructuresRoomsListCall) PageToken(pageToken string) *EnterprisesStructuresRoomsListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesStructuresRoomsListCall) Fields(s ...googleapi.Field) *EnterprisesStructuresRoomsListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesStructuresRoomsListCall) Context(ctx context.Context) *EnterprisesStructuresRoomsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesStructuresRoomsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.structures.rooms.list" call.
func (c *EnterprisesStructuresRoomsListCall) Do(opts ...googleapi.CallOption) (*ListRoomsResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListRoomsResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
