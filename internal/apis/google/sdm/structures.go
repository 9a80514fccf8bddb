package sdm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type EnterprisesStructuresGetCall struct {
	call *google.Call
}

// Get gets a structure managed by the enterprise.
func (r *EnterprisesStructuresService) Get(name string) *EnterprisesStructuresGetCall {
	c := &EnterprisesStructuresGetCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesStructuresGetCall) Fields(s ...googleapi.Field) *EnterprisesStructuresGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesStructuresGetCall) Context(ctx context.Context) *EnterprisesStructuresGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesStructuresGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.structures.get" call.
func (c *EnterprisesStructuresGetCall) Do(opts ...googleapi.CallOption) (*Structure, error) {
	c.call.SetOptions(opts...)
	ret := &Structure{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type EnterprisesStructuresListCall struct {
	call *google.Call
}

// List lists structures managed by the enterprise.
func (r *EnterprisesStructuresService) List(parent string) *EnterprisesStructuresListCall {
	c := &EnterprisesStructuresListCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+parent}/structures", map[string]string{"parent": parent})}
	return c
}

// Filter sets the optional parameter "filter": Optional filter to list structures.
func (c *EnterprisesStructuresListCall) Filter(filter string) *EnterprisesStructuresListCall {
	c.call.SetQuery("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize": Optional requested page size.
func (c *EnterprisesStructuresListCall) PageSize(pageSize int64) *EnterprisesStructuresListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": Optional token of the page to
// retrieve.
func (c *EnterprisesStructuresListCall) PageToken(pageToken string) *EnterprisesStructuresListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *EnterprisesStructuresListCall) Fields(s ...googleapi.Field) *EnterprisesStructuresListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *EnterprisesStructuresListCall) Context(ctx context.Context) *EnterprisesStructuresListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *EnterprisesStructuresListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "smartdevicemanagement.enterprises.structures.list" call.
func (c *EnterprisesStructuresListCall) Do(opts ...googleapi.CallOption) (*ListStructuresResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListStructuresResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
