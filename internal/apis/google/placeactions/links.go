package placeactions

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type LocationsPlaceActionLinksCreateCall struct {
	call *google.Call
}

// Create creates a place action link associated with the specified location.
// Fails with ALREADY_EXISTS if a link with the same type and URI exists.
func (r *LocationsPlaceActionLinksService) Create(parent string, placeActionLink *PlaceActionLink) *LocationsPlaceActionLinksCreateCall {
	c := &LocationsPlaceActionLinksCreateCall{call: r.s.core.NewCall(http.MethodPost, "v1/{+parent}/placeActionLinks", map[string]string{"parent": parent})}
	c.call.SetBody(placeActionLink)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *LocationsPlaceActionLinksCreateCall) Fields(s ...googleapi.Field) *LocationsPlaceActionLinksCreateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *LocationsPlaceActionLinksCreateCall) Context(ctx context.Context) *LocationsPlaceActionLinksCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *LocationsPlaceActionLinksCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.locations.placeActionLinks.create" call.
func (c *LocationsPlaceActionLinksCreateCall) Do(opts ...googleapi.CallOption) (*PlaceActionLink, error) {
	c.call.SetOptions(opts...)
	ret := &PlaceActionLink{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type LocationsPlaceActionLinksGetCall struct {
	call *google.Call
}

// Get gets the specified place action link.
func (r *LocationsPlaceActionLinksService) Get(name string) *LocationsPlaceActionLinksGetCall {
	c := &LocationsPlaceActionLinksGetCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *LocationsPlaceActionLinksGetCall) Fields(s ...googleapi.Field) *LocationsPlaceActionLinksGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *LocationsPlaceActionLinksGetCall) Context(ctx context.Context) *LocationsPlaceActionLinksGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *LocationsPlaceActionLinksGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.locations.placeActionLinks.get" call.
func (c *LocationsPlaceActionLinksGetCall) Do(opts ...googleapi.CallOption) (*PlaceActionLink, error) {
	c.call.SetOptions(opts...)
	ret := &PlaceActionLink{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type LocationsPlaceActionLinksListCall struct {
	call *google.Call
}

// List lists the place action links for the specified location.
func (r *LocationsPlaceActionLinksService) List(parent string) *LocationsPlaceActionLinksListCall {
	c := &LocationsPlaceActionLinksListCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+parent}/placeActionLinks", map[string]string{"parent": parent})}
	return c
}

// Filter sets the optional parameter "filter": A filter constraining the results
// returned. Only placeActionType is supported, for example
// "placeActionType=DINING_RESERVATION".
func (c *LocationsPlaceActionLinksListCall) Filter(filter string) *LocationsPlaceActionLinksListCall {
	c.call.SetQuery("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize": How many items to return per page.
// The server default is 10 and the maximum is 1000.
func (c *LocationsPlaceActionLinksListCall) PageSize(pageSize int64) *LocationsPlaceActionLinksListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": If specified, returns the next
// page of results.
func (c *LocationsPlaceActionLinksListCall) PageToken(pageToken string) *LocationsPlaceActionLinksListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *LocationsPlaceActionLinksListCall) Fields(s ...googleapi.Field) *LocationsPlaceActionLinksListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *LocationsPlaceActionLinksListCall) Context(ctx context.Context) *LocationsPlaceActionLinksListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *LocationsPlaceActionLinksListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.locations.placeActionLinks.list" call.
func (c *LocationsPlaceActionLinksListCall) Do(opts ...googleapi.CallOption) (*ListPlaceActionLinksResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListPlaceActionLinksResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type LocationsPlaceActionLinksPatchCall struct {
	call *google.Call
}

// Patch updates the specified place action link.
func (r *LocationsPlaceActionLinksService) Patch(name string, placeActionLink *PlaceActionLink) *LocationsPlaceActionLinksPatchCall {
	c := &LocationsPlaceActionLinksPatchCall{call: r.s.core.NewCall(http.MethodPatch, "v1/{+name}", map[string]string{"name": name})}
	c.call.SetBody(placeActionLink)
	return c
}

// UpdateMask sets the optional parameter "updateMask": Required. The specific fields
// to update: uri, placeActionType and isPreferred.
func (c *LocationsPlaceActionLinksPatchCall) UpdateMask(updateMask string) *LocationsPlaceActionLinksPatchCall {
	c.call.SetQuery("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *LocationsPlaceActionLinksPatchCall) Fields(s ...googleapi.Field) *LocationsPlaceActionLinksPatchCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *LocationsPlaceActionLinksPatchCall) Context(ctx context.Context) *LocationsPlaceActionLinksPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *LocationsPlaceActionLinksPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.locations.placeActionLinks.patch" call.
func (c *LocationsPlaceActionLinksPatchCall) Do(opts ...googleapi.CallOption) (*PlaceActionLink, error) {
	c.call.SetOptions(opts...)
	ret := &PlaceActionLink{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type LocationsPlaceActionLinksDeleteCall struct {
	call *google.Call
}

// Delete deletes a place action link from the specified location.
func (r *LocationsPlaceActionLinksService) Delete(name string) *LocationsPlaceActionLinksDeleteCall {
	c := &LocationsPlaceActionLinksDeleteCall{call: r.s.core.NewCall(http.MethodDelete, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *LocationsPlaceActionLinksDeleteCall) Fields(s ...googleapi.Field) *LocationsPlaceActionLinksDeleteCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *LocationsPlaceActionLinksDeleteCall) Context(ctx context.Context) *LocationsPlaceActionLinksDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *LocationsPlaceActionLinksDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.locations.placeActionLinks.delete" call.
func (c *LocationsPlaceActionLinksDeleteCall) Do(opts ...googleapi.CallOption) (*Empty, error) {
	c.call.SetOptions(opts...)
	ret := &Empty{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
