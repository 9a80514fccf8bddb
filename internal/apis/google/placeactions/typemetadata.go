package placeactions

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type PlaceActionTypeMetadataListCall struct {
	call *google.Call
}

// List returns the list of available place action types for a location or
// country.
func (r *PlaceActionTypeMetadataService) List() *PlaceActionTypeMetadataListCall {
	c := &PlaceActionTypeMetadataListCall{call: r.s.core.NewCall(http.MethodGet, "v1/placeActionTypeMetadata", nil)}
	return c
}

// Filter sets the optional parameter "filter": The only supported filter is
// "location=locations/{locationId}".
func (c *PlaceActionTypeMetadataListCall) Filter(filter string) *PlaceActionTypeMetadataListCall {
	c.call.SetQuery("filter", filter)
	return c
}

// LanguageCode sets the optional parameter "languageCode": The IETF BCP-47 code of
// language to get display names in.
func (c *PlaceActionTypeMetadataListCall) LanguageCode(languageCode string) *PlaceActionTypeMetadataListCall {
	c.call.SetQuery("languageCode", languageCode)
	return c
}

// PageSize sets the optional parameter "pageSize": How many items to return per page.
// The server default is 10 and the maximum is 1000.
func (c *PlaceActionTypeMetadataListCall) PageSize(pageSize int64) *PlaceActionTypeMetadataListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": If specified, returns the next
// page of results.
func (c *PlaceActionTypeMetadataListCall) PageToken(pageToken string) *PlaceActionTypeMetadataListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// RegionCode sets the optional parameter "regionCode": The ISO 3166-1 alpha-2 country
// code where the place action types are available.
func (c *PlaceActionTypeMetadataListCall) RegionCode(regionCode string) *PlaceActionTypeMetadataListCall {
	c.call.SetQuery("regionCode", regionCode)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PlaceActionTypeMetadataListCall) Fields(s ...googleapi.Field) *PlaceActionTypeMetadataListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PlaceActionTypeMetadataListCall) Context(ctx context.Context) *PlaceActionTypeMetadataListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PlaceActionTypeMetadataListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "mybusinessplaceactions.placeActionTypeMetadata.list" call.
func (c *PlaceActionTypeMetadataListCall) Do(opts ...googleapi.CallOption) (*ListPlaceActionTypeMetadataResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListPlaceActionTypeMetadataResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
