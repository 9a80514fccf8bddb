package healthcare

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall struct {
	call *google.Call
}

// Create parses and stores an HL7v2 message.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) Create(parent string, createMessageRequest *CreateMessageRequest) *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall{call: r.s.core.NewCall(http.MethodPost, "v1/{+parent}/messages", map[string]string{"parent": parent})}
	c.call.SetBody(createMessageRequest)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.create" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesCreateCall) Do(opts ...googleapi.CallOption) (*Message, error) {
	c.call.SetOptions(opts...)
	ret := &Message{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall struct {
	call *google.Call
}

// Get gets an HL7v2 message.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) Get(name string) *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// View sets the optional parameter "view": Specifies which parts of the Message
// resource to return. One of the MessageView constants.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall) View(view string) *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall {
	c.call.SetQuery("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.get" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesGetCall) Do(opts ...googleapi.CallOption) (*Message, error) {
	c.call.SetOptions(opts...)
	ret := &Message{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesListCall struct {
	call *google.Call
}

// List lists all the messages in the given HL7v2 store with support for
// filtering and ordering.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) List(parent string) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesListCall{call: r.s.core.NewCall(http.MethodGet, "v1/{+parent}/messages", map[string]string{"parent": parent})}
	return c
}

// Filter sets the optional parameter "filter": Restricts the results to resources
// matching the filter expression.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) Filter(filter string) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetQuery("filter", filter)
	return c
}

// OrderBy sets the optional parameter "orderBy": Orders messages returned by the
// specified order_by clause, for example "send_time desc".
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) OrderBy(orderBy string) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetQuery("orderBy", orderBy)
	return c
}

// PageSize sets the optional parameter "pageSize": Limit on the number of resources to
// return in a single response.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) PageSize(pageSize int64) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetQuery("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The next_page_token value
// returned from the previous List request, if any.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) PageToken(pageToken string) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetQuery("pageToken", pageToken)
	return c
}

// View sets the optional parameter "view": Specifies which parts of the Message
// resource to return. One of the MessageView constants.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) View(view string) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetQuery("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.list" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesListCall) Do(opts ...googleapi.CallOption) (*ListMessagesResponse, error) {
	c.call.SetOptions(opts...)
	ret := &ListMessagesResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall struct {
	call *google.Call
}

// Patch updates the message labels.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) Patch(name string, message *Message) *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall{call: r.s.core.NewCall(http.MethodPatch, "v1/{+name}", map[string]string{"name": name})}
	c.call.SetBody(message)
	return c
}

// UpdateMask sets the optional parameter "updateMask": The update mask to apply to the
// resource, as a comma-separated list of field paths.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall) UpdateMask(updateMask string) *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall {
	c.call.SetQuery("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.patch" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesPatchCall) Do(opts ...googleapi.CallOption) (*Message, error) {
	c.call.SetOptions(opts...)
	ret := &Message{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall struct {
	call *google.Call
}

// Delete deletes an HL7v2 message.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) Delete(name string) *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall{call: r.s.core.NewCall(http.MethodDelete, "v1/{+name}", map[string]string{"name": name})}
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.delete" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesDeleteCall) Do(opts ...googleapi.CallOption) (*Empty, error) {
	c.call.SetOptions(opts...)
	ret := &Empty{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall struct {
	call *google.Call
}

// Ingest parses and stores an HL7v2 message and returns the acknowledgement
// generated by the store.
func (r *ProjectsLocationsDatasetsHl7V2StoresMessagesService) Ingest(parent string, ingestMessageRequest *IngestMessageRequest) *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall {
	c := &ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall{call: r.s.core.NewCall(http.MethodPost, "v1/{+parent}/messages:ingest", map[string]string{"parent": parent})}
	c.call.SetBody(ingestMessageRequest)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall) Context(ctx context.Context) *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.hl7V2Stores.messages.ingest" call.
func (c *ProjectsLocationsDatasetsHl7V2StoresMessagesIngestCall) Do(opts ...googleapi.CallOption) (*IngestMessageResponse, error) {
	c.call.SetOptions(opts...)
	ret := &IngestMessageResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
