package drive

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type AboutGetCall struct {
	call *google.Call
}

// Get gets information about the user, the user's Drive, and system
// capabilities. Drive requires a field mask for this method; "*" is sent
// unless Fields is called.
func (r *AboutService) Get() *AboutGetCall {
	c := &AboutGetCall{call: r.s.core.NewCall(http.MethodGet, "about", nil)}
	c.call.SetQuery("fields", "*")
	return c
}

// Fields allows partial responses to be retrieved.
func (c *AboutGetCall) Fields(s ...googleapi.Field) *AboutGetCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AboutGetCall) Context(ctx context.Context) *AboutGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AboutGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "drive.about.get" call.
func (c *AboutGetCall) Do(opts ...googleapi.CallOption) (*About, error) {
	c.call.SetOptions(opts...)
	ret := &About{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
