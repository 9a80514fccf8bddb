package healthcare

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

type ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall struct {
	call *google.Call
}

// CheckDataAccess checks if a particular data_id of a User data mapping in the
// specified consent store is consented for the specified use.
func (r *ProjectsLocationsDatasetsConsentStoresService) CheckDataAccess(consentStore string, checkDataAccessRequest *CheckDataAccessRequest) *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall {
	c := &ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall{call: r.s.core.NewCall(http.MethodPost, "v1/{+consentStore}:checkDataAccess", map[string]string{"consentStore": consentStore})}
	c.call.SetBody(checkDataAccessRequest)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall) Fields(s ...googleapi.Field) *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall {
	c.call.SetFields(s...)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall) Context(ctx context.Context) *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "healthcare.projects.locations.datasets.consentStores.checkDataAccess" call.
func (c *ProjectsLocationsDatasetsConsentStoresCheckDataAccessCall) Do(opts ...googleapi.CallOption) (*CheckDataAccessResponse, error) {
	c.call.SetOptions(opts...)
	ret := &CheckDataAccessResponse{}
	sr, err := c.call.Do(ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = sr
	return ret, nil
}
