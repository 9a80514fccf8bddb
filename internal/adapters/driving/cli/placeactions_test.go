package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceActionsLinksList(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{
		"placeActionLinks": [{
			"name": "locations/123/placeActionLinks/l1",
			"uri": "https://book.example.com/123",
			"placeActionType": "DINING_RESERVATION",
			"createTime": "2024-01-15T10:30:00Z"
		}]
	}`)

	out, err := execute(t, "--endpoint", srv.URL+"/",
		"placeactions", "links", "list", "locations/123", "--filter", "placeActionType=DINING_RESERVATION")

	require.NoError(t, err)
	req := seen.at(0)
	assert.Equal(t, "/v1/locations/123/placeActionLinks", req.Path)
	assert.Equal(t, "placeActionType=DINING_RESERVATION", req.Query["filter"][0])
	assert.NotContains(t, req.Query, "pageSize")
	assert.Contains(t, out, `"createTime":"2024-01-15T10:30:00.000Z"`)
}

func TestPlaceActionsLinksGetAndDelete(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{"name": "locations/123/placeActionLinks/l1"}`)

	_, err := execute(t, "--endpoint", srv.URL+"/", "placeactions", "links", "get", "locations/123/placeActionLinks/l1")
	require.NoError(t, err)
	_, err = execute(t, "--endpoint", srv.URL+"/", "placeactions", "links", "delete", "locations/123/placeActionLinks/l1")
	require.NoError(t, err)

	reqs := seen.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, http.MethodDelete, reqs[1].Method)
	assert.Equal(t, "/v1/locations/123/placeActionLinks/l1", reqs[1].Path)
}

func TestPlaceActionsTypes(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, `{
		"placeActionTypeMetadata": [{"placeActionType": "APPOINTMENT", "displayName": "Book"}]
	}`)

	out, err := execute(t, "--endpoint", srv.URL+"/",
		"placeactions", "types", "--language", "en-GB", "--region", "GB")

	require.NoError(t, err)
	req := seen.at(0)
	assert.Equal(t, "/v1/placeActionTypeMetadata", req.Path)
	assert.Equal(t, "en-GB", req.Query["languageCode"][0])
	assert.Equal(t, "GB", req.Query["regionCode"][0])
	assert.NotContains(t, req.Query, "filter")
	assert.Contains(t, out, "APPOINTMENT")
}

func TestPlaceActionsLinksDelete_Conflict(t *testing.T) {
	srv, _ := fakeAPI(t, http.StatusConflict, `{"error": {"code": 409, "message": "Aborted"}}`)

	_, err := execute(t, "--endpoint", srv.URL+"/", "placeactions", "links", "delete", "locations/1/placeActionLinks/l1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete place action link failed (conflict)")
}
