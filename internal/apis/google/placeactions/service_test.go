package placeactions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/transcode"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return svc
}

func TestPlaceActionLinksCreate(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/locations/123/placeActionLinks", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"placeActionType": PlaceActionTypeDiningReservation,
			"uri":             "https://book.example.com/123",
			"isPreferred":     true,
		}, body)

		_, _ = w.Write([]byte(`{
			"name": "locations/123/placeActionLinks/l1",
			"placeActionType": "DINING_RESERVATION",
			"uri": "https://book.example.com/123",
			"isPreferred": true,
			"isEditable": true,
			"providerType": "MERCHANT",
			"createTime": "2024-01-15T10:30:00.000Z",
			"updateTime": "2024-01-16T08:00:00.5Z"
		}`))
	})

	link, err := svc.Locations.PlaceActionLinks.Create("locations/123", &PlaceActionLink{
		PlaceActionType: PlaceActionTypeDiningReservation,
		Uri:             "https://book.example.com/123",
		IsPreferred:     true,
	}).Do()

	require.NoError(t, err)
	assert.Equal(t, "locations/123/placeActionLinks/l1", link.Name)
	assert.True(t, link.IsEditable)
	assert.True(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Equal(link.CreateTime.Time))
	assert.Equal(t, 500*int(time.Millisecond), link.UpdateTime.Nanosecond())
}

func TestPlaceActionLinksList(t *testing.T) {
	var queries []map[string][]string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		_, _ = w.Write([]byte(`{"placeActionLinks": [{"name": "l1"}, {"name": "l2", "createTime": "2024-01-15T10:30:00Z"}], "nextPageToken": "p2"}`))
	})
	links := svc.Locations.PlaceActionLinks

	first, err := links.List("locations/123").Do()
	require.NoError(t, err)
	_, err = links.List("locations/123").Filter("placeActionType=FOOD_ORDERING").PageSize(50).PageToken(first.NextPageToken).Do()
	require.NoError(t, err)

	require.Len(t, queries, 2)
	for _, absent := range []string{"filter", "pageSize", "pageToken"} {
		assert.NotContains(t, queries[0], absent)
	}
	assert.Equal(t, []string{"placeActionType=FOOD_ORDERING"}, queries[1]["filter"])
	assert.Equal(t, []string{"50"}, queries[1]["pageSize"])
	assert.Equal(t, []string{"p2"}, queries[1]["pageToken"])

	require.Len(t, first.PlaceActionLinks, 2)
	assert.True(t, first.PlaceActionLinks[0].CreateTime.IsZero())
	assert.False(t, first.PlaceActionLinks[1].CreateTime.IsZero())
}

func TestPlaceActionLinksGetPatchDelete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/locations/123/placeActionLinks/l1", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"name": "locations/123/placeActionLinks/l1", "uri": "https://a.example"}`))
		case http.MethodPatch:
			assert.Equal(t, "uri", r.URL.Query().Get("updateMask"))
			_, _ = w.Write([]byte(`{"name": "locations/123/placeActionLinks/l1", "uri": "https://b.example"}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{}`))
		}
	})
	links := svc.Locations.PlaceActionLinks
	name := "locations/123/placeActionLinks/l1"

	got, err := links.Get(name).Do()
	require.NoError(t, err)
	assert.Equal(t, "https://a.example", got.Uri)

	patched, err := links.Patch(name, &PlaceActionLink{Uri: "https://b.example"}).UpdateMask("uri").Do()
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", patched.Uri)

	_, err = links.Delete(name).Do()
	require.NoError(t, err)
}

func TestPlaceActionLinks_MalformedTimeFails(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "l1", "createTime": "15/01/2024"}`))
	})

	got, err := svc.Locations.PlaceActionLinks.Get("locations/1/placeActionLinks/l1").Do()

	assert.Nil(t, got)
	var terr *transcode.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, transcode.KindTime, terr.Kind)
	assert.Equal(t, "15/01/2024", terr.Value)
}

func TestPlaceActionTypeMetadataList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/placeActionTypeMetadata", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "location=locations/123", q.Get("filter"))
		assert.Equal(t, "de", q.Get("languageCode"))
		assert.Equal(t, "DE", q.Get("regionCode"))
		assert.NotContains(t, q, "pageSize")
		_, _ = w.Write([]byte(`{"placeActionTypeMetadata": [{"placeActionType": "APPOINTMENT", "displayName": "Termin"}]}`))
	})

	resp, err := svc.PlaceActionTypeMetadata.List().
		Filter("location=locations/123").
		LanguageCode("de").
		RegionCode("DE").
		Do()

	require.NoError(t, err)
	require.Len(t, resp.PlaceActionTypeMetadata, 1)
	assert.Equal(t, "Termin", resp.PlaceActionTypeMetadata[0].DisplayName)
	assert.Equal(t, PlaceActionTypeAppointment, resp.PlaceActionTypeMetadata[0].PlaceActionType)
}
