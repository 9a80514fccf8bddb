package placeactions

import (
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/transcode"
)

// Place action types.
const (
	PlaceActionTypeAppointment       = "APPOINTMENT"
	PlaceActionTypeOnlineAppointment = "ONLINE_APPOINTMENT"
	PlaceActionTypeDiningReservation = "DINING_RESERVATION"
	PlaceActionTypeFoodOrdering      = "FOOD_ORDERING"
	PlaceActionTypeFoodDelivery      = "FOOD_DELIVERY"
	PlaceActionTypeFoodTakeout       = "FOOD_TAKEOUT"
	PlaceActionTypeShopOnline        = "SHOP_ONLINE"
)

// Empty is returned by Delete.
type Empty struct {
	googleapi.ServerResponse `json:"-"`
}

// PlaceActionLink: Represents a place action link and its attributes.
type PlaceActionLink struct {
	// CreateTime: Output only. The time when the place action link was
	// created.
	CreateTime transcode.Time `json:"createTime,omitzero"`

	// IsEditable: Output only. Indicates whether this link can be edited by
	// the client.
	IsEditable bool `json:"isEditable,omitempty"`

	// IsPreferred: Optional. Whether this link is preferred by the merchant.
	// Only one link can be marked as preferred per action type at a location.
	IsPreferred bool `json:"isPreferred,omitempty"`

	// Name: Optional. The resource name, in the format
	// locations/{location_id}/placeActionLinks/{place_action_link_id}.
	Name string `json:"name,omitempty"`

	// PlaceActionType: Required. The type of place action that can be
	// performed using this link.
	PlaceActionType string `json:"placeActionType,omitempty"`

	// ProviderType: Output only. Specifies the provider type: MERCHANT or
	// AGGREGATOR_3P.
	ProviderType string `json:"providerType,omitempty"`

	// UpdateTime: Output only. The time when the place action link was last
	// modified.
	UpdateTime transcode.Time `json:"updateTime,omitzero"`

	// Uri: Required. The link uri.
	Uri string `json:"uri,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

type ListPlaceActionLinksResponse struct {
	NextPageToken    string             `json:"nextPageToken,omitempty"`
	PlaceActionLinks []*PlaceActionLink `json:"placeActionLinks,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// PlaceActionTypeMetadata: Metadata for supported place action types.
type PlaceActionTypeMetadata struct {
	// DisplayName: The localized display name for the attribute, if
	// available; otherwise, the English display name.
	DisplayName string `json:"displayName,omitempty"`

	PlaceActionType string `json:"placeActionType,omitempty"`
}

type ListPlaceActionTypeMetadataResponse struct {
	NextPageToken           string                     `json:"nextPageToken,omitempty"`
	PlaceActionTypeMetadata []*PlaceActionTypeMetadata `json:"placeActionTypeMetadata,omitempty"`

	googleapi.ServerResponse `json:"-"`
}
