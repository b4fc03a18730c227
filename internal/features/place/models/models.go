package models

// ParseRequest is the payload of the place-parser endpoints.
type ParseRequest struct {
	PlaceID int64 `json:"place_id" binding:"required"`
}

// GamepassInfo is one purchasable item attached to an experience.
type GamepassInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price *int64 `json:"price"`
}

// BadgeInfo is one achievement badge attached to an experience.
type BadgeInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ParseResult carries the metadata extracted for one experience. Gamepasses
// and Badges preserve the listing order returned by the catalog.
type ParseResult struct {
	PlaceID    int64          `json:"place_id"`
	PlaceName  *string        `json:"place_name"`
	Gamepasses []GamepassInfo `json:"gamepasses"`
	Badges     []BadgeInfo    `json:"badges"`
	Error      string         `json:"error,omitempty"`
}
