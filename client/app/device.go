// File: /client/app/device.go
package app

import (
	"context"
	"image"

	"github.com/nousyukukangen-ringo/isibasigeru/client/feed"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// Device and presentation contracts. The platform (camera, geolocation, map
// tiles, dialogs) is consumed through these, never reimplemented.

// Camera is an acquired device resource. Stop must be safe to call more
// than once; flows call it on every exit path so the device indicator
// never stays lit.
type Camera interface {
	Start(ctx context.Context) error
	Frame() (image.Image, error)
	Stop()
}

// Geolocator answers the device's current position. A denial or failure is
// an error, not a hang.
type Geolocator interface {
	Current(ctx context.Context) (lat, lng float64, err error)
}

// MarkerIcon selects the marker variant on the map layer.
type MarkerIcon string

const (
	IconHere  MarkerIcon = "red"
	IconLiked MarkerIcon = "gold"
	IconPhoto MarkerIcon = "blue"
)

// MarkerLayer is the map-tile library, consumed as a black box: place
// markers with an icon variant and an optional tap handler.
type MarkerLayer interface {
	SetView(lat, lng float64, zoom int)
	AddMarker(lat, lng float64, icon MarkerIcon, popup string, onTap func())
}

// Notifier shows a blocking user-facing message.
type Notifier interface {
	Alert(message string)
}

// FeedView displays the rendered feed cards, or the empty-state message
// when nothing matches.
type FeedView interface {
	ShowCards(cards []feed.Card)
	ShowEmpty(message string)
}

// FolderView displays the caller's photo folder.
type FolderView interface {
	ShowPhotos(photos []gateway.Photo)
	ShowEmpty(message string)
}

// PhotoPreview shows a single photo from a map marker tap.
type PhotoPreview interface {
	Show(photo gateway.Photo)
}
