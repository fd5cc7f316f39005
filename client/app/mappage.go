// File: /client/app/mappage.go
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
	"github.com/nousyukukangen-ringo/isibasigeru/client/state"
)

// Fallback view when geolocation is denied or fails: central Tokyo.
const (
	fallbackLat = 35.68
	fallbackLng = 139.76
	defaultZoom = 14
)

// MapFlow backs the map page: the viewer's position, their liked posts and
// their own photos as markers.
type MapFlow struct {
	gw      *gateway.Client
	store   *state.Store
	markers MarkerLayer
	geo     Geolocator
	preview PhotoPreview
	notify  Notifier
}

func NewMapFlow(gw *gateway.Client, store *state.Store, markers MarkerLayer, geo Geolocator, preview PhotoPreview, notify Notifier) *MapFlow {
	return &MapFlow{
		gw:      gw,
		store:   store,
		markers: markers,
		geo:     geo,
		preview: preview,
		notify:  notify,
	}
}

// Init centers the map and places the markers. Geolocation failure falls
// back to the default view instead of blocking the page.
func (f *MapFlow) Init(ctx context.Context) error {
	if err := f.store.Sync(ctx); err != nil {
		log.Printf("map sync failed: %v", err)
	}

	lat, lng, err := f.geo.Current(ctx)
	if err != nil {
		log.Printf("geolocation unavailable: %v", err)
		f.markers.SetView(fallbackLat, fallbackLng, defaultZoom)
	} else {
		f.markers.SetView(lat, lng, defaultZoom)
		f.markers.AddMarker(lat, lng, IconHere, "You are here", nil)
	}

	// Liked posts from the snapshot
	for _, p := range f.store.Posts() {
		if !f.store.Liked(p.ID) || p.Latitude == nil || p.Longitude == nil {
			continue
		}
		f.markers.AddMarker(*p.Latitude, *p.Longitude, IconLiked, p.Caption, nil)
	}

	// The viewer's own photos, tappable into the preview
	var resp gateway.PhotoListResponse
	if err := f.gw.Get(ctx, "/api/photo/list", &resp); err != nil {
		log.Printf("photo list failed: %v", err)
		return nil
	}
	for _, photo := range resp.Photos {
		if photo.Latitude == nil || photo.Longitude == nil {
			continue
		}
		p := photo
		f.markers.AddMarker(*p.Latitude, *p.Longitude, IconPhoto, p.Title, func() {
			f.preview.Show(p)
		})
	}

	return nil
}

// DeletePhoto removes one of the viewer's photos from the preview overlay.
func (f *MapFlow) DeletePhoto(ctx context.Context, photoID int) error {
	var resp gateway.Envelope
	if err := f.gw.Delete(ctx, fmt.Sprintf("/api/photo/%d", photoID), &resp); err != nil {
		log.Printf("photo delete failed: %v", err)
		f.notify.Alert("Could not delete the photo.")
		return err
	}
	return nil
}
