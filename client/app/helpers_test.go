// File: /client/app/helpers_test.go
package app

import (
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nousyukukangen-ringo/isibasigeru/client/feed"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
	"github.com/nousyukukangen-ringo/isibasigeru/client/state"
)

func newGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := gateway.New(srv.URL)
	require.NoError(t, err)
	return gw
}

func newStore(t *testing.T, gw *gateway.Client) *state.Store {
	t.Helper()
	return state.New(gw)
}

type fakeCamera struct {
	started int
	stopped int
	frame   image.Image
	err     error
}

func (f *fakeCamera) Start(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.started++
	return nil
}

func (f *fakeCamera) Frame() (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.frame, nil
}

func (f *fakeCamera) Stop() { f.stopped++ }

type fakeGeolocator struct {
	lat, lng float64
	err      error
}

func (f *fakeGeolocator) Current(ctx context.Context) (float64, float64, error) {
	return f.lat, f.lng, f.err
}

type fakeNotifier struct {
	alerts []string
}

func (f *fakeNotifier) Alert(message string) { f.alerts = append(f.alerts, message) }

type fakeFeedView struct {
	cards []feed.Card
	empty string
	shows int
}

func (f *fakeFeedView) ShowCards(cards []feed.Card) {
	f.cards = cards
	f.empty = ""
	f.shows++
}

func (f *fakeFeedView) ShowEmpty(message string) {
	f.cards = nil
	f.empty = message
	f.shows++
}

type fakeFolderView struct {
	photos []gateway.Photo
	empty  string
}

func (f *fakeFolderView) ShowPhotos(photos []gateway.Photo) {
	f.photos = photos
	f.empty = ""
}

func (f *fakeFolderView) ShowEmpty(message string) {
	f.photos = nil
	f.empty = message
}

type marker struct {
	lat, lng float64
	icon     MarkerIcon
	popup    string
	onTap    func()
}

type fakeMarkerLayer struct {
	viewLat, viewLng float64
	zoom             int
	markers          []marker
}

func (f *fakeMarkerLayer) SetView(lat, lng float64, zoom int) {
	f.viewLat, f.viewLng, f.zoom = lat, lng, zoom
}

func (f *fakeMarkerLayer) AddMarker(lat, lng float64, icon MarkerIcon, popup string, onTap func()) {
	f.markers = append(f.markers, marker{lat, lng, icon, popup, onTap})
}

func (f *fakeMarkerLayer) byIcon(icon MarkerIcon) []marker {
	var out []marker
	for _, m := range f.markers {
		if m.icon == icon {
			out = append(out, m)
		}
	}
	return out
}

type fakePreview struct {
	shown []gateway.Photo
}

func (f *fakePreview) Show(photo gateway.Photo) { f.shown = append(f.shown, photo) }

func testFrame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 120, 90))
}
