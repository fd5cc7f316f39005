// File: /client/app/camera.go
package app

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/nousyukukangen-ringo/isibasigeru/client/canvas"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// CaptureFlow backs the camera page: start the camera, grab a frame into an
// annotation canvas, tag it with the device position and upload. The camera
// is released on every exit path, success or not.
type CaptureFlow struct {
	camera Camera
	geo    Geolocator
	gw     *gateway.Client
	notify Notifier

	eng *canvas.Engine
}

func NewCaptureFlow(camera Camera, geo Geolocator, gw *gateway.Client, notify Notifier) *CaptureFlow {
	return &CaptureFlow{
		camera: camera,
		geo:    geo,
		gw:     gw,
		notify: notify,
	}
}

// Start acquires the camera.
func (f *CaptureFlow) Start(ctx context.Context) error {
	if err := f.camera.Start(ctx); err != nil {
		log.Printf("camera start failed: %v", err)
		f.notify.Alert("Could not access the camera.")
		return err
	}
	return nil
}

// Shoot freezes the current frame into the annotation canvas. The camera
// keeps running so the user can retake.
func (f *CaptureFlow) Shoot() error {
	frame, err := f.camera.Frame()
	if err != nil {
		log.Printf("frame grab failed: %v", err)
		f.notify.Alert("Could not capture a frame.")
		return err
	}
	f.eng = canvas.New(frame)
	return nil
}

// Engine exposes the annotation canvas for the current shot, nil before
// Shoot.
func (f *CaptureFlow) Engine() *canvas.Engine {
	return f.eng
}

// Save uploads the annotated shot with the device position and releases the
// camera. On failure the canvas keeps its strokes and the camera stays on,
// so the user can retry without losing work.
func (f *CaptureFlow) Save(ctx context.Context, title string) error {
	if f.eng == nil {
		return fmt.Errorf("no captured frame")
	}

	data, err := f.eng.Encode()
	if err != nil {
		f.notify.Alert("Could not save the photo. Please try again.")
		return err
	}

	fields := map[string]string{"title": title}
	lat, lng, err := f.geo.Current(ctx)
	if err != nil {
		log.Printf("geolocation unavailable: %v", err)
	} else {
		fields["latitude"] = strconv.FormatFloat(lat, 'f', -1, 64)
		fields["longitude"] = strconv.FormatFloat(lng, 'f', -1, 64)
	}

	var resp gateway.UploadResponse
	if err := f.gw.PostForm(ctx, "/api/photo/upload", fields, "image", "capture.jpg", data, &resp); err != nil {
		log.Printf("photo upload failed: %v", err)
		f.notify.Alert("Could not save the photo. Please try again.")
		return err
	}

	f.eng = nil
	f.camera.Stop()
	return nil
}

// Cancel discards the current shot and returns to the live camera.
func (f *CaptureFlow) Cancel() {
	f.eng = nil
}

// Close releases the camera when the user leaves the page.
func (f *CaptureFlow) Close() {
	f.eng = nil
	f.camera.Stop()
}
