// File: /client/app/folder.go
package app

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/nousyukukangen-ringo/isibasigeru/client/canvas"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// FolderEmptyMessage is shown when the viewer has no photos yet.
const FolderEmptyMessage = "Your folder is empty. Go capture something first!"

// FolderFlow backs the folder page: listing, previewing, deleting and the
// annotate-and-resave edit loop.
type FolderFlow struct {
	gw     *gateway.Client
	view   FolderView
	notify Notifier
}

func NewFolderFlow(gw *gateway.Client, view FolderView, notify Notifier) *FolderFlow {
	return &FolderFlow{
		gw:     gw,
		view:   view,
		notify: notify,
	}
}

// Init lists the folder. An empty folder is the explicit empty state, not
// an error.
func (f *FolderFlow) Init(ctx context.Context) error {
	var resp gateway.PhotoListResponse
	if err := f.gw.Get(ctx, "/api/photo/list", &resp); err != nil {
		log.Printf("folder list failed: %v", err)
		f.notify.Alert("Could not load your folder.")
		return err
	}

	if len(resp.Photos) == 0 {
		f.view.ShowEmpty(FolderEmptyMessage)
		return nil
	}
	f.view.ShowPhotos(resp.Photos)
	return nil
}

// Delete removes a photo and refreshes the listing.
func (f *FolderFlow) Delete(ctx context.Context, photoID int) {
	var resp gateway.Envelope
	if err := f.gw.Delete(ctx, fmt.Sprintf("/api/photo/%d", photoID), &resp); err != nil {
		log.Printf("photo delete failed: %v", err)
		f.notify.Alert("Could not delete the photo.")
		return
	}

	if err := f.Init(ctx); err != nil {
		log.Printf("folder refresh failed: %v", err)
	}
}

// StartEdit loads a stored photo into a fresh annotation canvas.
func (f *FolderFlow) StartEdit(ctx context.Context, photo gateway.Photo) (*canvas.Engine, error) {
	data, err := f.gw.FetchImage(ctx, photo.Filepath)
	if err != nil {
		return nil, fmt.Errorf("load photo: %w", err)
	}
	img, err := canvas.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return canvas.New(img), nil
}

// SaveEdit commits the annotated canvas as a replacement upload for the
// edited photo. On failure the canvas keeps its strokes so the user can
// retry.
func (f *FolderFlow) SaveEdit(ctx context.Context, eng *canvas.Engine, photoID int) error {
	data, err := eng.Encode()
	if err != nil {
		f.notify.Alert("Could not save your edit. Please try again.")
		return err
	}

	fields := map[string]string{"photo_id": strconv.Itoa(photoID)}
	var resp gateway.UploadResponse
	if err := f.gw.PostForm(ctx, "/api/photo/upload", fields, "image", "edited.jpg", data, &resp); err != nil {
		log.Printf("edit upload failed: %v", err)
		f.notify.Alert("Could not save your edit. Please try again.")
		return err
	}

	if err := f.Init(ctx); err != nil {
		log.Printf("folder refresh failed: %v", err)
	}
	return nil
}
