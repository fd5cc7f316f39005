// File: /client/app/folder_test.go
package app

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nousyukukangen-ringo/isibasigeru/client/canvas"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

func TestFolderInitShowsPhotos(t *testing.T) {
	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/photo/list", r.URL.Path)
		io.WriteString(w, `{"success":true,"photos":[{"id":1,"filepath":"/uploads/a.jpg","title":"first"}]}`)
	}))
	view := &fakeFolderView{}

	flow := NewFolderFlow(gw, view, &fakeNotifier{})
	require.NoError(t, flow.Init(context.Background()))

	require.Len(t, view.photos, 1)
	assert.Equal(t, "first", view.photos[0].Title)
}

func TestFolderInitEmptyState(t *testing.T) {
	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"photos":[]}`)
	}))
	view := &fakeFolderView{}

	flow := NewFolderFlow(gw, view, &fakeNotifier{})
	require.NoError(t, flow.Init(context.Background()))

	assert.Equal(t, FolderEmptyMessage, view.empty)
	assert.Empty(t, view.photos)
}

func TestFolderDeleteRefreshesListing(t *testing.T) {
	deleted := false
	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/photo/3":
			deleted = true
			io.WriteString(w, `{"success":true}`)
		case r.URL.Path == "/api/photo/list":
			if deleted {
				io.WriteString(w, `{"success":true,"photos":[]}`)
			} else {
				io.WriteString(w, `{"success":true,"photos":[{"id":3,"title":"doomed"}]}`)
			}
		default:
			http.NotFound(w, r)
		}
	}))
	view := &fakeFolderView{}

	flow := NewFolderFlow(gw, view, &fakeNotifier{})
	require.NoError(t, flow.Init(context.Background()))
	require.Len(t, view.photos, 1)

	flow.Delete(context.Background(), 3)

	assert.True(t, deleted)
	assert.Equal(t, FolderEmptyMessage, view.empty)
}

func TestStartEditLoadsStoredPhoto(t *testing.T) {
	stored, err := canvas.New(testFrame()).Encode()
	require.NoError(t, err)

	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/uploads/a.jpg", r.URL.Path)
		w.Write(stored)
	}))

	flow := NewFolderFlow(gw, &fakeFolderView{}, &fakeNotifier{})
	eng, err := flow.StartEdit(context.Background(), gateway.Photo{ID: 1, Filepath: "/uploads/a.jpg"})
	require.NoError(t, err)

	w, h := eng.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 90, h)
	assert.Zero(t, eng.Strokes())
}

func TestSaveEditUploadsReplacement(t *testing.T) {
	var gotPhotoID, gotFile string
	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/photo/upload":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotPhotoID = r.FormValue("photo_id")
			_, header, err := r.FormFile("image")
			require.NoError(t, err)
			gotFile = header.Filename
			io.WriteString(w, `{"success":true,"id":5,"filepath":"/uploads/new.jpg"}`)
		case "/api/photo/list":
			io.WriteString(w, `{"success":true,"photos":[]}`)
		default:
			http.NotFound(w, r)
		}
	}))

	eng := canvas.New(testFrame())
	eng.StrokeStart(10, 10)
	eng.StrokeEnd()

	flow := NewFolderFlow(gw, &fakeFolderView{}, &fakeNotifier{})
	require.NoError(t, flow.SaveEdit(context.Background(), eng, 5))

	assert.Equal(t, "5", gotPhotoID)
	assert.Equal(t, "edited.jpg", gotFile)
}

func TestSaveEditFailureKeepsStrokes(t *testing.T) {
	gw := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"success":false,"message":"failed to save file"}`)
	}))
	notify := &fakeNotifier{}

	eng := canvas.New(testFrame())
	eng.StrokeStart(10, 10)
	eng.StrokeEnd()

	flow := NewFolderFlow(gw, &fakeFolderView{}, notify)
	err := flow.SaveEdit(context.Background(), eng, 5)
	require.Error(t, err)

	assert.Equal(t, 1, eng.Strokes())
	assert.NotEmpty(t, notify.alerts)
}
