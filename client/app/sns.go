// File: /client/app/sns.go
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/nousyukukangen-ringo/isibasigeru/client/feed"
	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
	"github.com/nousyukukangen-ringo/isibasigeru/client/state"
)

// FeedFlow backs the sns page: search, like, comment, delete and sharing
// from the folder. Every successful action re-syncs the snapshot and
// re-renders with the active query preserved.
type FeedFlow struct {
	gw     *gateway.Client
	store  *state.Store
	view   FeedView
	notify Notifier

	query string
}

func NewFeedFlow(gw *gateway.Client, store *state.Store, view FeedView, notify Notifier) *FeedFlow {
	return &FeedFlow{
		gw:     gw,
		store:  store,
		view:   view,
		notify: notify,
	}
}

// Init syncs and paints the feed. A failed sync keeps whatever snapshot we
// already had; an empty feed is a normal state, not an error.
func (f *FeedFlow) Init(ctx context.Context) error {
	if err := f.store.Sync(ctx); err != nil {
		log.Printf("feed sync failed: %v", err)
	}
	f.render()
	return nil
}

// Search updates the active filter and re-renders from the snapshot.
func (f *FeedFlow) Search(query string) {
	f.query = query
	f.render()
}

// Query returns the active filter text.
func (f *FeedFlow) Query() string {
	return f.query
}

func (f *FeedFlow) render() {
	cards := feed.Render(f.store.Posts(), f.store.Likes(), f.query)
	if len(cards) == 0 {
		f.view.ShowEmpty(feed.EmptyMessage)
		return
	}
	f.view.ShowCards(cards)
}

type likeRequest struct {
	PostID int    `json:"post_id"`
	Action string `json:"action"`
}

// ToggleLike flips the viewer's like on a post, then re-syncs and
// re-renders. On failure the snapshot, and so the view, is unchanged.
func (f *FeedFlow) ToggleLike(ctx context.Context, postID int) {
	action := "like"
	if f.store.Liked(postID) {
		action = "unlike"
	}

	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/like", likeRequest{PostID: postID, Action: action}, &resp); err != nil {
		log.Printf("like toggle failed: %v", err)
		f.notify.Alert("Could not update the like. Please try again.")
		return
	}

	f.refresh(ctx)
}

type commentRequest struct {
	PostID int    `json:"post_id"`
	Text   string `json:"text"`
}

// AddComment appends a comment to a post.
func (f *FeedFlow) AddComment(ctx context.Context, postID int, text string) {
	if text == "" {
		return
	}

	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/comment", commentRequest{PostID: postID, Text: text}, &resp); err != nil {
		log.Printf("comment failed: %v", err)
		f.notify.Alert("Could not post the comment. Please try again.")
		return
	}

	f.refresh(ctx)
}

type unshareRequest struct {
	PostID int `json:"post_id"`
}

// Delete removes the viewer's own post from the feed. The photo stays in
// the folder.
func (f *FeedFlow) Delete(ctx context.Context, postID int) {
	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/sns/delete", unshareRequest{PostID: postID}, &resp); err != nil {
		log.Printf("post delete failed: %v", err)
		f.notify.Alert("Could not delete the post.")
		return
	}

	f.refresh(ctx)
}

// FolderPhotos lists the viewer's photos for the share-from-folder
// selector.
func (f *FeedFlow) FolderPhotos(ctx context.Context) ([]gateway.Photo, error) {
	var resp gateway.PhotoListResponse
	if err := f.gw.Get(ctx, "/api/photo/list", &resp); err != nil {
		return nil, fmt.Errorf("load folder: %w", err)
	}
	return resp.Photos, nil
}

type shareRequest struct {
	PhotoID int    `json:"photo_id"`
	Caption string `json:"caption"`
}

// Share publishes a folder photo to the feed with a caption.
func (f *FeedFlow) Share(ctx context.Context, photoID int, caption string) {
	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/sns/post", shareRequest{PhotoID: photoID, Caption: caption}, &resp); err != nil {
		log.Printf("share failed: %v", err)
		f.notify.Alert("Could not share the photo.")
		return
	}

	f.refresh(ctx)
}

// refresh is the full re-fetch after a mutation; the client never applies
// optimistic updates it would have to reconcile.
func (f *FeedFlow) refresh(ctx context.Context) {
	if err := f.store.Sync(ctx); err != nil {
		log.Printf("feed sync failed: %v", err)
	}
	f.render()
}
