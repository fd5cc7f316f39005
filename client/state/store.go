// File: /client/state/store.go

// Package state holds the client's last-synchronized snapshot of the feed.
// The snapshot is never the source of truth: every mutation elsewhere is
// followed by a full Sync before anything is re-rendered.
package state

import (
	"context"

	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// Store is the in-memory snapshot of posts and the viewer's like-set.
// Sync replaces it wholesale; there is no partial merge.
type Store struct {
	gw    *gateway.Client
	posts []gateway.Post
	likes map[int]bool
}

func New(gw *gateway.Client) *Store {
	return &Store{
		gw:    gw,
		likes: map[int]bool{},
	}
}

// Sync fetches the full post collection and the viewer's like-set in one
// round trip and swaps the snapshot. On failure the previous snapshot is
// kept untouched and the error returned; callers log and keep the stale
// view rather than blanking the screen.
func (s *Store) Sync(ctx context.Context) error {
	var resp gateway.AllPostsResponse
	if err := s.gw.Get(ctx, "/api/all_posts", &resp); err != nil {
		return err
	}

	likes := make(map[int]bool, len(resp.MyLikes))
	for _, id := range resp.MyLikes {
		likes[id] = true
	}

	s.posts = resp.Posts
	s.likes = likes
	return nil
}

// Posts returns the current snapshot.
func (s *Store) Posts() []gateway.Post {
	return s.posts
}

// Likes returns the viewer's like-set.
func (s *Store) Likes() map[int]bool {
	return s.likes
}

// Liked reports whether the viewer has liked the post.
func (s *Store) Liked(postID int) bool {
	return s.likes[postID]
}
