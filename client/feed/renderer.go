// File: /client/feed/renderer.go

// Package feed turns the synced snapshot into the card list the sns page
// shows. Render is pure: same snapshot and query, same cards.
package feed

import (
	"sort"
	"strings"

	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// Card is one rendered feed entry.
type Card struct {
	PostID   int
	Author   string
	Caption  string
	Filepath string
	Likes    int
	Liked    bool
	// Mine controls whether the delete action is offered.
	Mine     bool
	Comments []gateway.Comment
}

// EmptyMessage is shown when no post matches the active query.
const EmptyMessage = "No posts yet."

// Render filters and orders the snapshot. A post is included when its
// caption or author contains query as a case-insensitive substring (the
// empty query matches everything); cards come newest first.
func Render(posts []gateway.Post, likes map[int]bool, query string) []Card {
	q := strings.ToLower(query)

	matched := make([]gateway.Post, 0, len(posts))
	for _, p := range posts {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Caption), q) ||
			strings.Contains(strings.ToLower(p.User), q) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	cards := make([]Card, 0, len(matched))
	for _, p := range matched {
		cards = append(cards, Card{
			PostID:   p.ID,
			Author:   p.User,
			Caption:  p.Caption,
			Filepath: p.Filepath,
			Likes:    p.Likes,
			Liked:    likes[p.ID],
			Mine:     p.IsMine,
			Comments: p.Comments,
		})
	}
	return cards
}
