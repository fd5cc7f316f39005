// File: /client/router/router.go

// Package router maps a URL fragment to its page template and init routine.
// Every navigation fully replaces the root content, so handlers bound by
// the previous page go away with its DOM subtree.
package router

import (
	"context"
	"log"

	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
)

// DefaultFragment is shown when the fragment is empty.
const DefaultFragment = "login"

// InitFunc binds a freshly mounted page: event handlers, data fetches.
type InitFunc func(ctx context.Context) error

// Root is where page content is mounted. Replace swaps the entire subtree.
type Root interface {
	Replace(html string)
}

type Router struct {
	gw      *gateway.Client
	root    Root
	pages   map[string]InitFunc
	current string
}

func New(gw *gateway.Client, root Root) *Router {
	return &Router{
		gw:    gw,
		root:  root,
		pages: make(map[string]InitFunc),
	}
}

// Handle registers the init routine for a fragment.
func (r *Router) Handle(fragment string, init InitFunc) {
	r.pages[fragment] = init
}

// Current returns the fragment currently displayed.
func (r *Router) Current() string {
	return r.current
}

// Navigate fetches the fragment's template, replaces the root content and
// runs the page init. Unknown fragments are a no-op; a failed template
// fetch leaves the current page displayed.
func (r *Router) Navigate(ctx context.Context, fragment string) {
	if fragment == "" {
		fragment = DefaultFragment
	}

	init, ok := r.pages[fragment]
	if !ok {
		log.Printf("router: unknown fragment %q", fragment)
		return
	}

	html, err := r.gw.Page(ctx, fragment)
	if err != nil {
		log.Printf("router: failed to load page %q: %v", fragment, err)
		return
	}

	r.root.Replace(html)
	r.current = fragment

	if err := init(ctx); err != nil {
		log.Printf("router: init for %q failed: %v", fragment, err)
	}
}
