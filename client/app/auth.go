// File: /client/app/auth.go
package app

import (
	"context"
	"log"

	"github.com/nousyukukangen-ringo/isibasigeru/client/gateway"
	"github.com/nousyukukangen-ringo/isibasigeru/client/state"
)

// AuthFlow backs the login and signup pages. Form validation happens
// before any network call; backend failures surface as user-visible
// messages with no navigation.
type AuthFlow struct {
	gw       *gateway.Client
	store    *state.Store
	notify   Notifier
	navigate func(ctx context.Context, fragment string)
}

func NewAuthFlow(gw *gateway.Client, store *state.Store, notify Notifier, navigate func(ctx context.Context, fragment string)) *AuthFlow {
	return &AuthFlow{
		gw:       gw,
		store:    store,
		notify:   notify,
		navigate: navigate,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and, on success, syncs the snapshot and moves to the
// map page.
func (f *AuthFlow) Login(ctx context.Context, email, password string) {
	if email == "" || password == "" {
		f.notify.Alert("Please enter your email address and password.")
		return
	}

	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/login", credentials{Email: email, Password: password}, &resp); err != nil {
		log.Printf("login failed: %v", err)
		f.notify.Alert("Login failed. Please try again.")
		return
	}
	if !resp.Success {
		f.notify.Alert(resp.Message)
		return
	}

	if err := f.store.Sync(ctx); err != nil {
		log.Printf("initial sync failed: %v", err)
	}
	f.navigate(ctx, "map")
}

// Signup creates an account and moves to the login page on success.
func (f *AuthFlow) Signup(ctx context.Context, email, password, confirm string) {
	if email == "" || password == "" {
		f.notify.Alert("Please enter your email address and password.")
		return
	}
	if password != confirm {
		f.notify.Alert("Passwords do not match.")
		return
	}

	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/signup", credentials{Email: email, Password: password}, &resp); err != nil {
		log.Printf("signup failed: %v", err)
		f.notify.Alert("Signup failed. Please try again.")
		return
	}
	if !resp.Success {
		f.notify.Alert(resp.Message)
		return
	}

	f.navigate(ctx, "login")
}

// Logout ends the session and returns to the login page.
func (f *AuthFlow) Logout(ctx context.Context) {
	var resp gateway.Envelope
	if err := f.gw.PostJSON(ctx, "/api/logout", struct{}{}, &resp); err != nil {
		log.Printf("logout failed: %v", err)
	}
	f.navigate(ctx, "login")
}
