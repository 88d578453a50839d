// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	userstore "github.com/Artemka1806/LyBotAPI/internal/app/store/users"
	"github.com/Artemka1806/LyBotAPI/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrUpstreamAuth means the identity provider call failed or returned an
// incomplete payload. It always surfaces as a failed request; no partial
// user is ever created.
var ErrUpstreamAuth = errors.New("identity provider returned no usable profile")

// googleUserInfoURL is the default profile endpoint.
const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Handler handles Google OAuth authentication for the Telegram bot login.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger

	// OAuth configuration
	ClientID     string
	ClientSecret string
	RedirectURL  string // the /auth callback registered with Google

	// Endpoint and UserInfoURL default to Google's. They are fields so tests
	// can point them at local servers.
	Endpoint    oauth2.Endpoint
	UserInfoURL string

	// BotDeepLink is where a resolved user lands, e.g. "https://t.me/lybot".
	BotDeepLink string
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(users *userstore.Store, clientID, clientSecret, redirectURL, botDeepLink string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     google.Endpoint,
		UserInfoURL:  googleUserInfoURL,
		BotDeepLink:  botDeepLink,
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: h.Endpoint,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /tgbotlogin                                                              |
| Redirects the user to Google's OAuth 2.0 consent screen.                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	url := h.oauth2Config().AuthCodeURL("", oauth2.AccessTypeOffline)

	h.Log.Debug("initiating Google OAuth flow", zap.String("redirect_url", url))

	http.Redirect(w, r, url, http.StatusFound)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth?code=…                                                             |
| Handles Google's callback: exchanges the code, fetches the profile, upserts  |
| the user by email, and redirects into the bot deep link with the user ID.    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	code := query.Get(r, "code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		writeError(w, http.StatusBadRequest, "missing code parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	profile, err := h.exchange(ctx, code)
	if err != nil {
		h.Log.Error("Google OAuth exchange failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "authentication with identity provider failed")
		return
	}

	// The upsert is a couple of single-document operations; it gets the
	// short deadline rather than inheriting the upstream one.
	storeCtx, storeCancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer storeCancel()

	user, outcome, err := h.Users.Upsert(storeCtx, userstore.Profile{
		GivenName:  profile.GivenName,
		FamilyName: profile.FamilyName,
		Email:      profile.Email,
		AvatarURL:  profile.Picture,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrMissingIdentity) {
			h.Log.Error("upsert invariant violation: conflicting email has no document",
				zap.String("email", profile.Email))
			writeError(w, http.StatusInternalServerError, "account conflict could not be resolved")
			return
		}
		h.Log.Error("user upsert failed", zap.Error(err), zap.String("email", profile.Email))
		writeError(w, http.StatusInternalServerError, "user store unavailable")
		return
	}

	h.Log.Info("user logged in via Google OAuth",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email),
		zap.Bool("created", outcome == userstore.OutcomeCreated))

	http.Redirect(w, r, h.BotDeepLink+"?start="+user.ID.Hex(), http.StatusFound)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Upstream calls                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// exchange performs the two upstream calls in strict sequence: code→token,
// then token→profile. Both run over clients scoped to ctx and released with
// it; neither call is retried.
func (h *Handler) exchange(ctx context.Context, code string) (*googleUserInfo, error) {
	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %v", ErrUpstreamAuth, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response carried no access token", ErrUpstreamAuth)
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	if info.Email == "" || info.GivenName == "" || info.FamilyName == "" {
		return nil, fmt.Errorf("%w: profile missing required fields", ErrUpstreamAuth)
	}

	return info, nil
}

// fetchUserInfo retrieves the profile from the userinfo endpoint.
func (h *Handler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get(h.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch user info: %v", ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo status code %d", ErrUpstreamAuth, resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decode user info: %v", ErrUpstreamAuth, err)
	}

	return &info, nil
}

// writeError emits the JSON error payload used when the login cannot end in
// a redirect.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
