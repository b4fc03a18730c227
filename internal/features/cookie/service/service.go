package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/cookie/models"
	"meowtool-backend/internal/platform/roblox"
)

const (
	// Upper bound on cookie pipelines running at once within one request.
	maxConcurrentChecks = 25

	// Cookies are echoed back truncated so the full credential never
	// appears in responses or logs.
	cookieEchoLength = 50

	// Upstream error strings are truncated before being surfaced.
	errorEchoLength = 100
)

type CookieService interface {
	Check(ctx context.Context, req *models.CheckRequest) []models.CheckResult
	Refresh(ctx context.Context, req *models.RefreshRequest) *models.RefreshResult
	Sort(content []byte, removeDuplicates bool) *models.SortResult
}

type cookieService struct {
	endpoints roblox.Endpoints
}

func NewCookieService(endpoints roblox.Endpoints) CookieService {
	return &cookieService{endpoints: endpoints}
}

// Check validates a batch of cookies concurrently. Each cookie gets its own
// session and pipeline; one result slot per input, input order preserved,
// and no individual failure aborts the batch.
func (s *cookieService) Check(ctx context.Context, req *models.CheckRequest) []models.CheckResult {
	timeout := time.Duration(validation.NormalizeTimeout(req.Timeout)) * time.Second
	results := make([]models.CheckResult, len(req.Cookies))

	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup

	for i, cookie := range req.Cookies {
		wg.Add(1)
		go func(i int, cookie string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = models.CheckResult{
						Cookie: truncateCookie(cookie),
						Error:  truncateMessage(fmt.Sprintf("internal error: %v", r)),
					}
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.checkOne(ctx, cookie, req.Proxy, timeout)
		}(i, cookie)
	}

	wg.Wait()
	return results
}

// checkOne runs the full pipeline for a single cookie: normalize, handshake,
// identity lookup, then the enrichment fan-out.
func (s *cookieService) checkOne(ctx context.Context, rawCookie, proxy string, timeout time.Duration) models.CheckResult {
	token := roblox.ParseCookie(rawCookie)
	echo := truncateCookie(rawCookie)

	sess := roblox.NewSession(s.endpoints, proxy, timeout)
	sess.Handshake(ctx)
	sess.SetCookie(token)

	var identity struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	}
	status, err := sess.GetJSON(ctx, s.endpoints.Users+"/v1/users/authenticated", &identity)
	if err != nil {
		return models.CheckResult{Cookie: echo, Error: truncateMessage(err.Error())}
	}
	if status != http.StatusOK {
		return models.CheckResult{Cookie: echo, Error: fmt.Sprintf("invalid cookie (%d)", status)}
	}
	if identity.ID == 0 {
		return models.CheckResult{Cookie: echo, Error: "no user ID"}
	}

	account := &models.AccountData{
		UserID:      &identity.ID,
		Username:    &identity.Name,
		DisplayName: &identity.DisplayName,
	}
	s.enrich(ctx, sess, identity.ID, account)

	return models.CheckResult{Cookie: echo, Valid: true, Account: account}
}

// enrich issues the independent attribute lookups concurrently. Each call
// writes a disjoint field of account and absorbs its own failure: a broken
// sub-source leaves its field at the zero value and never affects siblings
// or the overall result.
func (s *cookieService) enrich(ctx context.Context, sess *roblox.Session, userID int64, account *models.AccountData) {
	eps := sess.Endpoints
	var wg sync.WaitGroup

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { _ = recover() }()
			fn()
		}()
	}

	run(func() {
		var data struct {
			Created  string `json:"created"`
			IsBanned bool   `json:"isBanned"`
		}
		if st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d", eps.Users, userID), &data); err == nil && st == http.StatusOK {
			account.Created = &data.Created
			account.IsBanned = data.IsBanned
		}
	})

	run(func() {
		var data struct {
			Robux int64 `json:"robux"`
		}
		if st, err := sess.GetJSON(ctx, eps.Economy+"/v1/user/currency", &data); err == nil && st == http.StatusOK {
			account.Robux = &data.Robux
		}
	})

	run(func() {
		var data struct {
			Verified bool `json:"verified"`
		}
		if st, err := sess.GetJSON(ctx, eps.AccountSettings+"/v1/email", &data); err == nil && st == http.StatusOK {
			account.EmailVerified = data.Verified
		}
	})

	run(func() {
		var data struct {
			Enabled bool `json:"enabled"`
		}
		if st, err := sess.GetJSON(ctx, eps.AccountSettings+"/v1/2fa", &data); err == nil && st == http.StatusOK {
			account.Is2FAEnabled = data.Enabled
		}
	})

	run(func() {
		var data struct {
			IsEnabled bool `json:"isEnabled"`
		}
		if st, err := sess.GetJSON(ctx, eps.AccountSettings+"/v1/pin", &data); err == nil && st == http.StatusOK {
			account.HasPIN = data.IsEnabled
		}
	})

	run(func() {
		// Membership probe: a 200 means premium, no body parsing needed.
		if st, err := sess.GetJSON(ctx, eps.Economy+"/v1/user/premium-membership", nil); err == nil && st == http.StatusOK {
			account.Premium = true
		}
	})

	run(func() {
		var data struct {
			Count int `json:"count"`
		}
		if st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d/friends/count", eps.Friends, userID), &data); err == nil && st == http.StatusOK {
			account.FriendsCount = &data.Count
		}
	})

	run(func() {
		var data struct {
			Count int `json:"count"`
		}
		if st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d/followers/count", eps.Friends, userID), &data); err == nil && st == http.StatusOK {
			account.FollowersCount = &data.Count
		}
	})

	run(func() {
		var data struct {
			Data []struct {
				Group struct {
					ID int64 `json:"id"`
				} `json:"group"`
			} `json:"data"`
		}
		if st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d/groups/roles", eps.Groups, userID), &data); err == nil && st == http.StatusOK {
			count := len(data.Data)
			account.GroupsCount = &count
		}
	})

	run(func() {
		var data struct {
			CanTrade bool `json:"canTrade"`
		}
		if st, err := sess.GetJSON(ctx, eps.AccountSettings+"/v1/trade-privacy", &data); err == nil && st == http.StatusOK {
			account.CanTrade = data.CanTrade
		}
	})

	wg.Wait()
}

// Refresh attempts to mint a new cookie from an existing one by replaying
// the logout call and inspecting the response for a reissued security
// cookie. Success requires a new value strictly different from the old one.
func (s *cookieService) Refresh(ctx context.Context, req *models.RefreshRequest) *models.RefreshResult {
	token := roblox.ParseCookie(req.Cookie)
	echo := truncateCookie(req.Cookie)

	sess := roblox.NewSession(s.endpoints, req.Proxy, validation.DefaultTimeout*time.Second)
	sess.Handshake(ctx)
	sess.SetCookie(token)

	resp, err := sess.Do(ctx, http.MethodPost, s.endpoints.Auth+"/v2/logout")
	if err != nil {
		return &models.RefreshResult{OldCookie: echo, Error: truncateMessage(err.Error())}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	var newCookie string
	for _, c := range resp.Cookies() {
		if c.Name == roblox.SecurityCookie {
			newCookie = c.Value
			break
		}
	}

	if newCookie == "" || newCookie == token {
		return &models.RefreshResult{OldCookie: echo, Error: "Could not refresh cookie"}
	}

	return &models.RefreshResult{OldCookie: echo, NewCookie: newCookie, Success: true}
}

func truncateCookie(cookie string) string {
	if len(cookie) <= cookieEchoLength {
		return cookie
	}
	return cookie[:cookieEchoLength] + "..."
}

func truncateMessage(msg string) string {
	if len(msg) <= errorEchoLength {
		return msg
	}
	return msg[:errorEchoLength]
}
