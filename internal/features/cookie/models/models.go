package models

// CheckRequest is the payload of POST /api/cookie/check.
type CheckRequest struct {
	Cookies []string `json:"cookies"`
	Proxy   string   `json:"proxy"`
	Timeout int      `json:"timeout"`
}

// AccountData carries the attributes gathered for one valid session. Every
// field except the identity triple is filled by an independent enrichment
// call; a nil pointer (or false flag) means that source failed or was
// unreachable, not that the account lacks the attribute.
type AccountData struct {
	UserID         *int64  `json:"user_id"`
	Username       *string `json:"username"`
	DisplayName    *string `json:"display_name"`
	Created        *string `json:"created"`
	IsBanned       bool    `json:"is_banned"`
	Robux          *int64  `json:"robux"`
	Premium        bool    `json:"premium"`
	HasPIN         bool    `json:"has_pin"`
	Is2FAEnabled   bool    `json:"is_2fa_enabled"`
	EmailVerified  bool    `json:"email_verified"`
	CanTrade       bool    `json:"can_trade"`
	FriendsCount   *int    `json:"friends_count"`
	FollowersCount *int    `json:"followers_count"`
	GroupsCount    *int    `json:"groups_count"`
}

// CheckResult is one entry of the POST /api/cookie/check response. Account
// is present iff Valid; Error is set iff not Valid.
type CheckResult struct {
	Cookie  string       `json:"cookie"`
	Valid   bool         `json:"valid"`
	Account *AccountData `json:"account,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// RefreshRequest is the payload of POST /api/cookie/refresh.
type RefreshRequest struct {
	Cookie string `json:"cookie" binding:"required"`
	Proxy  string `json:"proxy"`
}

// RefreshResult reports a cookie refresh attempt.
type RefreshResult struct {
	OldCookie string `json:"old_cookie"`
	NewCookie string `json:"new_cookie,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// SortResult is the response of POST /api/cookie/sort.
type SortResult struct {
	TotalFound  int      `json:"total_found"`
	Cookies     []string `json:"cookies"`
	UniqueCount int      `json:"unique_count"`
}
