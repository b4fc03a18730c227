package roblox

import "strings"

// SecurityCookie is the name of the Roblox session cookie.
const SecurityCookie = ".ROBLOSECURITY"

// warningBanner prefixes cookies copied out of Roblox's own export format.
const warningBanner = "_|WARNING:"

// ParseCookie extracts the canonical session-token value from the supported
// input encodings: the bulk-export banner format, a `.ROBLOSECURITY=value`
// assignment, or the bare token. It never fails; unrecognized input is
// treated as a bare token. Idempotent on already-canonical values.
func ParseCookie(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, warningBanner) {
		if parts := strings.SplitN(raw, "_|", 3); len(parts) == 3 {
			return "_|" + parts[2]
		}
	}

	if idx := strings.Index(raw, SecurityCookie+"="); idx >= 0 {
		value := raw[idx+len(SecurityCookie)+1:]
		if end := strings.IndexByte(value, ';'); end >= 0 {
			value = value[:end]
		}
		return value
	}

	return raw
}
