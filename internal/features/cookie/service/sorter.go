package service

import (
	"regexp"
	"strings"

	"meowtool-backend/internal/features/cookie/models"
	"meowtool-backend/internal/platform/roblox"
)

// Two independent lexical scans over an uploaded document: the bulk-export
// banner format, and bare `.ROBLOSECURITY=value` assignments which are
// rewrapped into canonical key=value form.
var (
	bannerPattern = regexp.MustCompile(`_[|]WARNING:[^\s]+`)
	assignPattern = regexp.MustCompile(`\.ROBLOSECURITY=([^;\s]+)`)
)

// Sort extracts cookie candidates from raw document bytes. Invalid UTF-8
// sequences are dropped rather than treated as an error. Deduplication keeps
// the first occurrence of each cookie, preserving scan order.
func (s *cookieService) Sort(content []byte, removeDuplicates bool) *models.SortResult {
	text := strings.ToValidUTF8(string(content), "")

	found := bannerPattern.FindAllString(text, -1)
	for _, m := range assignPattern.FindAllStringSubmatch(text, -1) {
		found = append(found, roblox.SecurityCookie+"="+m[1])
	}

	if removeDuplicates {
		seen := make(map[string]struct{}, len(found))
		unique := found[:0]
		for _, cookie := range found {
			if _, ok := seen[cookie]; ok {
				continue
			}
			seen[cookie] = struct{}{}
			unique = append(unique, cookie)
		}
		found = unique
	}

	if found == nil {
		found = []string{}
	}

	return &models.SortResult{
		TotalFound:  len(found),
		Cookies:     found,
		UniqueCount: len(found),
	}
}
