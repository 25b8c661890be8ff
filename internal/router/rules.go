// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package router classifies free-text travel requests into one of four
// pipeline routes. The rule stage is deterministic and pure; the fallback
// stage consults the structured generator when rule confidence is low.
package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/trip-planner/pkg/types"
)

// Pattern sets per request field category. Matching runs against the
// lowercased input, so English patterns are lowercase; Korean is
// case-insensitive by nature.
var (
	durationPatterns = compileAll(
		`\d+\s*일`,
		`\d+\s*박\s*\d+\s*일`,
		`\d+\s*night`,
		`\d+\s*day`,
		`[가-힣]*\s*박\s*[가-힣]*\s*일`,
	)

	budgetPatterns = compileAll(
		`\d+[만천]\s*원`,
		`\d+\s*만원`,
		`\d+\s*천원`,
		`budget`,
		`예산`,
	)

	companionPatterns = compileAll(
		`혼자`, `솔로`, `혼자서`, `alone`, `solo`,
		`친구`, `가족`, `연인`, `부부`, `동행`,
		`with`, `family`, `friend`,
	)

	purposePatterns = compileAll(
		`휴식`, `관광`, `여행`, `쇼핑`, `맛집`, `카페`, `걷기`, `힐링`,
		`relax`, `travel`, `tourism`, `shopping`, `food`, `cafe`, `walking`,
	)

	// knownPlacePatterns covers well-known destinations plus the Korean
	// administrative suffixes 시/도.
	knownPlacePatterns = compileAll(
		`[가-힣]+[시도]`,
		`도쿄`, `오사카`, `파리`, `런던`, `뉴욕`, `서울`, `부산`,
		`tokyo`, `osaka`, `paris`, `london`, `new york`, `seoul`,
	)

	// capitalizedToken is a best-effort heuristic for English place names.
	// It runs against the original-case input. False negatives are fine:
	// full is the safe default route.
	capitalizedToken = regexp.MustCompile(`\b[A-Z][a-z]+`)
)

// Keyword sets for the explicit-request rules.
var (
	candidatesKeywords = []string{"후보만", "후보", "여행지 후보", "추천 후보", "candidates", "options"}
	itineraryKeywords  = []string{"일정", "코스", "스케줄", "itinerary", "schedule", "plan"}
)

// Korean labels for the four request field categories, in fixed order.
var fieldLabels = [4]string{"기간", "예산", "동행", "목적"}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// requestFields records which information categories a request contains.
type requestFields struct {
	duration    bool
	budget      bool
	companions  bool
	purpose     bool
	destination bool
}

// count returns how many of the four core categories matched. Destination
// is detected separately and does not count toward sufficiency.
func (f requestFields) count() int {
	n := 0
	for _, b := range []bool{f.duration, f.budget, f.companions, f.purpose} {
		if b {
			n++
		}
	}
	return n
}

// missing returns the Korean labels of the unmatched core categories.
func (f requestFields) missing() []string {
	var labels []string
	for i, present := range []bool{f.duration, f.budget, f.companions, f.purpose} {
		if !present {
			labels = append(labels, fieldLabels[i])
		}
	}
	return labels
}

// detectFields scans the request text for the field categories.
func detectFields(text string) requestFields {
	lower := strings.ToLower(text)
	return requestFields{
		duration:    matchesAny(durationPatterns, lower),
		budget:      matchesAny(budgetPatterns, lower),
		companions:  matchesAny(companionPatterns, lower),
		purpose:     matchesAny(purposePatterns, lower),
		destination: matchesAny(knownPlacePatterns, lower) || capitalizedToken.MatchString(text),
	}
}

// Classify routes a free-text travel request by deterministic rules. It is
// a total, pure function: same input, same decision, no I/O.
//
// Rules, in order:
//  1. Two or fewer core fields detected → clarify.
//  2. Explicit candidates-only phrasing → candidates_only.
//  3. Itinerary phrasing plus a detected destination → itinerary_only.
//  4. Otherwise → full.
func Classify(text string) types.RouteDecision {
	lower := strings.ToLower(text)
	detected := detectFields(text)

	if n := detected.count(); n <= 2 {
		return types.RouteDecision{
			Route:         types.RouteClarify,
			Reason:        fmt.Sprintf("조건 부족 (감지된 필드: %d개)", n),
			Confidence:    0.9,
			MissingFields: detected.missing(),
			RouterType:    types.RouterRule,
		}
	}

	for _, kw := range candidatesKeywords {
		if strings.Contains(lower, kw) {
			return types.RouteDecision{
				Route:         types.RouteCandidatesOnly,
				Reason:        "후보만 요청 키워드 감지",
				Confidence:    0.95,
				MissingFields: []string{},
				RouterType:    types.RouterRule,
			}
		}
	}

	hasItineraryKeyword := false
	for _, kw := range itineraryKeywords {
		if strings.Contains(lower, kw) {
			hasItineraryKeyword = true
			break
		}
	}
	if hasItineraryKeyword && detected.destination {
		return types.RouteDecision{
			Route:         types.RouteItineraryOnly,
			Reason:        "일정 요청 + 목적지 명시",
			Confidence:    0.9,
			MissingFields: []string{},
			RouterType:    types.RouterRule,
		}
	}

	return types.RouteDecision{
		Route:         types.RouteFull,
		Reason:        "충분한 조건 + 전체 추천 요청",
		Confidence:    0.85,
		MissingFields: []string{},
		RouterType:    types.RouterRule,
	}
}
