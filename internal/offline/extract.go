package offline

import (
	"regexp"
	"strconv"
	"strings"

	"golf-caddy-core/internal/model"
)

// Extraction patterns assume normalized input: lowercase, slang expanded,
// numbers in digits. The normalizer guarantees these substrings survive.
var (
	holePattern    = regexp.MustCompile(`\bhole (\d{1,2})\b`)
	scorePattern   = regexp.MustCompile(`\b(?:shot a|made a|score of) (\d{1,3})\b`)
	yardagePattern = regexp.MustCompile(`\b(\d{2,3}) yards\b`)
	clubPattern    = regexp.MustCompile(`\b([1-9]-(?:iron|wood)|driver|putter|hybrid|(?:pitching|sand|lob|gap) wedge)\b`)
	liePattern     = regexp.MustCompile(`\b(tee|fairway|rough|bunker|green)\b`)
)

// ExtractEntities pulls structured values out of normalized text.
// Best-effort: anything not found stays nil.
func ExtractEntities(normalizedText string) model.Entities {
	var entities model.Entities

	if m := holePattern.FindStringSubmatch(normalizedText); m != nil {
		if hole, err := strconv.Atoi(m[1]); err == nil && hole >= 1 && hole <= 18 {
			entities.Hole = &hole
		}
	}

	if m := scorePattern.FindStringSubmatch(normalizedText); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			entities.Score = &score
		}
	}

	if m := yardagePattern.FindStringSubmatch(normalizedText); m != nil {
		if yardage, err := strconv.Atoi(m[1]); err == nil {
			entities.Yardage = &yardage
		}
	}

	if m := clubPattern.FindStringSubmatch(normalizedText); m != nil {
		club := m[1]
		entities.Club = &club
	}

	if m := liePattern.FindStringSubmatch(normalizedText); m != nil {
		lie := strings.ToUpper(m[1])
		entities.Lie = &lie
	}

	return entities
}
