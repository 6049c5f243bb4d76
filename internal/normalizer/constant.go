package normalizer

// Modification labels reported in Result.Applied.
const (
	ModLowercase = "lowercase"
	ModSlang     = "slang"
	ModNumber    = "number"
	ModProfanity = "profanity"
)

// slangDictionary expands golf shorthand into the canonical vocabulary the
// matchers key on. Replacement is whole-word, so entity-bearing substrings
// ("hole 5", "150 yards") are never damaged.
var slangDictionary = map[string]string{
	// Irons
	"1i": "1-iron",
	"2i": "2-iron",
	"3i": "3-iron",
	"4i": "4-iron",
	"5i": "5-iron",
	"6i": "6-iron",
	"7i": "7-iron",
	"8i": "8-iron",
	"9i": "9-iron",

	// Woods and wedges
	"3w": "3-wood",
	"5w": "5-wood",
	"7w": "7-wood",
	"pw": "pitching wedge",
	"sw": "sand wedge",
	"lw": "lob wedge",
	"gw": "gap wedge",

	// Course slang
	"big dog":     "driver",
	"flatstick":   "putter",
	"the beach":   "bunker",
	"dance floor": "green",
	"yds":         "yards",
	"yardage":     "yards", // keeps distance keyword matching on one token
}

// numberWords converts spelled-out numbers so "hole five" stays extractable
// as "hole 5" downstream.
var numberWords = map[string]string{
	"zero":      "0",
	"one":       "1",
	"two":       "2",
	"three":     "3",
	"four":      "4",
	"five":      "5",
	"six":       "6",
	"seven":     "7",
	"eight":     "8",
	"nine":      "9",
	"ten":       "10",
	"eleven":    "11",
	"twelve":    "12",
	"thirteen":  "13",
	"fourteen":  "14",
	"fifteen":   "15",
	"sixteen":   "16",
	"seventeen": "17",
	"eighteen":  "18",
}

// profanityList is masked, never removed, so token positions stay stable.
var profanityList = []string{
	"damn",
	"dammit",
	"shit",
	"fuck",
	"fucking",
	"crap",
	"bastard",
	"goddamn",
}

const profanityMask = "***"
