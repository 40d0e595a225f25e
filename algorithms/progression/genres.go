package progression

import (
	"sort"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
)

// DefaultGenre is used for unknown genre names
const DefaultGenre = "pop"

// Genre owns the numeral templates a progression is drawn from. Preferred
// keys, avoided qualities and rhythm are descriptive only
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	MajorTemplates [][]string `json:"major_templates"`
	MinorTemplates [][]string `json:"minor_templates"`

	// Favorites bias the chord chosen when a template is extended
	MajorFavorites []string `json:"major_favorites"`
	MinorFavorites []string `json:"minor_favorites"`

	PreferredKeys  []string `json:"preferred_keys"`
	AvoidQualities []string `json:"avoid_qualities,omitempty"`
	Rhythm         string   `json:"rhythm"`
}

// Templates returns the templates for a mode
func (g Genre) Templates(mode tonal.KeyMode) [][]string {
	if mode == tonal.KeyModeMinor {
		return g.MinorTemplates
	}
	return g.MajorTemplates
}

// Favorites returns the biased extension candidates for a mode
func (g Genre) Favorites(mode tonal.KeyMode) []string {
	if mode == tonal.KeyModeMinor {
		return g.MinorFavorites
	}
	return g.MajorFavorites
}

var genres = map[string]Genre{
	"pop": {
		Name:        "pop",
		Description: "Four-chord loops built on the tonic, dominant and submediant",
		MajorTemplates: [][]string{
			{"I", "V", "vi", "IV"},
			{"vi", "IV", "I", "V"},
			{"I", "vi", "IV", "V"},
			{"I", "IV", "vi", "V"},
			{"IV", "I", "V", "vi"},
		},
		MinorTemplates: [][]string{
			{"i", "VI", "III", "VII"},
			{"i", "iv", "VII", "III"},
			{"i", "VII", "VI", "VII"},
			{"VI", "VII", "i", "i"},
		},
		MajorFavorites: []string{"IV", "vi", "V"},
		MinorFavorites: []string{"VI", "VII", "iv"},
		PreferredKeys:  []string{"C", "G", "D", "A", "E", "F", "Am", "Em"},
		Rhythm:         "steady eighth-note pulse, chord changes every bar",
	},
	"rock": {
		Name:        "rock",
		Description: "Major triads and power chords with borrowed flat degrees",
		MajorTemplates: [][]string{
			{"I", "IV", "V", "IV"},
			{"I", "bVII", "IV", "I"},
			{"I", "V", "IV", "I"},
			{"I", "bIII", "IV", "I"},
			{"I", "IV", "I", "V"},
		},
		MinorTemplates: [][]string{
			{"i", "VII", "VI", "VII"},
			{"i", "iv", "v", "i"},
			{"i", "III", "VII", "iv"},
		},
		MajorFavorites: []string{"IV", "bVII", "V"},
		MinorFavorites: []string{"VII", "VI", "iv"},
		PreferredKeys:  []string{"E", "A", "D", "G", "Em", "Am"},
		AvoidQualities: []string{"diminished", "major7"},
		Rhythm:         "driving straight eighths, strong backbeat",
	},
	"jazz": {
		Name:        "jazz",
		Description: "Seventh chords moving by fifths through ii-V-I cells",
		MajorTemplates: [][]string{
			{"ii7", "V7", "Imaj7", "Imaj7"},
			{"Imaj7", "vi7", "ii7", "V7"},
			{"iii7", "vi7", "ii7", "V7", "Imaj7"},
			{"Imaj7", "IVmaj7", "iii7", "vi7", "ii7", "V7", "Imaj7", "Imaj7"},
		},
		MinorTemplates: [][]string{
			{"iiø7", "V7", "i7", "i7"},
			{"i7", "iv7", "V7", "i7"},
			{"i7", "VImaj7", "iiø7", "V7"},
		},
		MajorFavorites: []string{"ii7", "V7", "vi7"},
		MinorFavorites: []string{"iiø7", "V7", "iv7"},
		PreferredKeys:  []string{"F", "Bb", "Eb", "C", "Cm", "Dm"},
		AvoidQualities: []string{"power"},
		Rhythm:         "swung quarter notes, two chords per bar in turnarounds",
	},
	"blues": {
		Name:        "blues",
		Description: "Dominant sevenths over the twelve-bar form",
		MajorTemplates: [][]string{
			{"I7", "I7", "I7", "I7", "IV7", "IV7", "I7", "I7", "V7", "IV7", "I7", "V7"},
			{"I7", "IV7", "I7", "I7", "IV7", "IV7", "I7", "I7", "V7", "IV7", "I7", "I7"},
			{"I7", "IV7", "I7", "V7"},
		},
		MinorTemplates: [][]string{
			{"i7", "i7", "i7", "i7", "iv7", "iv7", "i7", "i7", "VI7", "V7", "i7", "V7"},
			{"i7", "iv7", "i7", "V7"},
		},
		MajorFavorites: []string{"IV7", "V7", "I7"},
		MinorFavorites: []string{"iv7", "V7", "VI7"},
		PreferredKeys:  []string{"E", "A", "G", "C", "Bb", "Am"},
		AvoidQualities: []string{"major7"},
		Rhythm:         "shuffle feel, one chord per bar",
	},
	"classical": {
		Name:        "classical",
		Description: "Functional progressions closing on authentic cadences",
		MajorTemplates: [][]string{
			{"I", "IV", "V", "I"},
			{"I", "ii", "V", "I"},
			{"I", "vi", "ii", "V", "I"},
			{"I", "V", "vi", "iii", "IV", "I", "IV", "V"},
		},
		MinorTemplates: [][]string{
			{"i", "iv", "V", "i"},
			{"i", "ii°", "V", "i"},
			{"i", "VI", "iv", "V", "i"},
		},
		MajorFavorites: []string{"V", "IV", "ii"},
		MinorFavorites: []string{"V", "iv", "ii°"},
		PreferredKeys:  []string{"C", "D", "G", "F", "Bb", "Dm", "Gm"},
		AvoidQualities: []string{"power", "sus2"},
		Rhythm:         "harmonic rhythm slowing into cadences",
	},
	"folk": {
		Name:        "folk",
		Description: "Open triads on the primary degrees",
		MajorTemplates: [][]string{
			{"I", "IV", "I", "V"},
			{"I", "V", "IV", "I"},
			{"I", "IV", "V", "I"},
			{"I", "vi", "IV", "V"},
		},
		MinorTemplates: [][]string{
			{"i", "VII", "i", "v"},
			{"i", "III", "VII", "i"},
			{"i", "iv", "i", "VII"},
		},
		MajorFavorites: []string{"IV", "V", "vi"},
		MinorFavorites: []string{"VII", "III", "v"},
		PreferredKeys:  []string{"G", "D", "C", "A", "Em", "Am"},
		AvoidQualities: []string{"diminished7", "augmented"},
		Rhythm:         "strummed three- or four-beat patterns",
	},
	"rnb": {
		Name:        "rnb",
		Description: "Extended chords with smooth stepwise motion",
		MajorTemplates: [][]string{
			{"Imaj7", "vi7", "ii7", "V7"},
			{"ii7", "iii7", "IVmaj7", "V7"},
			{"IVmaj7", "iii7", "ii7", "Imaj7"},
		},
		MinorTemplates: [][]string{
			{"i7", "iv7", "VII7", "III7"},
			{"i7", "VI7", "iv7", "V7"},
		},
		MajorFavorites: []string{"ii7", "IVmaj7", "vi7"},
		MinorFavorites: []string{"iv7", "VII7", "VImaj7"},
		PreferredKeys:  []string{"Eb", "Ab", "Db", "F", "Cm", "Fm"},
		AvoidQualities: []string{"power"},
		Rhythm:         "laid-back sixteenth-note groove",
	},
	"country": {
		Name:        "country",
		Description: "Primary triads with secondary dominant colour",
		MajorTemplates: [][]string{
			{"I", "IV", "V", "I"},
			{"I", "I", "IV", "V"},
			{"I", "V", "vi", "IV"},
			{"I", "IV", "I", "V", "I"},
		},
		MinorTemplates: [][]string{
			{"i", "VI", "VII", "i"},
			{"i", "iv", "VII", "i"},
		},
		MajorFavorites: []string{"IV", "V", "ii"},
		MinorFavorites: []string{"VI", "VII", "iv"},
		PreferredKeys:  []string{"G", "D", "A", "E", "C"},
		AvoidQualities: []string{"diminished7", "half-diminished7"},
		Rhythm:         "boom-chick two-beat",
	},
	"electronic": {
		Name:        "electronic",
		Description: "Looping minor progressions over a steady pulse",
		MajorTemplates: [][]string{
			{"vi", "IV", "I", "V"},
			{"I", "iii", "vi", "IV"},
			{"IV", "V", "vi", "vi"},
		},
		MinorTemplates: [][]string{
			{"i", "VI", "III", "VII"},
			{"i", "i", "VI", "VII"},
			{"i", "v", "VI", "iv"},
		},
		MajorFavorites: []string{"vi", "IV", "V"},
		MinorFavorites: []string{"VI", "VII", "III"},
		PreferredKeys:  []string{"Am", "Fm", "Cm", "Gm", "F#m"},
		AvoidQualities: []string{"dominant7"},
		Rhythm:         "four-on-the-floor, one chord per bar or two",
	},
	"metal": {
		Name:        "metal",
		Description: "Aeolian and phrygian motion on power chords",
		MajorTemplates: [][]string{
			{"I", "bVI", "bVII", "I"},
			{"I", "bIII", "bVII", "IV"},
			{"I", "bII", "I", "bVII"},
		},
		MinorTemplates: [][]string{
			{"i", "VI", "VII", "i"},
			{"i", "bII", "i", "VII"},
			{"i", "iv", "VI", "V"},
		},
		MajorFavorites: []string{"bVI", "bVII", "bIII"},
		MinorFavorites: []string{"VI", "VII", "bII"},
		PreferredKeys:  []string{"Em", "Dm", "Am", "C#m", "E"},
		AvoidQualities: []string{"major7", "sus2"},
		Rhythm:         "palm-muted gallops and sixteenth-note chugs",
	},
}

// LookupGenre returns a registered genre by name, case-insensitively
func LookupGenre(name string) (Genre, bool) {
	g, ok := genres[strings.ToLower(strings.TrimSpace(name))]
	return g, ok
}

// GenreNames lists the registered genres
func GenreNames() []string {
	names := make([]string, 0, len(genres))
	for name := range genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
