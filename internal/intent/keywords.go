package intent

import (
	"regexp"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

// keywordSet is one entry of the ordered dispatch table.
type keywordSet struct {
	kind       diagram.Kind
	confidence float64
	patterns   []string
	re         *regexp.Regexp
}

// Checked in this order; the first set that matches wins.
var keywordSets = []*keywordSet{
	{
		kind:       diagram.KindMindMap,
		confidence: 0.9,
		patterns: []string{
			`mind[\s-]?maps?`,
			`cartes?[\s-]mentales?`,
			`cartes?[\s-]heuristiques?`,
			`arbres?[\s-]d'idées`,
		},
	},
	{
		kind:       diagram.KindFlowDiagram,
		confidence: 0.9,
		patterns: []string{
			`flow[\s-]?diagrams?`,
			`flow[\s-]?charts?`,
			`diagrammes?[\s-]de[\s-]flux`,
			`organigrammes?`,
			`logigrammes?`,
			`process[\s-]maps?`,
			`workflows?`,
		},
	},
	{
		kind:       diagram.KindStickyNotes,
		confidence: 0.9,
		patterns: []string{
			`post[\s-]?its?`,
			`sticky[\s-]?notes?`,
			`stickies`,
			`notes?[\s-]adhésives?`,
			`pense[\s-]bêtes?`,
		},
	},
	{
		kind:       diagram.KindFrame,
		confidence: 0.8,
		patterns: []string{
			`frames?`,
			`cadres?`,
			`zones?`,
		},
	},
	{
		kind:       diagram.KindText,
		confidence: 0.8,
		patterns: []string{
			`textes?`,
			`texts?`,
			`paragraphes?`,
			`paragraphs?`,
			`titres?`,
			`titles?`,
		},
	},
}

var brainstormPatterns = []string{
	`brainstorm(?:ing)?s?`,
	`idées?`,
	`ideas?`,
	`diagrammes?`,
	`diagrams?`,
	`schémas?`,
}

var creationVerbPatterns = []string{
	`cr[ée]{1,2}[rsz]?`,
	`fais`, `faire`, `fait`,
	`g[ée]n[èée]re[rz]?`,
	`ajoute[rz]?`,
	`dessine[rz]?`,
	`construi[st]`, `construire`,
	`pr[ée]pare[rz]?`,
	`propose[rz]?`,
	`make`, `create`, `generate`, `draw`, `add`, `build`, `design`, `produce`, `sketch`,
}

// Leading words removed before topic extraction.
var leadingFillers = map[string]bool{
	"peux-tu": true, "pourrais-tu": true, "pouvez-vous": true, "tu": true, "peux": true,
	"je": true, "veux": true, "voudrais": true, "stp": true, "svp": true, "merci": true,
	"can": true, "could": true, "would": true, "you": true, "please": true, "let's": true,
	"i": true, "want": true, "need": true, "moi": true, "me": true, "nous": true, "us": true,
}

// Leading connector words removed after keyword stripping.
var leadingConnectors = map[string]bool{
	"un": true, "une": true, "des": true, "de": true, "du": true, "d'": true,
	"sur": true, "pour": true, "à": true, "au": true, "aux": true, "avec": true,
	"concernant": true, "autour": true, "a": true, "an": true, "the": true, "some": true,
	"about": true, "on": true, "for": true, "of": true, "with": true, "around": true,
	"regarding": true, "me": true, "moi": true, "nous": true, "us": true,
}

const boundary = `[^\p{L}\p{N}]`

func compileSet(patterns []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|` + boundary + `)(` + strings.Join(patterns, "|") + `)($|` + boundary + `)`)
}

var (
	brainstormRe   = compileSet(brainstormPatterns)
	creationVerbRe = compileSet(creationVerbPatterns)
	creationWordRe = regexp.MustCompile(`(?i)^(?:` + strings.Join(creationVerbPatterns, "|") + `)$`)
	integerRe      = regexp.MustCompile(`\d+`)
)

func init() {
	for _, set := range keywordSets {
		set.re = compileSet(set.patterns)
	}
}

// stripMatches removes every keyword match while keeping the boundary characters.
// Adjacent matches share a boundary, so the replacement runs until it settles.
func stripMatches(re *regexp.Regexp, text string) string {
	for {
		next := re.ReplaceAllString(text, "${1} ${3}")
		if next == text {
			return text
		}
		text = next
	}
}
