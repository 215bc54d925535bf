package prompts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

func TestBuildersEndWithReturnOnlyJSON(t *testing.T) {
	ctx := Context{ProfileSummary: "Backend engineer, 5 years of Go"}
	for name, p := range map[string]string{
		"mind map":     BuildMindMap("remote work", ctx),
		"sticky notes": BuildStickyNotes("risks", 8, ctx),
		"flow":         BuildFlowDiagram("hiring process", ctx),
	} {
		assert.True(t, strings.HasSuffix(strings.TrimSpace(p), ReturnOnlyJSON), "%s prompt must end with the JSON-only directive", name)
	}
}

func TestBuildMindMapNamesEveryField(t *testing.T) {
	p := BuildMindMap("le télétravail", Context{})

	for _, field := range []string{`"centerTopic"`, `"branches"`, `"text"`, `"color"`, `"children"`} {
		assert.Contains(t, p, field)
	}
	assert.Contains(t, p, "le télétravail")
	assert.Contains(t, p, "between 4 and 6 branches")
	assert.Contains(t, p, "light-violet")
	assert.NotContains(t, p, "[CONTEXT]", "empty context must not render a section")
}

func TestBuildStickyNotesCount(t *testing.T) {
	p := BuildStickyNotes("risques", 8, Context{})
	assert.Contains(t, p, "Return exactly 8 notes.")

	p = BuildStickyNotes("risques", 0, Context{})
	assert.Contains(t, p, "Return exactly 5 notes.")
}

func TestBuildFlowDiagramEnumeratesNodeTypes(t *testing.T) {
	p := BuildFlowDiagram("onboarding", Context{})
	assert.Contains(t, p, "start, process, decision, end")
	for _, field := range []string{`"nodes"`, `"connections"`, `"id"`, `"from"`, `"to"`, `"label"`, `"type"`} {
		assert.Contains(t, p, field)
	}
}

func TestContextIsEmbedded(t *testing.T) {
	ctx := Context{
		ProfileSummary: "Data analyst moving into ML",
		JobSummary:     "ML Engineer at Acme, Paris",
		Facts:          []string{"Interview on Friday"},
	}
	p := BuildFlowDiagram("préparation d'entretien", ctx)

	assert.Contains(t, p, "[CONTEXT]")
	assert.Contains(t, p, "Candidate profile: Data analyst moving into ML")
	assert.Contains(t, p, "Target job posting: ML Engineer at Acme, Paris")
	assert.Contains(t, p, "- Interview on Friday")
}

func TestBuildDispatch(t *testing.T) {
	n := 3
	p, ok := Build(diagram.Intent{Kind: diagram.KindStickyNotes, Topic: "x", Count: &n}, Context{})
	require.True(t, ok)
	assert.Contains(t, p, "Return exactly 3 notes.")

	_, ok = Build(diagram.Intent{Kind: diagram.KindMindMap, Topic: "x"}, Context{})
	assert.True(t, ok)

	for _, k := range []diagram.Kind{diagram.KindText, diagram.KindFrame, diagram.KindBrainstorm} {
		p, ok := Build(diagram.Intent{Kind: k, Topic: "x"}, Context{})
		assert.False(t, ok)
		assert.Empty(t, p)
	}
}

func TestBuildJobExtraction(t *testing.T) {
	p := BuildJobExtraction("<div>Senior Go Engineer at Acme</div>")
	assert.Contains(t, p, "[INPUT]\n<div>Senior Go Engineer at Acme</div>")
	assert.Contains(t, p, `"company_name"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(p), ReturnOnlyJSON))

	long := strings.Repeat("é", MaxPostingLength)
	p = BuildJobExtraction(long)
	assert.Less(t, len(p), len(long)+2000)
	assert.True(t, utf8.ValidString(p))
}
