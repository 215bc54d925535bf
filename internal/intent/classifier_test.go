package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

func TestClassifyMindMapFrench(t *testing.T) {
	in := Classify("crée une mind map sur le télétravail")

	assert.Equal(t, diagram.KindMindMap, in.Kind)
	assert.Contains(t, in.Topic, "télétravail")
	assert.NotContains(t, strings.ToLower(in.Topic), "mind")
	assert.NotContains(t, strings.ToLower(in.Topic), "map")
	assert.Nil(t, in.Count)
	assert.Equal(t, "crée une mind map sur le télétravail", in.RawText)
}

func TestClassifyStickyNotesCount(t *testing.T) {
	in := Classify("ajoute 8 post-its sur les risques")

	require.Equal(t, diagram.KindStickyNotes, in.Kind)
	require.NotNil(t, in.Count)
	assert.Equal(t, 8, *in.Count)
	assert.Equal(t, "les risques", in.Topic)
}

func TestClassifyStickyNotesCountClampedAndDefault(t *testing.T) {
	in := Classify("make 45 sticky notes about onboarding")
	require.NotNil(t, in.Count)
	assert.Equal(t, MaxCount, *in.Count)
	assert.Equal(t, "onboarding", in.Topic)

	in = Classify("add 0 stickies")
	require.NotNil(t, in.Count)
	assert.Equal(t, MinCount, *in.Count)

	in = Classify("des post-it sur la négociation salariale")
	require.NotNil(t, in.Count)
	assert.Equal(t, DefaultCount, *in.Count)
}

func TestClassifyFlowDiagram(t *testing.T) {
	in := Classify("crée un flow diagram pour le processus d'embauche")

	assert.Equal(t, diagram.KindFlowDiagram, in.Kind)
	assert.Equal(t, "le processus d'embauche", in.Topic)
	assert.InDelta(t, 0.9, in.Confidence, 1e-9)
}

func TestClassifyPriorityOrder(t *testing.T) {
	// mind map keywords win over sticky-note keywords regardless of position
	in := Classify("post-its ou mind map sur le CV ?")
	assert.Equal(t, diagram.KindMindMap, in.Kind)

	in = Classify("a flowchart inside a frame")
	assert.Equal(t, diagram.KindFlowDiagram, in.Kind)

	in = Classify("ajoute un cadre avec du texte")
	assert.Equal(t, diagram.KindFrame, in.Kind)

	in = Classify("écris un texte de motivation")
	assert.Equal(t, diagram.KindText, in.Kind)
}

func TestClassifyKeywordBoundaries(t *testing.T) {
	// "context" must not trigger the free-text set
	in := Classify("give me some context on the role")
	assert.Equal(t, diagram.KindBrainstorm, in.Kind)
}

func TestClassifyDefaultsToBrainstorm(t *testing.T) {
	in := Classify("  quelles questions poser en entretien  ")
	assert.Equal(t, diagram.KindBrainstorm, in.Kind)
	assert.InDelta(t, 0.5, in.Confidence, 1e-9)
	assert.Equal(t, "quelles questions poser en entretien", in.Topic)

	in = Classify("")
	assert.Equal(t, diagram.KindBrainstorm, in.Kind)
	assert.Equal(t, DefaultTopic, in.Topic)
}

func TestClassifyEmptyTopicFallsBackToIdeas(t *testing.T) {
	in := Classify("crée une mind map")
	assert.Equal(t, diagram.KindMindMap, in.Kind)
	assert.Equal(t, DefaultTopic, in.Topic)
}

func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{
		"", " ", "```", "{}", "12345678901234567890123", "MIND MAP!!!", "post-it", "🙂",
		"carte mentale", "organigramme: 3 étapes", "cadre", "titre", "\n\t",
	}
	for _, s := range inputs {
		in := Classify(s)
		assert.True(t, in.Kind.Valid(), "input %q", s)
		assert.GreaterOrEqual(t, in.Confidence, 0.0)
		assert.LessOrEqual(t, in.Confidence, 1.0)
		assert.NotEmpty(t, strings.TrimSpace(in.Topic), "input %q", s)
	}
}

func TestIsCreationRequest(t *testing.T) {
	assert.True(t, IsCreationRequest("crée une mind map sur le télétravail"))
	assert.True(t, IsCreationRequest("Generate a flowchart of my job search"))
	assert.True(t, IsCreationRequest("ajoute des idées"))
	assert.False(t, IsCreationRequest("mind map"))
	assert.False(t, IsCreationRequest("crée mon compte"))
	assert.False(t, IsCreationRequest(""))
}

func TestExtractCount(t *testing.T) {
	assert.Equal(t, 3, ExtractCount("3 notes et 7 idées"))
	assert.Equal(t, DefaultCount, ExtractCount("quelques notes"))
	assert.Equal(t, MaxCount, ExtractCount("99999999999999999999999 notes"))
}
