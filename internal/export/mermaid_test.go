package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/parser"
)

func TestFlow(t *testing.T) {
	out := Flow(parser.FallbackFlowDiagram("embauche"))
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "%% embauche")
	assert.Contains(t, out, `start(("Début : embauche"))`)
	assert.Contains(t, out, `decide{"Critères remplis ?"}`)
	assert.Contains(t, out, "decide -->|Oui| act")
	assert.Contains(t, out, "revise --> end_")
	assert.Contains(t, out, `end_(("Fin"))`)
}

func TestFlowSkipsDanglingAndEscapes(t *testing.T) {
	out := Flow(&diagram.FlowDiagram{
		Nodes:       []diagram.FlowNode{{ID: "a-1", Text: `say "hi"`, Type: "weird"}},
		Connections: []diagram.FlowConnection{{From: "a-1", To: "zz"}},
	})
	assert.Contains(t, out, `a_1["say #quot;hi#quot;"]`)
	assert.NotContains(t, out, "-->")
}

func TestFlowKeepsSanitisedIDsDistinct(t *testing.T) {
	out := Flow(&diagram.FlowDiagram{
		Nodes: []diagram.FlowNode{
			{ID: "a-b", Text: "dash"},
			{ID: "a_b", Text: "underscore"},
			{ID: "a.b", Text: "dot"},
			{ID: "", Text: "anonymous"},
			{ID: "a-b", Text: "repeat"},
		},
		Connections: []diagram.FlowConnection{
			{From: "a-b", To: "a_b"},
			{From: "a_b", To: "a.b"},
		},
	})
	assert.Contains(t, out, `a_b["dash"]`)
	assert.Contains(t, out, `a_b_2["underscore"]`)
	assert.Contains(t, out, `a_b_3["dot"]`)
	assert.Contains(t, out, `n3["anonymous"]`)
	assert.NotContains(t, out, "repeat")
	assert.Contains(t, out, "a_b --> a_b_2")
	assert.Contains(t, out, "a_b_2 --> a_b_3")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		assert.False(t, strings.HasPrefix(strings.TrimSpace(line), "["), "node without identifier: %q", line)
	}
}

func TestMindMap(t *testing.T) {
	out := MindMap(parser.FallbackMindMap("Carrière (2025)"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "mindmap", lines[0])
	assert.Equal(t, "  root((Carrière  2025))", lines[1])
	assert.Equal(t, "    Objectifs", lines[2])
	assert.Equal(t, "      Résultat attendu", lines[3])
}

func TestStickyNotes(t *testing.T) {
	out := StickyNotes("risques", []diagram.StickyNote{
		{Text: "A", Color: diagram.ColorLightBlue},
		{Text: "B", Color: "nope"},
		{Text: "C", Color: diagram.ColorLightBlue},
	})
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `subgraph notes["risques"]`)
	assert.Contains(t, out, `n2["C"]`)
	assert.Equal(t, 1, strings.Count(out, "classDef light_blue"))
	assert.Contains(t, out, "class n1 yellow")
}

func TestMermaidDispatch(t *testing.T) {
	out, err := Mermaid(diagram.Content{Kind: diagram.KindFlowDiagram, Flow: parser.FallbackFlowDiagram("x")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD"))

	out, err = Mermaid(diagram.Content{Kind: diagram.KindMindMap, MindMap: parser.FallbackMindMap("x")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mindmap"))

	_, err = Mermaid(diagram.Content{Kind: diagram.KindMindMap})
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, err = Mermaid(diagram.Content{Kind: diagram.KindText})
	assert.ErrorIs(t, err, ErrNothingToExport)
}
