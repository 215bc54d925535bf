package parser

import (
	"fmt"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

const fallbackTopic = "Ideas"

func topicOrDefault(topic string) string {
	if t := strings.TrimSpace(topic); t != "" {
		return t
	}
	return fallbackTopic
}

// FallbackMindMap always yields four branches with one or two children each.
func FallbackMindMap(topic string) *diagram.MindMap {
	return &diagram.MindMap{
		CenterTopic: topicOrDefault(topic),
		Branches: []diagram.Branch{
			{
				Text:  "Objectifs",
				Color: diagram.ColorBlue,
				Children: []diagram.Leaf{
					{Text: "Résultat attendu"},
					{Text: "Priorités"},
				},
			},
			{
				Text:  "Atouts",
				Color: diagram.ColorGreen,
				Children: []diagram.Leaf{
					{Text: "Compétences clés"},
				},
			},
			{
				Text:  "Obstacles",
				Color: diagram.ColorOrange,
				Children: []diagram.Leaf{
					{Text: "Risques à anticiper"},
					{Text: "Points de vigilance"},
				},
			},
			{
				Text:  "Prochaines étapes",
				Color: diagram.ColorViolet,
				Children: []diagram.Leaf{
					{Text: "Première action concrète"},
				},
			},
		},
	}
}

var stickyTemplates = []string{
	"Idée clé",
	"Question à explorer",
	"Risque",
	"Opportunité",
	"Ressource utile",
	"Prochaine action",
	"Point de vigilance",
	"Exemple concret",
}

var stickyColors = []diagram.ColorTag{
	diagram.ColorYellow, diagram.ColorBlue, diagram.ColorGreen,
	diagram.ColorOrange, diagram.ColorViolet, diagram.ColorLightRed,
}

// FallbackStickyNotes returns count notes (clamped to [1, 20]) about topic.
func FallbackStickyNotes(topic string, count int) []diagram.StickyNote {
	if count < 1 {
		count = 1
	}
	if count > 20 {
		count = 20
	}
	topic = topicOrDefault(topic)
	notes := make([]diagram.StickyNote, count)
	for i := range notes {
		label := stickyTemplates[i%len(stickyTemplates)]
		if round := i / len(stickyTemplates); round > 0 {
			label = fmt.Sprintf("%s #%d", label, round+1)
		}
		notes[i] = diagram.StickyNote{
			Text:  fmt.Sprintf("%s : %s", label, topic),
			Color: stickyColors[i%len(stickyColors)],
		}
	}
	return notes
}

// FallbackFlowDiagram is a start-to-end path with one decision branch.
func FallbackFlowDiagram(topic string) *diagram.FlowDiagram {
	topic = topicOrDefault(topic)
	return &diagram.FlowDiagram{
		Title: topic,
		Nodes: []diagram.FlowNode{
			{ID: "start", Text: "Début : " + topic, Type: diagram.FlowStart},
			{ID: "analyse", Text: "Analyser la situation", Type: diagram.FlowProcess},
			{ID: "decide", Text: "Critères remplis ?", Type: diagram.FlowDecision},
			{ID: "act", Text: "Passer à l'action", Type: diagram.FlowProcess},
			{ID: "revise", Text: "Ajuster l'approche", Type: diagram.FlowProcess},
			{ID: "end", Text: "Fin", Type: diagram.FlowEnd},
		},
		Connections: []diagram.FlowConnection{
			{From: "start", To: "analyse"},
			{From: "analyse", To: "decide"},
			{From: "decide", To: "act", Label: "Oui"},
			{From: "decide", To: "revise", Label: "Non"},
			{From: "act", To: "end"},
			{From: "revise", To: "end"},
		},
	}
}
