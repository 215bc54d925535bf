// Package prompts renders the text sent to the completion service for each
// generated diagram kind.
package prompts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

// ReturnOnlyJSON closes every prompt. The parser still tolerates prose around
// the JSON, but the instruction keeps it rare.
const ReturnOnlyJSON = "Return ONLY the JSON, no other text."

const (
	MaxItemTextLength = 60
	MinBranches       = 4
	MaxBranches       = 6
	MinChildren       = 2
	MaxChildren       = 3
	MinFlowNodes      = 4
	MaxFlowNodes      = 10
)

// Context carries optional facts about the user, passed through verbatim.
type Context struct {
	ProfileSummary string   `json:"profile_summary,omitempty"`
	JobSummary     string   `json:"job_summary,omitempty"`
	Facts          []string `json:"facts,omitempty"`
}

func (c Context) empty() bool {
	return strings.TrimSpace(c.ProfileSummary) == "" && strings.TrimSpace(c.JobSummary) == "" && len(c.Facts) == 0
}

// Build dispatches on the intent's kind. It reports false for kinds the chat
// flow answers itself (text, frame, brainstorm).
func Build(in diagram.Intent, ctx Context) (string, bool) {
	switch in.Kind {
	case diagram.KindMindMap:
		return BuildMindMap(in.Topic, ctx), true
	case diagram.KindStickyNotes:
		count := 0
		if in.Count != nil {
			count = *in.Count
		}
		return BuildStickyNotes(in.Topic, count, ctx), true
	case diagram.KindFlowDiagram:
		return BuildFlowDiagram(in.Topic, ctx), true
	default:
		return "", false
	}
}

const mindMapSchema = `{
  "centerTopic": "short central topic",
  "branches": [
    {
      "text": "branch label",
      "color": "one of the allowed colors",
      "children": [
        { "text": "child idea" }
      ]
    }
  ]
}`

func BuildMindMap(topic string, ctx Context) string {
	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE", fmt.Sprintf(
		"You are a career coach helping a job seeker think visually. Build a mind map about: %s", topic))
	writeSection(&buf, "CONTEXT", formatContext(ctx))
	writeSection(&buf, "OUTPUT SCHEMA", mindMapSchema)
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		fmt.Sprintf("centerTopic is required and must restate the topic in at most %d characters.", MaxItemTextLength),
		fmt.Sprintf("Produce between %d and %d branches.", MinBranches, MaxBranches),
		fmt.Sprintf("Each branch has between %d and %d children.", MinChildren, MaxChildren),
		fmt.Sprintf("Every text field is at most %d characters.", MaxItemTextLength),
		"Each branch color is one of: " + formatColors() + ". Use a different color per branch.",
		"Write in the language of the topic.",
	}))
	writeSection(&buf, "OUTPUT FORMAT", "A single JSON object matching the schema.\n"+ReturnOnlyJSON)
	return finish(&buf)
}

const stickyNotesSchema = `[
  { "text": "one idea per note", "color": "one of the allowed colors" }
]`

func BuildStickyNotes(topic string, count int, ctx Context) string {
	if count <= 0 {
		count = 5
	}
	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE", fmt.Sprintf(
		"You are a career coach running a brainstorming session. Write %d sticky notes about: %s", count, topic))
	writeSection(&buf, "CONTEXT", formatContext(ctx))
	writeSection(&buf, "OUTPUT SCHEMA", stickyNotesSchema)
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		fmt.Sprintf("Return exactly %d notes.", count),
		"Every note has a string text and a string color.",
		fmt.Sprintf("Every text is at most %d characters and holds a single idea.", MaxItemTextLength),
		"color is one of: " + formatColors() + ".",
		"Write in the language of the topic.",
	}))
	writeSection(&buf, "OUTPUT FORMAT", "A single JSON array matching the schema.\n"+ReturnOnlyJSON)
	return finish(&buf)
}

const flowDiagramSchema = `{
  "title": "diagram title",
  "nodes": [
    { "id": "n1", "text": "step label", "type": "start | process | decision | end" }
  ],
  "connections": [
    { "from": "n1", "to": "n2", "label": "optional, e.g. yes / no" }
  ]
}`

func BuildFlowDiagram(topic string, ctx Context) string {
	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE", fmt.Sprintf(
		"You are a career coach mapping out a process step by step. Build a flow diagram for: %s", topic))
	writeSection(&buf, "CONTEXT", formatContext(ctx))
	writeSection(&buf, "OUTPUT SCHEMA", flowDiagramSchema)
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		fmt.Sprintf("Produce between %d and %d nodes, listed in reading order.", MinFlowNodes, MaxFlowNodes),
		"type is one of: start, process, decision, end. Exactly one start node first, at least one end node.",
		"Every node id is unique; every connection from/to references an existing node id.",
		"Decision nodes have two outgoing connections labelled with the answer.",
		fmt.Sprintf("Every text is at most %d characters.", MaxItemTextLength),
		"Write in the language of the topic.",
	}))
	writeSection(&buf, "OUTPUT FORMAT", "A single JSON object matching the schema.\n"+ReturnOnlyJSON)
	return finish(&buf)
}

func formatContext(ctx Context) string {
	if ctx.empty() {
		return ""
	}
	var items []string
	if s := strings.TrimSpace(ctx.ProfileSummary); s != "" {
		items = append(items, "Candidate profile: "+s)
	}
	if s := strings.TrimSpace(ctx.JobSummary); s != "" {
		items = append(items, "Target job posting: "+s)
	}
	items = append(items, ctx.Facts...)
	return formatList(items) + "\nUse these facts to make the content specific to this candidate."
}

func formatColors() string {
	names := make([]string, len(diagram.Colors))
	for i, c := range diagram.Colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func formatList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(buf, "[%s]\n%s\n\n", title, strings.TrimSpace(body))
}

func finish(buf *bytes.Buffer) string {
	return strings.TrimSpace(buf.String()) + "\n"
}
