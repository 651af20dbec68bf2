package openapi

import (
	"fmt"
	"sort"
	"strings"
)

// RenderOptions controls RenderText.
type RenderOptions struct {
	// MaxDescription truncates endpoint descriptions to this many runes. Zero disables.
	MaxDescription int
}

// RenderText produces LLM-readable documentation for the API.
func RenderText(doc *APIDocument, opts RenderOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "API: %s (v%s)\n\n", doc.Title, doc.Version)
	sb.WriteString("DESCRIPTION:\n")
	if doc.Description != "" {
		sb.WriteString(doc.Description)
	} else {
		sb.WriteString("(None or your description here)")
	}
	sb.WriteString("\n\n")

	if len(doc.Servers) > 0 {
		fmt.Fprintf(&sb, "SERVERS: %s\n\n", strings.Join(doc.Servers, ", "))
	}

	for _, ep := range doc.Endpoints {
		renderEndpoint(&sb, ep, opts)
	}
	return sb.String()
}

func renderEndpoint(sb *strings.Builder, ep Endpoint, opts RenderOptions) {
	fmt.Fprintf(sb, "ENDPOINT: %s %s\n", strings.ToUpper(ep.Method), ep.Path)
	fmt.Fprintf(sb, "SUMMARY: %s\n", ep.Summary)

	desc := truncate(minifyText(ep.Description), opts.MaxDescription)
	if desc == "" {
		sb.WriteString("DESCRIPTION: (None)\n")
	} else {
		fmt.Fprintf(sb, "DESCRIPTION: %s\n", desc)
	}

	sb.WriteString("PARAMETERS:\n")
	if len(ep.Parameters) == 0 {
		sb.WriteString("  (None)\n")
	}
	for _, p := range ep.Parameters {
		if p == nil {
			continue
		}
		fmt.Fprintf(sb, "  - %s (%s, %s, required=%t)", p.Name, parameterType(p), p.In, p.Required)
		if p.Description != "" {
			fmt.Fprintf(sb, " : %s", minifyText(p.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("REQUEST BODY: ")
	if ep.RequestBody != nil && ep.RequestBody.Description != "" {
		sb.WriteString(minifyText(ep.RequestBody.Description))
	} else {
		sb.WriteString("None")
	}
	sb.WriteString("\n")

	sb.WriteString("RESPONSES:\n")
	if len(ep.Responses) == 0 {
		sb.WriteString("  (None)\n")
	}
	codes := make([]string, 0, len(ep.Responses))
	for code := range ep.Responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		desc := ""
		if r := ep.Responses[code]; r != nil {
			desc = minifyText(r.Description)
		}
		fmt.Fprintf(sb, "  - %s: %s\n", code, desc)
	}
	sb.WriteString("END\n")
}

func parameterType(p *Parameter) string {
	if p.Type != "" {
		return p.Type
	}
	if p.Schema == nil || p.Schema.Type == "" {
		return "(unknown)"
	}
	if p.Schema.Type == "array" && p.Schema.Items != nil && p.Schema.Items.Type != "" {
		return "array[" + p.Schema.Items.Type + "]"
	}
	return p.Schema.Type
}

// minifyText collapses all whitespace, including newlines, into single spaces.
func minifyText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
