// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders knowledge records as markdown. Every function is
// pure: the same input produces byte-identical output and records are never
// modified.
package format

import (
	"fmt"
	"strings"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

const separator = "---\n\n"

// Frameworks renders each framework as a titled section. Callers handle the
// empty case with FrameworkNotFound.
func Frameworks(frameworks []types.Framework) string {
	var b strings.Builder
	for _, f := range frameworks {
		fmt.Fprintf(&b, "# %s\n\n", f.Name)
		fmt.Fprintf(&b, "%s\n\n", f.Description)
		fmt.Fprintf(&b, "**Source:** %s\n\n", sourceLine(f.Source))
		fmt.Fprintf(&b, "**Application:**\n%s\n\n", f.Application)
		if len(f.Steps) > 0 {
			b.WriteString("**Steps:**\n")
			numbered(&b, f.Steps)
			b.WriteString("\n")
		}
		if len(f.Examples) > 0 {
			b.WriteString("**Examples:**\n")
			bulleted(&b, f.Examples)
			b.WriteString("\n")
		}
		b.WriteString(separator)
	}
	return b.String()
}

// FrameworkNotFound is the soft-miss message for get_framework.
func FrameworkNotFound(query string, known []string) string {
	return fmt.Sprintf("No framework found for %q. Try: %s, or search by topic.", query, strings.Join(known, ", "))
}

// BestPractices renders practices under a heading for their topic label.
func BestPractices(practices []types.BestPractice) string {
	if len(practices) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Best Practices: %s\n\n", practices[0].Topic)
	for _, p := range practices {
		fmt.Fprintf(&b, "## %s\n\n", p.Practice)
		fmt.Fprintf(&b, "%s\n\n", p.Context)
		fmt.Fprintf(&b, "**Source:** %s\n\n", sourceLine(p.Source))
		if len(p.Quotes) > 0 {
			b.WriteString("**Key Quote:**\n")
			for _, q := range p.Quotes {
				fmt.Fprintf(&b, "> \"%s\"\n", q)
			}
		}
		b.WriteString("\n" + separator)
	}
	return b.String()
}

// BestPracticesNotFound is the soft-miss message for get_best_practices.
func BestPracticesNotFound(topic string, known []string) string {
	return fmt.Sprintf("No best practices found for %q. Available topics: %s", topic, strings.Join(known, ", "))
}

// Methodologies renders methodologies under a common heading.
func Methodologies(methods []types.Methodology) string {
	var b strings.Builder
	b.WriteString("# Product Methodologies\n\n")
	for _, m := range methods {
		fmt.Fprintf(&b, "## %s\n\n", m.Name)
		fmt.Fprintf(&b, "%s\n\n", m.Description)

		b.WriteString("**Use Cases:**\n")
		bulleted(&b, m.UseCases)
		b.WriteString("\n")

		b.WriteString("**Key Principles:**\n")
		bulleted(&b, m.KeyPrinciples)
		b.WriteString("\n")

		b.WriteString("**Expert Perspectives:**\n")
		for _, s := range m.Sources {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", s.Guest, s.Episode, s.Perspective)
		}
		b.WriteString("\n" + separator)
	}
	return b.String()
}

// MethodologyNotFound is the soft-miss message for get_methodology.
func MethodologyNotFound(query string, known []string) string {
	return fmt.Sprintf("No methodology found for %q. Try: %s.", query, strings.Join(known, ", "))
}

// Topics renders the topic list with episode counts. skipped names topic
// files that failed to load; they are listed after the topics.
func Topics(topics []types.TopicSummary, skipped []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Available Knowledge Topics (%d)\n\n", len(topics))
	for _, t := range topics {
		fmt.Fprintf(&b, "- **%s** (%d %s)\n", t.Name, t.Episodes, plural(t.Episodes, "episode", "episodes"))
	}
	if len(skipped) > 0 {
		fmt.Fprintf(&b, "\n**Warning:** %d topic %s could not be read:\n", len(skipped), plural(len(skipped), "file", "files"))
		bulleted(&b, skipped)
	}
	b.WriteString("\n\nUse these topics with get_best_practices or search for specific frameworks.")
	return b.String()
}

// Topic renders one topic and its episode identifiers.
func Topic(t types.Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d %s)\n\n", t.Name, len(t.Episodes), plural(len(t.Episodes), "episode", "episodes"))
	bulleted(&b, t.Episodes)
	return b.String()
}

func sourceLine(s types.Source) string {
	line := s.Guest
	if s.Episode != "" {
		line += " - " + s.Episode
	}
	if s.URL != "" {
		line += fmt.Sprintf(" ([link](%s))", s.URL)
	}
	return line
}

func numbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}

func bulleted(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
