// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

func sampleFramework() types.Framework {
	return types.Framework{
		Name:        "RICE Prioritization",
		Description: "A scoring model",
		Source:      types.Source{Guest: "Intercom Team", Episode: "Product Prioritization Frameworks"},
		Application: "Use RICE to compare ideas",
		Steps:       []string{"Estimate Reach", "Estimate Impact"},
		Examples:    []string{"Onboarding: Score=4000"},
	}
}

func TestFrameworks(t *testing.T) {
	want := "# RICE Prioritization\n\n" +
		"A scoring model\n\n" +
		"**Source:** Intercom Team - Product Prioritization Frameworks\n\n" +
		"**Application:**\nUse RICE to compare ideas\n\n" +
		"**Steps:**\n1. Estimate Reach\n2. Estimate Impact\n\n" +
		"**Examples:**\n- Onboarding: Score=4000\n\n" +
		"---\n\n"

	assert.Equal(t, want, Frameworks([]types.Framework{sampleFramework()}))
}

func TestFrameworksOptionalSections(t *testing.T) {
	f := sampleFramework()
	f.Steps = nil
	f.Examples = nil
	f.Source.URL = "https://example.com/ep"

	got := Frameworks([]types.Framework{f})
	assert.NotContains(t, got, "**Steps:**")
	assert.NotContains(t, got, "**Examples:**")
	assert.Contains(t, got, "**Source:** Intercom Team - Product Prioritization Frameworks ([link](https://example.com/ep))")
	assert.True(t, strings.HasSuffix(got, "---\n\n"))
}

func TestFrameworksDeterministicAndReadOnly(t *testing.T) {
	in := []types.Framework{sampleFramework(), sampleFramework()}
	before := sampleFramework()

	first := Frameworks(in)
	second := Frameworks(in)

	assert.Equal(t, first, second)
	assert.Equal(t, before, in[0])
	assert.Equal(t, 2, strings.Count(first, "# RICE Prioritization"))
}

func TestBestPractices(t *testing.T) {
	practices := []types.BestPractice{
		{
			Topic:    "User Research",
			Practice: "Talk to users before building anything",
			Context:  "Most failures come from guessing",
			Source:   types.Source{Guest: "Teresa Torres", Episode: "Continuous Discovery Habits"},
			Quotes:   []string{"Talk to customers every week"},
		},
		{
			Topic:    "User Research",
			Practice: "Ask about past behavior",
			Context:  "Users predict poorly",
			Source:   types.Source{Guest: "Bob Moesta", Episode: "JTBD Interviews"},
		},
	}

	want := "# Best Practices: User Research\n\n" +
		"## Talk to users before building anything\n\n" +
		"Most failures come from guessing\n\n" +
		"**Source:** Teresa Torres - Continuous Discovery Habits\n\n" +
		"**Key Quote:**\n> \"Talk to customers every week\"\n" +
		"\n---\n\n" +
		"## Ask about past behavior\n\n" +
		"Users predict poorly\n\n" +
		"**Source:** Bob Moesta - JTBD Interviews\n\n" +
		"\n---\n\n"

	assert.Equal(t, want, BestPractices(practices))
	assert.Equal(t, "", BestPractices(nil))
}

func TestMethodologies(t *testing.T) {
	methods := []types.Methodology{{
		Name:          "Dual-Track Agile",
		Description:   "Discovery and delivery in parallel",
		UseCases:      []string{"Shipping while exploring"},
		KeyPrinciples: []string{"Discovery ahead of delivery"},
		Sources:       []types.Perspective{{Guest: "Marty Cagan", Episode: "Inspired", Perspective: "Discovery is continuous"}},
	}}

	want := "# Product Methodologies\n\n" +
		"## Dual-Track Agile\n\n" +
		"Discovery and delivery in parallel\n\n" +
		"**Use Cases:**\n- Shipping while exploring\n\n" +
		"**Key Principles:**\n- Discovery ahead of delivery\n\n" +
		"**Expert Perspectives:**\n- **Marty Cagan** (Inspired): Discovery is continuous\n" +
		"\n---\n\n"

	assert.Equal(t, want, Methodologies(methods))
}

func TestTopics(t *testing.T) {
	topics := []types.TopicSummary{{Name: "growth", Episodes: 1}, {Name: "pricing", Episodes: 12}}

	got := Topics(topics, nil)
	assert.True(t, strings.HasPrefix(got, "# Available Knowledge Topics (2)\n\n"))
	assert.Contains(t, got, "- **growth** (1 episode)\n")
	assert.Contains(t, got, "- **pricing** (12 episodes)\n")
	assert.NotContains(t, got, "Warning")

	withSkipped := Topics(topics, []string{"index/broken.md"})
	assert.Contains(t, withSkipped, "**Warning:** 1 topic file could not be read:\n- index/broken.md\n")
}

func TestTopic(t *testing.T) {
	got := Topic(types.Topic{Name: "pricing", Episodes: []string{"a", "b"}})
	assert.Equal(t, "# pricing (2 episodes)\n\n- a\n- b\n", got)
}

func TestNotFoundMessages(t *testing.T) {
	assert.Equal(t,
		`No framework found for "xyz". Try: RICE Prioritization, North Star Metric, or search by topic.`,
		FrameworkNotFound("xyz", []string{"RICE Prioritization", "North Star Metric"}))
	assert.Equal(t,
		`No best practices found for "growth". Available topics: prioritization, user-research`,
		BestPracticesNotFound("growth", []string{"prioritization", "user-research"}))
	assert.Equal(t,
		`No methodology found for "waterfall". Try: Continuous Discovery, Dual-Track Agile.`,
		MethodologyNotFound("waterfall", []string{"Continuous Discovery", "Dual-Track Agile"}))
}
