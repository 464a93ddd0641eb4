// Package prompt builds the instruction sent to the model for each
// uploaded paper. The template is a constant; the only variation per
// request is the four caller-supplied strings.
package prompt

import (
	"fmt"
	"strings"

	"github.com/sahidmustakim/hci-agent/internal/services/sections"
)

// notProvided replaces any missing input so the template never has an
// empty substitution gap.
const notProvided = "Not provided"

const header = `ROLE
You are an HCI researcher: curious, innovation-focused, and great at explaining theory to non-experts without jargon. You must turn dense HCI/theory papers into clear, teachable insights.

INPUT PAPER
Title: %s
Authors/Year: %s
Abstract (from PDF): %s
Notes/Audience: %s

MISSION
Produce a concise, structured breakdown that anyone can understand, while thinking like an HCI researcher who hunts for novelty and real-world impact. If information is missing, write "Not reported." Avoid speculation unless explicitly flagged.

OUTPUT RULES
- Simple language; define terms on first use.
- Use numbered headings exactly as in the template.
- Mark any weak evidence, assumptions, or speculative claims with ⚠ and a one-line reason.
- If you infer, say "(Inference)" and explain why.
- Do not invent datasets, numbers, or study details.

TEMPLATE
%s`

// guidance holds the sub-bullet instructions rendered under each
// numbered heading. Keyed by canonical section name.
var guidance = map[string][]string{
	"TL;DR": {
		"What the paper is really about + the core contribution in plain English (1-2 sentences).",
	},
	"Analogy": {
		"One vivid everyday analogy that maps the paper's idea to a familiar scenario.",
	},
	"Worked Example": {
		"A short step-by-step user/story example showing how the idea/system would be used in practice.",
	},
	"Dataset": {
		"Is there a dataset? Yes/No.",
		"If Yes: name, size, source, key variables/labels, licensing, collection method, limits/biases ⚠.",
		"If No: say what artifacts they used instead (e.g., formal model, prototype, design probes, simulated data), and how evaluation was done (if any).",
	},
	"Modality": {
		"Inputs (e.g., touch, speech, gaze, sensors, logs, questionnaires).",
		"Outputs/representations (e.g., visualization, haptics, AR, text).",
		"Context (device/platform/setting).",
	},
	"Problem Statement": {
		"1-2 sentences: the user/stakeholder problem and why current solutions are insufficient.",
	},
	"Methodology": {
		"Core approach (theory/model/system/design method).",
		"Pipeline or steps (bullet list).",
		"Study/eval (if any): study type, N, tasks/measures, analysis. Mark any under-powered or non-generalizable aspects ⚠.",
	},
	"Key Findings": {
		"3-6 bullets of the most decision-relevant results/claims.",
		"Include effect sizes/quant where reported; else \"qualitative claim\" ⚠.",
	},
	"Research Gap": {
		"What gap in prior work this paper targets (be specific).",
		"What gap remains unresolved after this paper ⚠.",
	},
	"Future Directions": {
		"Near-term: concrete, feasible next steps (data, tooling, studies).",
		"Mid/long-term: visionary directions and dependencies.",
		"Risks/ethical concerns/validity threats ⚠ + how to mitigate.",
	},
	"What Should You Read Yourself?": {
		"Yes/No + Reason.",
		"If Yes: list 2-3 specific sections to read and why (e.g., critical proofs, design rationale, subtle limitations).",
		"If No: state why the summary suffices (e.g., purely conceptual, high-level).",
	},
}

// Build fills the template with the four inputs. Empty inputs become
// the literal "Not provided", never blank, so downstream splitting
// stays well-defined.
func Build(title, authors, abstract, notes string) string {
	return fmt.Sprintf(header,
		orDefault(title),
		orDefault(authors),
		orDefault(abstract),
		orDefault(notes),
		templateBody(),
	)
}

// templateBody renders the numbered headings from the canonical section
// list. Generating it here guarantees the headings the model is told to
// emit are byte-identical to the markers the splitter searches for.
func templateBody() string {
	var sb strings.Builder
	for i, name := range sections.Names {
		fmt.Fprintf(&sb, "%s\n", sections.Marker(i, name))
		for _, g := range guidance[name] {
			sb.WriteString("   • ")
			sb.WriteString(g)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}
