// Package gemini provides Google Gemini backed implementations of
// docload.Condenser and docload.TokenCounter.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/docload/docload"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for condensing and token counting.
const DefaultModel = "gemini-2.5-flash"

// Ensure Condenser implements docload.Condenser at compile time.
var _ docload.Condenser = (*Condenser)(nil)

// Condenser implements docload.Condenser using Google Gemini.
type Condenser struct {
	client *genai.Client
	model  string
}

// NewCondenser creates a new Condenser using DefaultModel.
func NewCondenser(client *genai.Client) *Condenser {
	return &Condenser{client: client, model: DefaultModel}
}

// Condense rewrites a fetched documentation page into a shorter form
// guided by the tier's instruction.
func (c *Condenser) Condense(ctx context.Context, content string, instruction string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", docload.Errorf(docload.EINVALID, "content required")
	}

	prompt := BuildPrompt(content, instruction)
	config := BuildConfig()

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", docload.Errorf(docload.EUNAVAILABLE, "condensing failed: %v", err)
	}
	if result == nil {
		return "", docload.Errorf(docload.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for condensing calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You condense software documentation pages into compact Markdown. Preserve code examples, command invocations and parameter tables verbatim. Never invent content that is not on the page.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt containing the page and the
// condensing instruction.
func BuildPrompt(content string, instruction string) string {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</document>\n\n")
	if instruction == "" {
		instruction = "Condense this page, keeping the information a developer needs to use what it describes."
	}
	fmt.Fprintf(&sb, "Instruction: %s", instruction)
	return sb.String()
}
