package gemini_test

import (
	"context"
	"testing"

	"github.com/docload/docload"
	"github.com/docload/docload/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondenser_Condense_ReturnsErrorWhenContentEmpty(t *testing.T) {
	t.Parallel()

	condenser := gemini.NewCondenser(nil) // nil client ok, validation runs first

	_, err := condenser.Condense(context.Background(), "", "keep the essentials")

	require.Error(t, err)
	assert.Equal(t, docload.EINVALID, docload.ErrorCode(err))
	assert.Contains(t, docload.ErrorMessage(err), "content required")
}

func TestCondenser_Condense_ReturnsErrorWhenContentBlank(t *testing.T) {
	t.Parallel()

	condenser := gemini.NewCondenser(nil)

	_, err := condenser.Condense(context.Background(), "   \n\t", "keep the essentials")

	require.Error(t, err)
	assert.Equal(t, docload.EINVALID, docload.ErrorCode(err))
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "condense software documentation")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
}

func TestBuildPrompt_WrapsContentInDocumentTags(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt("# Overview\n\nThe platform has four SDKs.", "keep setup steps")

	assert.Contains(t, prompt, "<document>")
	assert.Contains(t, prompt, "The platform has four SDKs.")
	assert.Contains(t, prompt, "</document>")
}

func TestBuildPrompt_ContainsInstruction(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt("content", "keep all endpoint signatures")

	assert.Contains(t, prompt, "Instruction: keep all endpoint signatures")
}

func TestBuildPrompt_DefaultsInstructionWhenEmpty(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt("content", "")

	assert.Contains(t, prompt, "Instruction: Condense this page")
}

func TestBuildPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt("content", "instruction")

	assert.NotContains(t, prompt, "You condense software documentation")
}
