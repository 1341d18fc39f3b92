//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/docload/docload/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestCondenser_Integration_CondensesPage(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	condenser := gemini.NewCondenser(client)

	page := `# Installation

The CLI installs with a single command:

    curl -sSf https://x.io/install.sh | sh

After installing, run ` + "`xio auth login`" + ` to authenticate.
The CLI stores credentials in ~/.config/xio/credentials.

## Troubleshooting

If the install script fails on Linux, check that curl and tar are
installed and that /usr/local/bin is writable.`

	condensed, err := condenser.Condense(ctx, page, "Keep the install command and the authentication step.")

	require.NoError(t, err)
	assert.NotEmpty(t, condensed)
	assert.Contains(t, condensed, "xio auth login")
}
