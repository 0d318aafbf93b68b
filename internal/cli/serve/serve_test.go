package serve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcli "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestServe_ShutsDownWithContext(t *testing.T) {
	app := testcli.SetupCLITest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	output, err := testcli.ExecuteCLICommandWithContext(t, ctx, app, ServeCmd(), []string{"--addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Contains(t, output, "Serving board on 127.0.0.1:0")
}
