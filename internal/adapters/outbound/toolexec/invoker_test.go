package toolexec_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcheck/artcheck/internal/adapters/outbound/toolexec"
	"github.com/artcheck/artcheck/internal/domain"
)

func TestInvoker_MissingBinary(t *testing.T) {
	inv := toolexec.NewInvoker()

	_, err := inv.Invoke(context.Background(), "definitely-not-a-real-binary-xyz")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestInvoker_CapturesOutputAndExitCode(t *testing.T) {
	inv := toolexec.NewInvoker()

	res, err := inv.Invoke(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestInvoker_ZeroExitCode(t *testing.T) {
	inv := toolexec.NewInvoker()

	res, err := inv.Invoke(context.Background(), "sh", "-c", "echo done")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "done\n", string(res.Stdout))
}

func TestInvoker_TimeoutKillsProcess(t *testing.T) {
	inv := toolexec.NewInvoker()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := inv.Invoke(ctx, "sleep", "10")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}
