package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/adapters/telemetry"
	"go.trai.ch/spmlink/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	v := tel.Record("declare mlx-swift/MLX")
	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	v.Log(domain.LogLevelInfo, "ignored")
	v.Cached()
	v.Complete(nil)

	assert.NoError(t, tel.Close())
}
