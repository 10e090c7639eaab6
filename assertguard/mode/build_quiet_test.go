//go:build unit && assert_quiet

package mode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuietBuild(t *testing.T) {
	t.Parallel()

	require.True(t, IsLoggingSuppressed())
	require.Contains(t, Current().String(), "logging_suppressed=true")
}
