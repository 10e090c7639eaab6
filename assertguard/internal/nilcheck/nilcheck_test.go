//go:build unit

package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sink interface {
	Write(string)
}

type fileSink struct{}

func (*fileSink) Write(string) {}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilSink sink
	var typedNil *fileSink
	var wrapped sink = typedNil
	var nilFunc func()
	var nilMap map[string]int

	require.True(t, IsNil(nil))
	require.True(t, IsNil(nilSink))
	require.True(t, IsNil(wrapped))
	require.True(t, IsNil(nilFunc))
	require.True(t, IsNil(nilMap))

	require.False(t, IsNil(&fileSink{}))
	require.False(t, IsNil(fileSink{}))
	require.False(t, IsNil(0))
	require.False(t, IsNil([]int{}))
}
