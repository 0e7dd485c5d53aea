package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func exists(t *testing.T, f *Filter, text string, languages ...string) bool {
	t.Helper()
	ok, err := f.Exists(text, languages...)
	require.NoError(t, err)
	return ok
}

func censor(t *testing.T, f *Filter, text string, ct CensorType, languages ...string) string {
	t.Helper()
	out, err := f.Censor(text, ct, languages...)
	require.NoError(t, err)
	return out
}

const g = DefaultGrawlix
