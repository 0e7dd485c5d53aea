package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profanity/internal/core/filter"
	"profanity/internal/modkit"
	"profanity/internal/platform/config"
	"profanity/internal/platform/metrics"
	phttp "profanity/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("FMOD_TEST_WHOLE_WORD", "false")
	t.Setenv("FMOD_TEST_LANGUAGES", "en, de")
	t.Setenv("FMOD_TEST_PERSIST", "false")

	opt := FromConfig(config.New().Prefix("FMOD_TEST_"))
	assert.False(t, opt.Filter.WholeWord)
	assert.Equal(t, []string{"en", "de"}, opt.Filter.Languages)
	assert.Equal(t, filter.DefaultGrawlix, opt.Filter.Grawlix)
	assert.False(t, opt.Persist)
	assert.True(t, opt.Events)
}

func TestModuleWithoutBackends(t *testing.T) {
	m := New(modkit.Deps{Metrics: metrics.New()}, Options{Filter: filter.DefaultConfig(), Persist: true, Events: true})
	require.NoError(t, m.Start(context.Background()))
	defer m.Close()

	assert.Equal(t, "filter", m.Name())
	ports := modkit.MustPortsOf[Ports](m)
	require.NotNil(t, ports.Filter)
	assert.Equal(t, []string{"en"}, ports.Filter.Config().Languages)

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filter/exists", strings.NewReader(`{"text":"what the fuck"}`))
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exists":true`)
}

func TestModulePrefixOverride(t *testing.T) {
	m := New(modkit.Deps{}, Options{Filter: filter.DefaultConfig()}, modkit.WithPrefix("profanity/"))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profanity/lists", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
