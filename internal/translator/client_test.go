package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLanguageServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLanguages(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK,
		`{"translation":{"fr":{"name":"French","nativeName":"Français","dir":"ltr"},"en":{"name":"English","nativeName":"English","dir":"ltr"}}}`)
	cli := &Client{Endpoint: srv.URL}

	langs, err := cli.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LanguageMap{"en": "English", "fr": "French"}, langs)
}

func TestLanguagesEmpty(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK, `{"translation":{}}`)
	cli := &Client{Endpoint: srv.URL}

	langs, err := cli.Languages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, langs)

	out, err := langs.JSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestLanguagesMissingTranslationSection(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK, `{"transliteration":{}}`)
	cli := &Client{Endpoint: srv.URL}

	_, err := cli.Languages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translation section")
}

func TestLanguagesMissingName(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK,
		`{"translation":{"en":{"nativeName":"English","dir":"ltr"}}}`)
	cli := &Client{Endpoint: srv.URL}

	_, err := cli.Languages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `language "en" has no name`)
}

func TestLanguagesMalformedBody(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK, `not json`)
	cli := &Client{Endpoint: srv.URL}

	_, err := cli.Languages(context.Background())
	require.Error(t, err)
}

func TestLanguagesServerError(t *testing.T) {
	srv := newLanguageServer(t, http.StatusBadGateway, `oops`)
	cli := &Client{Endpoint: srv.URL}

	_, err := cli.Languages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 502")
}

func TestLanguagesContextCancelled(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK, `{"translation":{}}`)
	cli := &Client{Endpoint: srv.URL, Timeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cli.Languages(ctx)
	require.Error(t, err)
}

func TestLanguageMapJSONSortsKeys(t *testing.T) {
	langs := LanguageMap{"fr": "French", "en": "English"}

	out, err := langs.JSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"en\": \"English\",\n    \"fr\": \"French\"\n}", string(out))
}

func TestLanguageMapJSONDeterministic(t *testing.T) {
	srv := newLanguageServer(t, http.StatusOK,
		`{"translation":{"fr":{"name":"French"},"en":{"name":"English"},"ja":{"name":"Japanese"}}}`)
	cli := &Client{Endpoint: srv.URL}

	first, err := cli.Languages(context.Background())
	require.NoError(t, err)
	second, err := cli.Languages(context.Background())
	require.NoError(t, err)

	a, err := first.JSON()
	require.NoError(t, err)
	b, err := second.JSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
