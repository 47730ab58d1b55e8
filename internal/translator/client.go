package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the public languages resource of the Microsoft
	// Translator API. It requires no subscription key.
	DefaultEndpoint = "https://api.cognitive.microsofttranslator.com/languages?api-version=3.0"

	// DefaultTimeout bounds the languages request when the client has no
	// timeout configured.
	DefaultTimeout = 30 * time.Second
)

// LanguageMap maps a language code (e.g. "en") to its display name.
type LanguageMap map[string]string

// languagesResponse mirrors the Translator languages document. Only the
// translation section is consumed; transliteration and dictionary are
// ignored.
type languagesResponse struct {
	Translation map[string]*languageDescriptor `json:"translation"`
}

type languageDescriptor struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Dir        string `json:"dir"`
}

type Client struct {
	Endpoint string
	Timeout  time.Duration
}

// Languages fetches the set of languages the translation service supports
// and projects it into a code-to-display-name map. A non-2xx status, a
// malformed body, a missing translation section or a language entry without
// a name all fail the whole operation; no partial map is ever returned.
func (c *Client) Languages(ctx context.Context) (LanguageMap, error) {
	url := c.Endpoint
	if url == "" {
		url = DefaultEndpoint
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	slog.Debug("Fetching supported languages", slog.Any("request", req))

	client := http.Client{
		Timeout: timeout,
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	lres := &languagesResponse{}
	err = json.NewDecoder(res.Body).Decode(&lres)
	if err != nil {
		return nil, fmt.Errorf("decode languages response: %w", err)
	}
	if lres.Translation == nil {
		return nil, fmt.Errorf("languages response has no translation section")
	}

	langs := make(LanguageMap, len(lres.Translation))
	for code, desc := range lres.Translation {
		if desc == nil || desc.Name == "" {
			return nil, fmt.Errorf("language %q has no name", code)
		}
		langs[code] = desc.Name
	}
	slog.Debug("Fetched supported languages", "count", len(langs))

	return langs, nil
}

// JSON renders the map with keys sorted lexicographically and 4-space
// indentation, so identical maps always serialize to identical bytes.
func (m LanguageMap) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "    ")
}
