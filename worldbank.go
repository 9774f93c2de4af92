package worldbank

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
)

const API_BASE_URL = "https://api.worldbank.org/v2"

// ========================= CONFIG =========================

// Earlier revisions of the API lived at the bare host root, current data is
// under /v2. Kept swappable for that reason and for test servers.
type baseURLManager struct {
	url string
	mu  sync.RWMutex
}

var baseURL = baseURLManager{url: API_BASE_URL}

func BaseURL() string {
	baseURL.mu.RLock()
	defer baseURL.mu.RUnlock()
	return baseURL.url
}

func SetBaseURL(url string) {
	baseURL.mu.Lock()
	defer baseURL.mu.Unlock()
	baseURL.url = url
}

type headerManager struct {
	headers map[string]string
	mu      sync.RWMutex
}

var extraHeaders headerManager

// SetHeaders replaces the set of headers attached to every request.
func SetHeaders(headers map[string]string) {
	extraHeaders.mu.Lock()
	defer extraHeaders.mu.Unlock()
	extraHeaders.headers = headers
}

func getHeaders() map[string]string {
	extraHeaders.mu.RLock()
	defer extraHeaders.mu.RUnlock()
	return extraHeaders.headers
}

// ========================= TRANSPORT =========================

// fetchJSON performs one blocking GET and returns the raw body. This is the
// only place failures are logged; callers just propagate the error.
func fetchJSON(path string, opts Options, allowed allowedOptions) ([]byte, string, error) {
	url, err := buildURL(BaseURL(), path, opts, allowed)
	if err != nil {
		return nil, "", err
	}

	req, _ := http.NewRequest("GET", url, nil)
	for key, value := range getHeaders() {
		req.Header.Set(key, value)
	}
	slog.Debug(fmt.Sprintf("GET %s", url))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Error(fmt.Sprintf("GET %s failed: %v", url, err))
		return nil, url, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if details, ok := httpStatusMap[resp.StatusCode]; ok {
		slog.Error(fmt.Sprintf("%d - %s (%s)", resp.StatusCode, details, url))
		return nil, url, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error(fmt.Sprintf("GET %s failed reading body: %v", url, err))
		return nil, url, &TransportError{URL: url, Err: err}
	}
	return body, url, nil
}
