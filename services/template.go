package services

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
)

type TemplateFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type HTTPTemplateFetcher struct {
	client *http.Client
}

func NewHTTPTemplateFetcher(client *http.Client) *HTTPTemplateFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTemplateFetcher{client: client}
}

// Fetch blocks until the template body is read. Only 2xx responses succeed.
func (f *HTTPTemplateFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req.WithContext(ctx))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s for url: %s", resp.Status, url)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

type Replacement struct {
	Token string
	Value string
}

// Substitute replaces every literal token in a single pass, so a value that
// happens to contain another token is left alone.
func Substitute(template string, replacements []Replacement) string {
	pairs := make([]string, 0, len(replacements)*2)
	for _, r := range replacements {
		pairs = append(pairs, r.Token, r.Value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
