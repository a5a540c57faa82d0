package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"trans-gate/internal/types"
)

// RemoteEngine talks to an upstream translation engine over HTTP. The client
// is pooled and reused for the lifetime of the process.
type RemoteEngine struct {
	baseURL string
	client  *http.Client
}

// NewRemoteEngine creates a remote engine client from the engine configuration.
func NewRemoteEngine(configManager types.ConfigManager) *RemoteEngine {
	cfg := configManager.GetEngineConfig()

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   time.Duration(cfg.ConnectTimeout) * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		IdleConnTimeout:     time.Duration(cfg.IdleConnTimeout) * time.Second,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		ForceAttemptHTTP2:   true,
	}

	return &RemoteEngine{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.RequestTimeout) * time.Second,
		},
	}
}

type remoteTranslateRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	HTML bool   `json:"html"`
}

type remoteTranslateResponse struct {
	Result string `json:"result"`
}

type remoteLanguagesResponse struct {
	Languages []string `json:"languages"`
	Pairs     []string `json:"pairs"`
}

// Translate implements Engine.
func (e *RemoteEngine) Translate(ctx context.Context, source, target, text string, markup bool) (string, error) {
	body, err := json.Marshal(remoteTranslateRequest{
		From: source,
		To:   target,
		Text: text,
		HTML: markup,
	})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result remoteTranslateResponse
	if err := e.do(req, &result); err != nil {
		return "", err
	}
	return result.Result, nil
}

// SupportedLanguages implements Engine.
func (e *RemoteEngine) SupportedLanguages(ctx context.Context) ([]string, error) {
	languages, _, err := e.fetchLanguages(ctx)
	return languages, err
}

// LanguagePairs implements Engine.
func (e *RemoteEngine) LanguagePairs(ctx context.Context) ([]string, error) {
	_, pairs, err := e.fetchLanguages(ctx)
	return pairs, err
}

func (e *RemoteEngine) fetchLanguages(ctx context.Context) ([]string, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/languages", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build languages request: %w", err)
	}

	var result remoteLanguagesResponse
	if err := e.do(req, &result); err != nil {
		return nil, nil, err
	}
	return result.Languages, result.Pairs, nil
}

func (e *RemoteEngine) do(req *http.Request, out any) error {
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("engine returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode engine response: %w", err)
	}
	return nil
}
