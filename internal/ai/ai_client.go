package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 20 * time.Second
)

// Client talks to the Gemini generateContent REST endpoint. Methods never
// return errors to callers; every failure mode maps to a fixed fallback
// string so the UI always has something to show.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	group   singleflight.Group
	logger  *zap.Logger
}

func NewClient(logger ...*zap.Logger) *Client {
	l := zap.L().Named("ai.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ai.client")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  l,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateAnnouncement drafts announcement body text from a topic and tone.
func (c *Client) GenerateAnnouncement(ctx context.Context, topic, tone string) string {
	if c.apiKey == "" {
		return "Error: API Key missing."
	}

	prompt := fmt.Sprintf(
		"Write a company announcement about %q in a %s tone. "+
			"Keep it under 100 words. Return only the announcement body.",
		topic, tone,
	)
	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("announcement generation failed", zap.Error(err))
		return "Error generating content. Please check API key."
	}
	if text == "" {
		return "Failed to generate announcement."
	}
	return text
}

// DashboardInsights summarizes workforce numbers into a short narrative.
// Concurrent calls with the same summary share a single upstream request.
func (c *Client) DashboardInsights(ctx context.Context, summary string) string {
	if c.apiKey == "" {
		return "AI Insights unavailable (No API Key)."
	}

	v, err, _ := c.group.Do(summary, func() (interface{}, error) {
		prompt := fmt.Sprintf(
			"You are an HR analyst. Given this workforce snapshot, write 2-3 "+
				"short bullet insights for a manager. Snapshot: %s",
			summary,
		)
		return c.generate(ctx, prompt)
	})
	if err != nil {
		c.logger.Warn("insights generation failed", zap.Error(err))
		return "Could not fetch insights."
	}

	text, _ := v.(string)
	if text == "" {
		return "No insights available."
	}
	return text
}
