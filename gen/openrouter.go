package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the OpenRouter chat completions URL. Any
	// OpenAI-compatible endpoint works.
	DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultModel is cheap and good enough at structured JSON output.
	DefaultModel = "openai/gpt-4o-mini"

	defaultTimeout = 60 * time.Second
)

// OpenRouter is a Client backed by an OpenAI-compatible chat completions
// endpoint. The zero value is not usable; a key must be supplied by the
// caller, whether a key is required at all is the caller's policy.
type OpenRouter struct {
	Endpoint    string
	Model       string
	Key         string
	Temperature float64

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the raw
// completion content.
func (o *OpenRouter) Complete(ctx context.Context, prompt string) (string, error) {
	endpoint := o.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := o.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := o.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	b, err := json.Marshal(chatRequest{
		Model:          model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.Key)
	req.Header.Set("Content-Type", "application/json")

	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gen: %s from %s: %.200s", resp.Status, endpoint, body)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", err
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("gen: response contains no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
