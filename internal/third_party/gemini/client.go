package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"meme-localizer/pkg/types"
)

type Client struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, geminiConfig types.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      geminiConfig.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: geminiConfig.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := geminiConfig.Model
	if model == "" {
		model = types.DefaultGeminiModel
	}
	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Complete sends the parts as a single user turn and returns the full text answer.
func (c *Client) Complete(ctx context.Context, parts []types.Part) (string, error) {
	contents, err := toContents(parts)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

// StreamCompletion implements streaming completion using Google Gemini API
func (c *Client) StreamCompletion(ctx context.Context, parts []types.Part, onChunk func(string) error) error {
	contents, err := toContents(parts)
	if err != nil {
		return err
	}

	stream := c.client.Models.GenerateContentStream(ctx, c.model, contents, &genai.GenerateContentConfig{})
	for chunk, err := range stream {
		if err != nil {
			return fmt.Errorf("stream content: %w", err)
		}
		text := chunk.Text()
		if text == "" {
			continue
		}
		if err := onChunk(text); err != nil {
			return err
		}
	}
	return nil
}

func toContents(parts []types.Part) ([]*genai.Content, error) {
	genaiParts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.InlineData == nil {
			genaiParts = append(genaiParts, &genai.Part{Text: p.Text})
			continue
		}

		data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("decode inline data: %w", err)
		}
		genaiParts = append(genaiParts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: p.InlineData.MIMEType,
				Data:     data,
			},
		})
	}

	return []*genai.Content{
		{
			Role:  "user",
			Parts: genaiParts,
		},
	}, nil
}
