package localizer_openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"meme-localizer/pkg/types"
)

const outputTextDoneEvent = "response.output_text.done"

type Client struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(openAIConfig types.OpenAIConfig) *Client {
	// One best-effort call per request: the SDK would otherwise retry 5xx and 429.
	opts := []option.RequestOption{
		option.WithAPIKey(openAIConfig.APIKey),
		option.WithMaxRetries(0),
	}
	if openAIConfig.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(openAIConfig.BaseURL))
	}
	c := openai.NewClient(opts...)

	model := openAIConfig.Model
	if model == "" {
		model = types.DefaultOpenAIModel
	}
	return &Client{client: &c, model: model}
}

// Complete sends the parts through the Responses API and returns the output text.
func (c *Client) Complete(ctx context.Context, parts []types.Part) (string, error) {
	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: toInput(parts),
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", errors.New("openai returned an empty response")
	}
	return text, nil
}

// StreamCompletion forwards each finished output text segment to onChunk.
func (c *Client) StreamCompletion(ctx context.Context, parts []types.Part, onChunk func(string) error) error {
	stream := c.client.Responses.NewStreaming(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: toInput(parts),
	})
	defer stream.Close()

	for stream.Next() {
		event := stream.Current()
		if event.Type != outputTextDoneEvent || event.Text == "" {
			continue
		}
		if err := onChunk(event.Text); err != nil {
			return err
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("stream response: %w", err)
	}
	return nil
}

// toInput sends text-only prompts as a plain string and switches to a
// message with input_image content when an image is attached.
func toInput(parts []types.Part) responses.ResponseNewParamsInputUnion {
	var text strings.Builder
	content := make(responses.ResponseInputMessageContentListParam, 0, len(parts))
	hasImage := false

	for _, p := range parts {
		if p.InlineData == nil {
			text.WriteString(p.Text)
			content = append(content, responses.ResponseInputContentUnionParam{
				OfInputText: &responses.ResponseInputTextParam{Text: p.Text},
			})
			continue
		}

		hasImage = true
		content = append(content, responses.ResponseInputContentUnionParam{
			OfInputImage: &responses.ResponseInputImageParam{
				ImageURL: openai.String(p.InlineData.DataURL()),
				Detail:   responses.ResponseInputImageDetailAuto,
			},
		})
	}

	if !hasImage {
		return responses.ResponseNewParamsInputUnion{OfString: openai.String(text.String())}
	}
	return responses.ResponseNewParamsInputUnion{
		OfInputItemList: responses.ResponseInputParam{
			responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser),
		},
	}
}
