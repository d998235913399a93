package meme_localizer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"meme-localizer/internal/prompts"
	"meme-localizer/internal/result_card"
	"meme-localizer/pkg/types"
)

// ModelProviderInterface defines the methods required from a generative model backend
type ModelProviderInterface interface {
	Complete(ctx context.Context, parts []types.Part) (string, error)
	StreamCompletion(ctx context.Context, parts []types.Part, onChunk func(string) error) error
}

// MemeLocalizerService turns Korean ad copy into a meme-ified US localization
type MemeLocalizerService struct {
	logger   *zap.Logger
	provider ModelProviderInterface
}

// NewMemeLocalizerService creates a new instance of MemeLocalizerService.
// A nil provider means no credential is configured; every request then fails with ErrNotConfigured.
func NewMemeLocalizerService(logger *zap.Logger, provider ModelProviderInterface) *MemeLocalizerService {
	return &MemeLocalizerService{
		logger:   logger,
		provider: provider,
	}
}

// Prepare validates a request and selects its modality. An image wins over text.
func (s *MemeLocalizerService) Prepare(req types.LocalizeRequest) (Input, error) {
	text := strings.TrimSpace(req.KoreanText)
	if text == "" && req.ImageData == "" {
		return nil, ErrInputRequired
	}

	if s.provider == nil {
		return nil, ErrNotConfigured
	}

	if req.ImageData != "" {
		mimeType, data, ok := ParseDataURI(req.ImageData)
		if !ok {
			return nil, ErrInvalidImage
		}
		return ImageInput{MIMEType: mimeType, Data: data}, nil
	}

	return TextInput{Text: text}, nil
}

// Localize validates the request and makes exactly one model call.
func (s *MemeLocalizerService) Localize(ctx context.Context, req types.LocalizeRequest) (string, error) {
	in, err := s.Prepare(req)
	if err != nil {
		return "", err
	}
	return s.Run(ctx, in)
}

// Run sends a prepared input to the model and returns its raw text.
func (s *MemeLocalizerService) Run(ctx context.Context, in Input) (string, error) {
	s.logRequest(in)

	text, err := s.provider.Complete(ctx, in.Parts())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.checkFormat(in.Mode(), text)
	return text, nil
}

// Stream sends a prepared input to the model and forwards chunks as they arrive.
func (s *MemeLocalizerService) Stream(ctx context.Context, in Input, onChunk func(string) error) error {
	s.logRequest(in)

	var full strings.Builder
	err := s.provider.StreamCompletion(ctx, in.Parts(), func(chunk string) error {
		full.WriteString(chunk)
		return onChunk(chunk)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.checkFormat(in.Mode(), full.String())
	return nil
}

func (s *MemeLocalizerService) logRequest(in Input) {
	fields := []zap.Field{zap.String("mode", string(in.Mode()))}
	switch v := in.(type) {
	case TextInput:
		fields = append(fields, zap.Int("text_length", len(v.Text)))
	case ImageInput:
		fields = append(fields,
			zap.String("mime_type", v.MIMEType),
			zap.Int("payload_length", len(v.Data)),
		)
	}
	s.logger.Info("localizing ad copy", fields...)
}

// checkFormat logs, never rejects, a response missing expected headings.
func (s *MemeLocalizerService) checkFormat(mode prompts.Mode, text string) {
	missing := result_card.Parse(text).MissingSections(prompts.ExpectedSections(mode))
	if len(missing) > 0 {
		s.logger.Warn("model response is missing expected sections",
			zap.String("mode", string(mode)),
			zap.Strings("missing", missing),
		)
	}
}
