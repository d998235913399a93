package meme_localizer

import (
	"regexp"
	"strings"

	"meme-localizer/internal/prompts"
	"meme-localizer/pkg/types"
)

var dataURIPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// Input is a validated localization request: either TextInput or ImageInput.
type Input interface {
	Mode() prompts.Mode
	Parts() []types.Part
}

type TextInput struct {
	Text string
}

func (TextInput) Mode() prompts.Mode { return prompts.ModeText }

// Parts returns the text prompt followed by the instruction phrase and the copy.
func (in TextInput) Parts() []types.Part {
	return TextParts(in.Text)
}

type ImageInput struct {
	MIMEType string
	Data     string
}

func (ImageInput) Mode() prompts.Mode { return prompts.ModeImage }

func (in ImageInput) Parts() []types.Part {
	return ImageParts(in.MIMEType, in.Data)
}

func TextParts(text string) []types.Part {
	return []types.Part{
		types.TextPart(prompts.Text),
		types.TextPart(prompts.TextInstruction + strings.TrimSpace(text)),
	}
}

func ImageParts(mimeType, data string) []types.Part {
	return []types.Part{
		types.TextPart(prompts.Image),
		types.InlineDataPart(mimeType, data),
	}
}

// ParseDataURI extracts the MIME type and base64 payload of an image data URI.
func ParseDataURI(uri string) (mimeType, data string, ok bool) {
	m := dataURIPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", "", false
	}
	return "image/" + m[1], m[2], true
}
