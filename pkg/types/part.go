package types

// Part is one element of the content sent to a generative model.
// Exactly one of Text or InlineData is set.
type Part struct {
	Text       string
	InlineData *InlineData
}

// InlineData carries base64-encoded binary content, as extracted from a data URI.
type InlineData struct {
	MIMEType string
	Data     string
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func InlineDataPart(mimeType, data string) Part {
	return Part{InlineData: &InlineData{MIMEType: mimeType, Data: data}}
}

// DataURL re-assembles the data URI for providers that take images by URL.
func (d *InlineData) DataURL() string {
	return "data:" + d.MIMEType + ";base64," + d.Data
}
