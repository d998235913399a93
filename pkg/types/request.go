package types

// LocalizeRequest is the body of POST /api/localize. At least one field must be set.
type LocalizeRequest struct {
	KoreanText string `json:"koreanText,omitempty" form:"koreanText"`
	ImageData  string `json:"imageData,omitempty"`
}

type LocalizeResponse struct {
	Result string `json:"result"`
}

type RenderRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
