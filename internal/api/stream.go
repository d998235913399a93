package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meme-localizer/pkg/types"
)

const streamDone = "[DONE]"

// LocalizeStream streams the model answer as Server-Sent Events
// @Summary Localize with a streamed answer
// @Tags localize
// @Accept json
// @Produce text/event-stream
// @Param request body types.LocalizeRequest true "Localization request"
// @Success 200 {string} string "SSE stream"
// @Router /api/localize/stream [post]
func (s *GinServer) LocalizeStream(c *gin.Context) {
	var req types.LocalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, err)
		return
	}

	// Validation errors still get a JSON body; the stream only opens for a valid input.
	in, err := s.services.MemeLocalizerService.Prepare(req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	err = s.services.MemeLocalizerService.Stream(ctx, in, func(chunk string) error {
		c.SSEvent("message", chunk)
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil {
		s.logger.Error("localization stream failed", zap.Error(err))
		c.SSEvent("error", MsgRequestFailed)
	}

	c.SSEvent("message", streamDone)
	c.Writer.Flush()
}
