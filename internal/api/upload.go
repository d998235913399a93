package api

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meme-localizer/internal/meme_localizer"
	"meme-localizer/pkg/types"
)

// LocalizeUpload accepts a multipart form with an optional "image" file and
// an optional "koreanText" field, then localizes it like /api/localize.
// @Summary Localize an uploaded ad image
// @Tags localize
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Korean ad image"
// @Param koreanText formData string false "Korean ad copy"
// @Success 200 {object} types.LocalizeResponse
// @Router /api/localize/upload [post]
func (s *GinServer) LocalizeUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{Error: MsgImageTooLarge})
			return
		}
		s.logger.Info("rejected upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgInvalidUpload})
		return
	}

	req := types.LocalizeRequest{KoreanText: c.PostForm("koreanText")}
	if fileHeader != nil {
		data, err := readUpload(fileHeader)
		if err != nil {
			s.writeError(c, err)
			return
		}

		// Types the data-URI grammar cannot carry (svg+xml, vnd.microsoft.icon) are refused here.
		mime := mimetype.Detect(data)
		imageData := "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
		if _, _, ok := meme_localizer.ParseDataURI(imageData); !ok {
			s.logger.Info("rejected upload", zap.String("mime_type", mime.String()))
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgNotAnImage})
			return
		}
		req.ImageData = imageData
	}

	s.localize(c, req)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
