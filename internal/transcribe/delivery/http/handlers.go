package http

import (
	"github.com/gin-gonic/gin"

	"voice-to-jira/internal/transcribe"
	"voice-to-jira/pkg/response"
)

// Transcribe godoc
// @Summary     Transcribe an audio recording
// @Description Uploads one audio or video file and returns the recognized text.
// @Tags        Transcribe
// @Accept      multipart/form-data
// @Produce     json
// @Param       file     formData file   true  "Audio recording (wav, mp3, m4a, ogg, flac, mp4, mov, mkv, webm)"
// @Param       language formData string false "Language hint (auto, ru, en, kk, tr); defaults to auto-detection"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     415 {object} response.Resp "Unsupported audio format"
// @Failure     502 {object} response.Resp "Transcription backend failed"
// @Router      /api/v1/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	input, cleanup, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cleanup()

	output, err := h.uc.Transcribe(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTranscribeResp(output))
}

type transcribeResp struct {
	Text string `json:"text"`
}

func newTranscribeResp(out transcribe.TranscribeOutput) transcribeResp {
	return transcribeResp{Text: out.Text}
}
