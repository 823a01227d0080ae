package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-to-jira/internal/transcribe"
)

// processTranscribeReq extracts the uploaded file from the multipart form.
// The returned cleanup closes the file handle and must always be called.
func (h *handler) processTranscribeReq(c *gin.Context) (transcribe.TranscribeInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return transcribe.TranscribeInput{}, func() {}, errors.New("file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return transcribe.TranscribeInput{}, func() {}, err
	}

	input := transcribe.TranscribeInput{
		Filename: fileHeader.Filename,
		Audio:    f,
		Language: c.PostForm("language"),
	}
	return input, func() { f.Close() }, nil
}
