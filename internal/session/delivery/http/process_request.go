package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds the optional create session body. An empty body is
// a session without a transcript.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processTranscriptReq binds the replace transcript request body.
func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateTaskReq binds the partial task edit body.
func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSubmitReq binds the optional submit body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
