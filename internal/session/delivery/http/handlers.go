package http

import (
	"github.com/gin-gonic/gin"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/tracker"
	"voice-to-jira/pkg/response"
)

// Create godoc
// @Summary     Open an editing session
// @Description Creates a session, optionally seeded with a transcript.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Initial transcript"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.sessionUC.Create(ctx, req.Transcript)
	if err != nil {
		h.l.Errorf(ctx, "sessionUC.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Detail godoc
// @Summary     Get a session
// @Description Returns the session with its transcript and task list.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessionUC.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// SetTranscript godoc
// @Summary     Replace the session transcript
// @Description Overwrites the transcript, keeping the current task list.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Session ID"
// @Param       body body transcriptReq true "New transcript"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/transcript [PUT]
func (h *handler) SetTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.sessionUC.SetTranscript(ctx, c.Param("id"), req.Transcript)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Clean godoc
// @Summary     Clean up the transcript
// @Description Runs a generator pass fixing typos, casing and punctuation, then stores the result as the session transcript.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Generator unavailable"
// @Router      /api/v1/sessions/{id}/clean [POST]
func (h *handler) Clean(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessionUC.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	cleaned, _, err := h.extractionUC.CleanTranscript(ctx, sess.Transcript)
	if err != nil {
		h.l.Errorf(ctx, "extractionUC.CleanTranscript: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	sess, err = h.sessionUC.SetTranscript(ctx, sess.ID, cleaned)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Extract godoc
// @Summary     Extract tasks from the transcript
// @Description Runs the generator over the session transcript and replaces the task list with the normalized result. On failure the previous task list is kept.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Generator returned no parseable tasks"
// @Failure     503 {object} response.Resp "Generator unavailable"
// @Router      /api/v1/sessions/{id}/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessionUC.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.extractionUC.Extract(ctx, extraction.ExtractInput{Transcript: sess.Transcript})
	if err != nil {
		h.l.Errorf(ctx, "extractionUC.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	tasks := h.extractionUC.Normalize(out.Tasks, sess.Transcript)
	sess, err = h.sessionUC.ReplaceTasks(ctx, sess.ID, tasks, out.Meta)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// AddTask godoc
// @Summary     Add an empty task
// @Description Appends a task skeleton for manual entry.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessionUC.AddTask(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// UpdateTask godoc
// @Summary     Edit one task
// @Description Applies a partial edit. Summary length and priority are re-validated.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id     path string        true "Session ID"
// @Param       taskId path string        true "Task ID"
// @Param       body   body updateTaskReq true "Fields to update"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/tasks/{taskId} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.sessionUC.UpdateTask(ctx, c.Param("id"), c.Param("taskId"), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// DeleteTask godoc
// @Summary     Delete one task
// @Tags        Sessions
// @Produce     json
// @Param       id     path string true "Session ID"
// @Param       taskId path string true "Task ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/tasks/{taskId} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessionUC.DeleteTask(ctx, c.Param("id"), c.Param("taskId"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Submit godoc
// @Summary     Export the task list to Jira
// @Description Creates one issue per task, collecting per-task failures without aborting the batch.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Session ID"
// @Param       body body submitReq false "Project override"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "No tasks to export"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.sessionUC.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	project := req.Project
	if project == "" {
		project = h.defaultProject
	}

	out, err := h.trackerUC.CreateBulk(ctx, tracker.CreateBulkInput{
		Project: project,
		Tasks:   sess.Tasks,
	})
	if err != nil {
		h.l.Errorf(ctx, "trackerUC.CreateBulk: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSubmitResp(out))
}
