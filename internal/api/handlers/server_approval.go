package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApproveSubmission handles POST /submissions/{submission_id}/approve.
//
// Authorization is not checked here: whether the caller may decide is a
// property of the submission's frozen approver snapshot, evaluated inside
// the approval transaction under the row lock.
func (s *Server) ApproveSubmission(c *gin.Context) {
	actor, err := s.loadActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_REQUEST"})
		return
	}

	decision, err := s.gateway.Approve(c.Request.Context(), c.Param("submission_id"), actor.actor, req.Signature)
	if err != nil {
		respondError(c, err, "APPROVAL_FAILED")
		return
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Status:    string(decision.NewStatus),
		Completed: decision.Completed,
	})
}

// RejectSubmission handles POST /submissions/{submission_id}/reject. A single
// rejection finalizes the submission regardless of accumulated approvals.
func (s *Server) RejectSubmission(c *gin.Context) {
	actor, err := s.loadActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_REQUEST"})
		return
	}

	decision, err := s.gateway.Reject(c.Request.Context(), c.Param("submission_id"), actor.actor, req.Signature)
	if err != nil {
		respondError(c, err, "REJECT_FAILED")
		return
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Status:    string(decision.NewStatus),
		Completed: decision.Completed,
	})
}
