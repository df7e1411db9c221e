package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type submitDocumentsRequest struct {
	Email string `json:"email"`
}

func (s *Server) submitDocuments(c *gin.Context) {
	var req submitDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	docs, uploads, err := s.documents.Submit(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"applicationId": docs.ApplicationID,
		"uploads":       uploads,
	})
}

func (s *Server) fetchDocuments(c *gin.Context) {
	docs, links, err := s.documents.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applicationId": docs.ApplicationID,
		"documents":     links,
	})
}
