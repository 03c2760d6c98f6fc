package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListSatker(c *gin.Context) {
	rows, err := s.satkerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if len(rows) == 0 {
		respond(c, http.StatusNotFound, "Not Found", rows)
		return
	}
	respond(c, http.StatusOK, "Data Found", rows)
}
