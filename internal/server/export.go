package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tirtadata/tirtabill/pkg/tabular"
	"go.uber.org/zap"
)

// serveCSV streams the table straight into the response body.
func (s *Server) serveCSV(c *gin.Context, table *tabular.Table) {
	name := sanitizeFilename(table.Name)
	c.Header("Content-Disposition", `attachment; filename=`+name+`.csv`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	if err := table.WriteCSV(c.Writer); err != nil {
		// Headers are already out; all that is left is the log line.
		s.log.Error("csv export write failed",
			zap.String("name", table.Name),
			zap.Error(err),
		)
	}
}

// serveXLSX renders to a temp workbook, serves it, then removes it.
func (s *Server) serveXLSX(c *gin.Context, table *tabular.Table) {
	file, err := table.WriteXLSX()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer func() {
		if err := file.Cleanup(); err != nil {
			s.log.Warn("xlsx cleanup failed",
				zap.String("path", file.Path),
				zap.Error(err),
			)
		}
	}()

	c.FileAttachment(file.Path, sanitizeFilename(file.Name))
}
