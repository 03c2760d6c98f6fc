package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
)

type billingListQuery struct {
	Page   int      `form:"page,default=1"`
	Limit  int      `form:"limit,default=10"`
	Sort   []string `form:"sort"`
	Nosamw string   `form:"nosamw"`
	Nama   string   `form:"nama"`
}

func (s *Server) ListBills(c *gin.Context) {
	var q billingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	page, err := s.billingSvc.List(c.Request.Context(), billingdomain.ListRequest{
		Periode: c.Param("periode"),
		Page:    q.Page,
		Limit:   q.Limit,
		Sort:    q.Sort,
		Nosamw:  q.Nosamw,
		Nama:    q.Nama,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if len(page.Content) == 0 {
		respond(c, http.StatusNotFound, "Not Found", page)
		return
	}
	respond(c, http.StatusOK, "Data Found", page)
}

func (s *Server) GetBill(c *gin.Context) {
	// Shared route segment; here it carries the opaque record id.
	record, err := s.billingSvc.Get(c.Request.Context(), c.Param("periode"))
	if err != nil {
		if errors.Is(err, billingdomain.ErrNotFound) {
			respond(c, http.StatusNotFound, "Not Found", nil)
			return
		}
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data Found", record)
}

func (s *Server) UpdateBill(c *gin.Context) {
	var req billingdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if _, err := s.billingSvc.Update(c.Request.Context(), c.Param("periode"), req); err != nil {
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Tagihan updated", nil)
}

func (s *Server) SyncPeriode(c *gin.Context) {
	result, err := s.billingSvc.Sync(c.Request.Context(), c.Param("periode"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Success Synced", result)
}

func (s *Server) ListRawReadings(c *gin.Context) {
	rows, err := s.billingSvc.ListRaw(c.Request.Context(), c.Param("periode"))
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

func (s *Server) GetRawReading(c *gin.Context) {
	row, err := s.billingSvc.RawDetail(c.Request.Context(), c.Param("nosamw"), c.Param("periode"))
	if err != nil {
		if errors.Is(err, billingdomain.ErrNotFound) {
			respond(c, http.StatusNotFound, "Not Found", nil)
			return
		}
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data Found", row)
}

func (s *Server) ExportBillsCSV(c *gin.Context) {
	table, err := s.billingSvc.ExportDetail(c.Request.Context(), billingdomain.ExportRequest{
		Periode:  c.Param("periode"),
		SatkerID: c.Param("satker_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveCSV(c, table)
}

func (s *Server) ExportBillsXLSX(c *gin.Context) {
	table, err := s.billingSvc.ExportDetail(c.Request.Context(), billingdomain.ExportRequest{
		Periode:  c.Param("periode"),
		SatkerID: c.Param("satker_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveXLSX(c, table)
}
