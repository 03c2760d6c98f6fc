package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
)

type accountListQuery struct {
	Page     int      `form:"page,default=1"`
	Limit    int      `form:"limit,default=10"`
	Sort     []string `form:"sort"`
	Nosamw   string   `form:"nosamw"`
	Nama     string   `form:"nama"`
	IsAktif  *bool    `form:"is_aktif"`
	SatkerID string   `form:"satker_id"`
}

func (q accountListQuery) isAktif() bool {
	if q.IsAktif == nil {
		return true
	}
	return *q.IsAktif
}

func (s *Server) ListMasterAccounts(c *gin.Context) {
	var q accountListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	page, err := s.accountSvc.List(c.Request.Context(), accountdomain.ListRequest{
		Page:     q.Page,
		Limit:    q.Limit,
		Sort:     q.Sort,
		Nosamw:   q.Nosamw,
		Nama:     q.Nama,
		IsAktif:  q.isAktif(),
		SatkerID: q.SatkerID,
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

func (s *Server) GetMasterAccount(c *gin.Context) {
	account, err := s.accountSvc.Get(c.Request.Context(), c.Param("nosamw"))
	if err != nil {
		if errors.Is(err, accountdomain.ErrNotFound) {
			respond(c, http.StatusNotFound, "Not Found", nil)
			return
		}
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data Found", account)
}

func (s *Server) CreateMasterAccount(c *gin.Context) {
	var req accountdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	account, err := s.accountSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Master Tni created", account)
}

func (s *Server) UpdateMasterAccount(c *gin.Context) {
	var req accountdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	account, err := s.accountSvc.Update(c.Request.Context(), c.Param("nosamw"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, "Update Success", account)
}

func (s *Server) DeleteMasterAccount(c *gin.Context) {
	if err := s.accountSvc.Delete(c.Request.Context(), c.Param("nosamw")); err != nil {
		AbortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, "Delete Success", nil)
}

type accountExportQuery struct {
	Nosamw   string `form:"nosamw"`
	Nama     string `form:"nama"`
	IsAktif  *bool  `form:"is_aktif"`
	SatkerID string `form:"satker_id"`
}

func (q accountExportQuery) request() accountdomain.ExportRequest {
	isAktif := true
	if q.IsAktif != nil {
		isAktif = *q.IsAktif
	}
	return accountdomain.ExportRequest{
		Nosamw:   q.Nosamw,
		Nama:     q.Nama,
		IsAktif:  isAktif,
		SatkerID: q.SatkerID,
	}
}

func (s *Server) ExportMasterAccountsXLSX(c *gin.Context) {
	var q accountExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	table, err := s.accountSvc.ExportRoster(c.Request.Context(), q.request())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveXLSX(c, table)
}

func (s *Server) ExportMasterAccountsCSV(c *gin.Context) {
	var q accountExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	table, err := s.accountSvc.ExportSummary(c.Request.Context(), q.request())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveCSV(c, table)
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\n', '\r':
			return '_'
		default:
			return r
		}
	}, name)
}
