package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophsafe/internal/client/export"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/server/services"
	"github.com/labstack/echo/v4"
)

const triageLogFilePrefix = "triage-log"

// sharedPlan renders the plan behind a share token as markdown (default),
// JSON or PDF, picked by the format query parameter.
func (s *Server) sharedPlan(c echo.Context) error {
	ctx := c.Request().Context()

	plan, err := s.mirror.PlanByShareToken(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "plan not found")
		}
		s.logger.Error(ctx, "share lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h := c.Response().Header()
	h.Set("Cache-Control", "no-store")
	h.Set("X-Robots-Tag", "noindex")

	switch c.QueryParam("format") {
	case "", "md", "markdown":
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(export.RenderPlanMarkdown(plan)))
	case "json":
		return c.JSON(http.StatusOK, plan)
	case "pdf":
		doc, err := export.RenderPlanPDF(plan)
		if err != nil {
			s.logger.Error(ctx, "pdf render failed", "plan_id", plan.ID, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		name := export.FileName(export.PlanFilePrefix, plan.UpdatedAt, "pdf")
		h.Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
		return c.Blob(http.StatusOK, "application/pdf", doc)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "format must be md, json or pdf")
}

func (s *Server) triageWorkbook(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := s.mirror.TriageLog(ctx, userID(c))
	if err != nil {
		s.logger.Error(ctx, "triage log failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	data, err := services.TriageWorkbook(records)
	if err != nil {
		s.logger.Error(ctx, "workbook render failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	name := export.FileName(triageLogFilePrefix, s.now(), "xlsx")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, services.ContentTypeFor(name), data)
}

func (s *Server) contacts(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := s.mirror.Contacts(ctx, userID(c))
	if err != nil {
		s.logger.Error(ctx, "contacts failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) journal(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	entries, err := s.mirror.Journal(ctx, userID(c), limit)
	if err != nil {
		s.logger.Error(ctx, "journal failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, entries)
}
