package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	models "IPOCal/internal/domain/models"
	domsvc "IPOCal/internal/domain/service"
	"IPOCal/internal/service/metrics"
	"IPOCal/internal/usecase"
	xhttp "IPOCal/pkg/http"
	xlogger "IPOCal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const listCacheControl = "public, max-age=300"

var statusTagOnce sync.Once

// IPOsEchoHandler serves the calendar to the browser UI.
type IPOsEchoHandler struct {
	logger *xlogger.Logger
	cal    *usecase.IPOCalendar
}

func NewIPOsEchoHandler(logger *xlogger.Logger, cal *usecase.IPOCalendar) *IPOsEchoHandler {
	metrics.Register()
	statusTagOnce.Do(func() {
		msg := "%s must be one of: " + strings.Join(models.StatusNames(), ", ")
		if err := xhttp.RegisterValidation(models.StatusTag, domsvc.ValidStatusField, msg); err != nil {
			logger.Error("status validator", xlogger.Error(err))
		}
	})
	return &IPOsEchoHandler{logger: logger, cal: cal}
}

func (h *IPOsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/ipos", h.List)
	g.OPTIONS("/ipos", h.Preflight)
	g.GET("/ipos/:ticker", h.ByTicker)
}

// List returns the reconciled calendar, optionally narrowed by ?status=.
func (h *IPOsEchoHandler) List(c echo.Context) error {
	start := time.Now()
	defer observe("list", start)

	req := &models.IPOListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.cal.GetIPOs(c.Request().Context())
	if !res.Success {
		metrics.EndpointDegraded.WithLabelValues("list").Inc()
		h.logger.Error("ipo calendar degraded", xlogger.String("error", res.Error))
	} else {
		c.Response().Header().Set(echo.HeaderCacheControl, listCacheControl)
	}

	data := res.Data
	if req.Status != "" {
		data = filterByStatus(data, models.Status(req.Status))
	}
	return c.JSON(http.StatusOK, models.NewIPOListResponse(res.Success, data, res.Error))
}

// Preflight answers CORS preflight requests with an empty 200.
func (h *IPOsEchoHandler) Preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// ByTicker looks a single record up in the current dataset.
func (h *IPOsEchoHandler) ByTicker(c echo.Context) error {
	start := time.Now()
	defer observe("ticker", start)

	req := &models.IPOTickerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.cal.GetIPOs(c.Request().Context())
	if !res.Success {
		metrics.EndpointDegraded.WithLabelValues("ticker").Inc()
	}
	for _, ipo := range res.Data {
		if strings.EqualFold(ipo.Ticker, req.Ticker) {
			return c.JSON(http.StatusOK, models.NewIPOListResponse(res.Success, []models.IPO{ipo}, res.Error))
		}
	}
	return xhttp.AppErrorResponse(c,
		xhttp.NotFoundErrorf("no IPO with ticker %s", strings.ToUpper(req.Ticker)).WithParam("ticker", req.Ticker))
}

func (h *IPOsEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func filterByStatus(in []models.IPO, s models.Status) []models.IPO {
	out := make([]models.IPO, 0, len(in))
	for _, ipo := range in {
		if ipo.Status == s {
			out = append(out, ipo)
		}
	}
	return out
}

func observe(endpoint string, start time.Time) {
	metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
