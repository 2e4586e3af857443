package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/seo"
	"github.com/jonathan/csm-portfolio/internal/types"
)

// metricListResponse is the envelope for every metric list endpoint
type metricListResponse struct {
	Metrics []metrics.View `json:"metrics"`
	Count   int            `json:"count"`
}

// categoryResponse describes one category with its presentation attributes
type categoryResponse struct {
	Category types.Category `json:"category"`
	Count    int            `json:"count"`
	Color    string         `json:"color"`
	Icon     string         `json:"icon"`
}

func (s *Server) listResponse(w http.ResponseWriter, list []types.Metric) {
	views := metrics.NewViews(list)
	s.jsonResponse(w, http.StatusOK, metricListResponse{Metrics: views, Count: len(views)})
}

// parseQuery builds a store query from ?category=&timeframe=&q=&key=&trending=
func parseQuery(r *http.Request) (metrics.Query, error) {
	params := r.URL.Query()
	q := metrics.Query{
		Timeframe: params.Get("timeframe"),
		Search:    params.Get("q"),
		KeyOnly:   params.Get("key") == "true",
		Trending:  params.Get("trending") == "true",
	}

	if raw := strings.TrimSpace(params.Get("category")); raw != "" {
		c := types.Category(strings.ToLower(raw))
		if !c.Valid() {
			return metrics.Query{}, &ErrInvalidParameter{Name: "category", Value: raw, Message: "unknown category"}
		}
		q.Category = c
	}
	return q, nil
}

// handleListMetrics handles GET /api/metrics
func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.listResponse(w, s.store.Filter(q))
}

// handleKeyMetrics handles GET /api/metrics/key
func (s *Server) handleKeyMetrics(w http.ResponseWriter, _ *http.Request) {
	s.listResponse(w, s.store.KeyMetrics())
}

// handleTrendingMetrics handles GET /api/metrics/trending
func (s *Server) handleTrendingMetrics(w http.ResponseWriter, _ *http.Request) {
	s.listResponse(w, s.store.Trending())
}

// handleCategoryStats handles GET /api/metrics/stats
func (s *Server) handleCategoryStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.CategoryStats())
}

// handleSummary handles GET /api/metrics/summary
func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Summary())
}

// handleGetMetric handles GET /api/metrics/{id}
func (s *Server) handleGetMetric(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, ok := s.store.ByID(id)
	if !ok {
		s.writeError(w, r, &ErrMetricNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, metrics.NewView(m))
}

// handleListCategories handles GET /api/categories
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	stats := s.store.CategoryStats()
	out := make([]categoryResponse, 0, len(types.AllCategories()))
	for _, c := range types.AllCategories() {
		out = append(out, categoryResponse{
			Category: c,
			Count:    stats[c].Count,
			Color:    metrics.CategoryColor(c),
			Icon:     metrics.CategoryIcon(c),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": out})
}

// handleMetricsPageMeta handles GET /api/meta/metrics
func (s *Server) handleMetricsPageMeta(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, seo.ForMetricsPage(s.site, s.store.Summary(), s.store.KeyMetrics()))
}
