package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/routelens/routelens/log"
	"github.com/routelens/routelens/report"
	"github.com/routelens/routelens/upstreams"
)

// Server is the HTTP server for the upstreams API
type Server struct {
	analyzer *upstreams.Upstreams
	reports  *reportCache
}

// NewServer creates a new HTTP server with an initialized analyzer. A
// non-empty redisURL enables the rendered-report cache; a failed Redis
// connection degrades to running without it.
func NewServer(redisURL string) *Server {
	return &Server{
		analyzer: upstreams.New(),
		reports:  newReportCache(redisURL),
	}
}

// reportResponse is the JSON API shape: the structured report plus its
// rendered text block.
type reportResponse struct {
	*report.Report
	Text string `json:"text"`
}

// UpstreamsHandler handles GET /upstreams requests
func (s *Server) UpstreamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	target := query.Get("target")
	if target == "" {
		writeError(w, &upstreams.AnalysisError{
			Code:    upstreams.ErrCodeInvalidInput,
			Message: "missing required parameter: target",
		})
		return
	}
	timeoutMs := getIntParam(query, "timeout", 0)
	asText := getStringParam(query, "format", "json") == "text"

	cacheKey := fmt.Sprintf("routelens:report:%s:%t", target, asText)
	if body, ok := s.reports.get(r.Context(), cacheKey); ok {
		writeBody(w, asText, body)
		return
	}

	params := upstreams.Params{
		Target:  target,
		Timeout: time.Duration(timeoutMs) * time.Millisecond,
	}
	rep, err := s.analyzer.Analyze(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	var body []byte
	if asText {
		body = []byte(rep.Render())
	} else {
		body, err = json.Marshal(reportResponse{Report: rep, Text: rep.Render()})
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
			return
		}
	}

	s.reports.set(r.Context(), cacheKey, body)
	writeBody(w, asText, body)
}

func writeBody(w http.ResponseWriter, asText bool, body []byte) {
	if asText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	classified := upstreams.ClassifyError(err)

	status := http.StatusInternalServerError
	switch classified.Code {
	case upstreams.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case upstreams.ErrCodeNoData:
		status = http.StatusNotFound
	case upstreams.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(upstreams.ErrorResponse{
		Code:    classified.Code,
		Message: classified.Message,
	}); err != nil {
		log.Errorf("failed to encode error response: %s", err)
	}
}

// Start starts the HTTP server on the specified address
func (s *Server) Start(addr string) error {
	http.HandleFunc("/upstreams", s.UpstreamsHandler)
	log.Debugf("Starting HTTP server on %s", addr)
	return http.ListenAndServe(addr, nil)
}
