package http

import (
	"encoding/json"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/google/uuid"
	"github.com/niraulas/egovscan"
)

// scrapeRequest is the POST /scrape request body.
type scrapeRequest struct {
	URLs []string `json:"urls"`
}

// serviceJSON is one harvested service on the wire. Field names follow the
// service catalogue's established format.
type serviceJSON struct {
	ServiceName   string `json:"service_name"`
	LinkOfService string `json:"link_of_service"`
}

// successJSON is the wire form of a URL whose fetch succeeded.
type successJSON struct {
	URL      string        `json:"url"`
	Services []serviceJSON `json:"services"`
}

// failureJSON is the wire form of a URL whose fetch failed.
type failureJSON struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// errorJSON is the body of a request-level validation failure. It is
// distinct from any per-URL error inside a successful batch response.
type errorJSON struct {
	Error string `json:"error"`
}

// handleScrape validates the request body, runs the batch, and writes one
// result element per input URL in input order.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	requestID := uuid.NewString()
	logger := s.Logger.With("request_id", requestID)

	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("scrape request rejected", "reason", "malformed body")
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "request body must be valid JSON"})
		return
	}
	if len(req.URLs) == 0 {
		logger.Warn("scrape request rejected", "reason", "empty url list")
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "urls must be a non-empty list"})
		return
	}
	for _, raw := range req.URLs {
		if !isValidURL(raw) {
			logger.Warn("scrape request rejected", "reason", "invalid url", "url", raw)
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: "not a valid URL: " + raw})
			return
		}
	}

	results, err := s.Batch.ExtractBatch(r.Context(), req.URLs)
	if err != nil {
		status := http.StatusInternalServerError
		if egovscan.ErrorCode(err) == egovscan.EINVALID {
			status = http.StatusBadRequest
		}
		logger.Error("batch extraction failed", "err", err)
		writeJSON(w, status, errorJSON{Error: egovscan.ErrorMessage(err)})
		return
	}

	body := make([]any, 0, len(results))
	for _, result := range results {
		if result.Failed() {
			body = append(body, failureJSON{URL: result.URL, Error: string(result.Kind)})
			continue
		}
		services := make([]serviceJSON, 0, len(result.Links))
		for _, link := range result.Links {
			services = append(services, serviceJSON{
				ServiceName:   link.Name,
				LinkOfService: link.URL,
			})
		}
		body = append(body, successJSON{URL: result.URL, Services: services})
	}

	logger.Info("scrape request",
		"urls", len(req.URLs),
		"duration", time.Since(begin),
	)
	writeJSON(w, http.StatusOK, body)
}

// isValidURL reports whether raw is an absolute http(s) URL with a host.
func isValidURL(raw string) bool {
	u, err := neturl.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
