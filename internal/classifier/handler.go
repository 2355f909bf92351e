package classifier

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/linnaea/pathclass/internal/pathways"
	"github.com/linnaea/pathclass/pkg/formatting"
	"github.com/linnaea/pathclass/pkg/handlers"
	"github.com/linnaea/pathclass/pkg/progress"
	"github.com/linnaea/pathclass/pkg/routes"
)

// Handler provides HTTP endpoints for the classification pipeline.
type Handler struct {
	sys          System
	logger       *slog.Logger
	maxBodyBytes int64
}

// ClassifyRequest is the request body shared by the synchronous and
// streaming endpoints.
type ClassifyRequest struct {
	Pathways   []pathways.Record `json:"pathways"`
	ResetCache bool              `json:"resetCache"`
}

// ClassifyResponse is the synchronous endpoint's response body and the
// payload of the streaming endpoint's terminal event.
type ClassifyResponse struct {
	Preview        []pathways.Preview `json:"preview"`
	TSV            string             `json:"tsv"`
	ProcessingTime string             `json:"processingTime"`
	TotalPathways  int                `json:"totalPathways"`
}

// ParseResponse is the TSV parse endpoint's response body.
type ParseResponse struct {
	Pathways []pathways.Record `json:"pathways"`
	Total    int               `json:"total"`
}

// NewHandler creates a Handler with the given system, logger, and request
// body size cap.
func NewHandler(sys System, logger *slog.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger.With("handler", "classifier"),
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/pathways",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/classify", Handler: h.Classify},
			{Method: "POST", Pattern: "/classify/stream", Handler: h.ClassifyStream},
			{Method: "POST", Pattern: "/parse", Handler: h.Parse},
		},
	}
}

// Classify runs the pipeline and returns the complete result in one
// response. Progress events are buffered and dropped; callers that want them
// use the streaming endpoint.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	sink := &progress.Buffer{}
	result, err := h.sys.Run(r.Context(), req.Pathways, req.ResetCache, sink)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.logger.Debug("buffered progress events", "count", len(sink.Events()))
	handlers.RespondJSON(w, http.StatusOK, response(result))
}

// ClassifyStream runs the pipeline and pushes progress events as
// server-sent events, ending with a terminal complete or error event.
func (h *Handler) ClassifyStream(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError,
			errors.New("streaming unsupported by connection"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Batch workers emit concurrently; pushes are serialized here.
	var mu sync.Mutex
	push := func(e streamEvent) {
		mu.Lock()
		defer mu.Unlock()
		raw, err := json.Marshal(e)
		if err != nil {
			h.logger.Error("event marshal failed", "error", err)
			return
		}
		io.WriteString(w, "data: ")
		w.Write(raw)
		io.WriteString(w, "\n\n")
		flusher.Flush()
	}

	sink := progress.Func(func(e progress.Event) {
		push(streamEvent{
			Type:       "progress",
			Message:    e.Message,
			Processed:  e.Processed,
			Total:      e.Total,
			Percentage: e.Percentage,
		})
	})

	result, err := h.sys.Run(r.Context(), req.Pathways, req.ResetCache, sink)
	if err != nil {
		h.logger.Error("streaming run failed", "error", err)
		push(streamEvent{Type: "error", Error: err.Error()})
		return
	}

	resp := response(result)
	push(streamEvent{
		Type:           "complete",
		Preview:        resp.Preview,
		TSV:            resp.TSV,
		ProcessingTime: resp.ProcessingTime,
		TotalPathways:  resp.TotalPathways,
	})
}

// Parse converts a raw TSV request body into pathway records.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, bodyStatus(err), err)
		return
	}

	records, err := pathways.ParseTSV(string(raw))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ParseResponse{
		Pathways: records,
		Total:    len(records),
	})
}

type streamEvent struct {
	Type           string             `json:"type"`
	Message        string             `json:"message,omitempty"`
	Processed      int                `json:"processed,omitempty"`
	Total          int                `json:"total,omitempty"`
	Percentage     int                `json:"percentage,omitempty"`
	Preview        []pathways.Preview `json:"preview,omitempty"`
	TSV            string             `json:"tsv,omitempty"`
	ProcessingTime string             `json:"processingTime,omitempty"`
	TotalPathways  int                `json:"totalPathways,omitempty"`
	Error          string             `json:"error,omitempty"`
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (ClassifyRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, bodyStatus(err), err)
		return ClassifyRequest{}, false
	}
	if len(req.Pathways) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, pathways.ErrEmptyInput)
		return ClassifyRequest{}, false
	}
	return req, true
}

func response(result *Result) ClassifyResponse {
	preview := make([]pathways.Preview, 0, len(result.Records))
	for _, rec := range result.Records {
		preview = append(preview, pathways.PreviewOf(rec))
	}

	return ClassifyResponse{
		Preview:        preview,
		TSV:            result.TSV,
		ProcessingTime: formatting.FormatDuration(result.Elapsed),
		TotalPathways:  result.Total,
	}
}

func bodyStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
