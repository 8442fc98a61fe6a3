package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/turtacn/gpcr-studio/internal/application/prediction"
	"github.com/turtacn/gpcr-studio/internal/export"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/pkg/errors"
)

// PredictionHandler serves the submission pipeline: scoring submissions and
// producing the two export artifacts.  It is the HTTP face of the shell's
// "Predict Activity" button and its two download buttons.
type PredictionHandler struct {
	svc              prediction.Service
	defaultThreshold float64
	maxBodySize      int64
	logger           logging.Logger
}

// NewPredictionHandler constructs the handler.
func NewPredictionHandler(svc prediction.Service, defaultThreshold float64, maxBodySize int64, logger logging.Logger) *PredictionHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &PredictionHandler{
		svc:              svc,
		defaultThreshold: defaultThreshold,
		maxBodySize:      maxBodySize,
		logger:           logger.Named("http.predictions"),
	}
}

// submitRequest is the JSON request body alternative to multipart form input.
type submitRequest struct {
	SMILESText string   `json:"smiles_text"`
	Threshold  *float64 `json:"threshold"`
}

// parseSubmitInput extracts a SubmitInput from either a multipart form
// (fields "smiles_text", "file", "threshold") or a JSON body.  The uploaded
// file, when present, is read fully into memory; size limits are enforced by
// http.MaxBytesReader before parsing begins.
func (h *PredictionHandler) parseSubmitInput(r *http.Request) (*prediction.SubmitInput, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxBodySize)

	input := &prediction.SubmitInput{Threshold: h.defaultThreshold}

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(h.maxBodySize); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidParam, "failed to parse multipart form")
		}
		input.Text = r.FormValue("smiles_text")
		if raw := r.FormValue("threshold"); raw != "" {
			th, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.New(errors.CodeThreshold, "threshold must be a number").WithCause(err)
			}
			input.Threshold = th
		}
		if file, _, err := r.FormFile("file"); err == nil {
			defer file.Close()
			blob, err := io.ReadAll(file)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeUploadParse, "failed to read uploaded CSV")
			}
			input.CSV = blob
		}

	default:
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidParam, "failed to decode request body")
		}
		input.Text = req.SMILESText
		if req.Threshold != nil {
			input.Threshold = *req.Threshold
		}
	}

	return input, nil
}

// Submit handles POST /api/v1/predictions.
func (h *PredictionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseSubmitInput(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	table, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		h.logger.Warn("submission rejected", logging.Err(err))
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// ExportCSV handles POST /api/v1/predictions/export/csv.  The pipeline runs
// fresh for the supplied input — result tables are request-scoped and never
// persisted, so exports cannot reference an earlier submission.
func (h *PredictionHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseSubmitInput(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	table, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		writeAppError(w, err)
		return
	}
	blob, err := h.svc.ExportCSV(table)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", export.CSVFilename, blob)
}

// ExportArchive handles POST /api/v1/predictions/export/archive.
func (h *PredictionHandler) ExportArchive(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseSubmitInput(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	table, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		writeAppError(w, err)
		return
	}
	blob, err := h.svc.ExportArchive(table)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeAttachment(w, "application/zip", export.ArchiveFilename, blob)
}
