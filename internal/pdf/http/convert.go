package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/service"
	"github.com/systemifyautomation/html-to-pdf/pkg/httpx"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

// ConvertHandler handles POST /convert.
type ConvertHandler struct {
	ConvertService *service.ConvertService
}

// Handle converts an HTML document to PDF.
//
//	@Summary		Convert HTML to PDF
//	@Description	Renders the submitted HTML (plus optional CSS) with headless Chrome and returns the PDF as an attachment.
//	@Tags			Convert
//	@Accept			json
//	@Produce		application/pdf
//	@Security		APIKeyAuth
//	@Param			X-API-Key	header		string					true	"API key"
//	@Param			request		body		pdfsdk.ConvertRequest	true	"Conversion request"
//	@Success		200			{file}		binary					"PDF document"
//	@Failure		400			{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		413			{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		429			{object}	pdfsdk.ErrorResponse	"error, error_description, retry_after_seconds"
//	@Failure		500			{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Router			/convert [post].
func (h *ConvertHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxHTMLBytes)

	var req pdfsdk.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteJSON(w, http.StatusRequestEntityTooLarge, pdfsdk.ErrorResponse{
				Error:            "payload_too_large",
				ErrorDescription: fmt.Sprintf("Request body exceeds the %d MiB limit.", domain.MaxHTMLBytes>>20),
			})
			return
		}
		httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return
	}

	result, err := h.ConvertService.Convert(ctx, service.ConvertRequest{
		HTML:           req.HTML,
		CSS:            req.CSS,
		Filename:       req.Filename,
		PageSize:       req.PageSize,
		Width:          req.Width,
		Height:         req.Height,
		Margin:         req.Margin,
		ViewportWidth:  req.ViewportWidth,
		ViewportHeight: req.ViewportHeight,
		BaseURL:        req.BaseURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHTMLRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "HTML content is required",
			})
		case errors.Is(err, service.ErrRenderFailed):
			httpx.WriteJSON(w, http.StatusInternalServerError, pdfsdk.ErrorResponse{
				Error:            "render_failed",
				ErrorDescription: "PDF generation failed",
			})
		default:
			// Option validation errors carry a safe, short cause.
			httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: err.Error(),
			})
		}
		return
	}

	log.Info("serving pdf", "filename", result.Filename, "bytes", len(result.PDF))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.PDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}
