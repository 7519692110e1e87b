package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/service"
	"github.com/systemifyautomation/html-to-pdf/pkg/httpx"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

// KeysHandler handles all admin key management endpoints.
type KeysHandler struct {
	KeyService *service.KeyService
}

// HandleList handles GET /admin/keys
//
//	@Summary		List API keys
//	@Description	Returns every stored key with its secret masked, plus the shared rate limit configuration.
//	@Tags			Admin
//	@Produce		json
//	@Security		SuperUserAuth
//	@Param			X-Super-User-Key	header		string					true	"Super-user key"
//	@Success		200					{object}	pdfsdk.ListKeysResponse	"Masked key list"
//	@Failure		401					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		403					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Router			/admin/keys [get].
func (h *KeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	keys, rl := h.KeyService.List(r.Context())

	entries := make([]pdfsdk.KeyEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, pdfsdk.KeyEntry{
			Key:     k.KeyPreview,
			Name:    k.Name,
			Created: k.Created,
			Active:  k.Active,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, pdfsdk.ListKeysResponse{
		Total: len(entries),
		Keys:  entries,
		RateLimit: pdfsdk.RateLimitInfo{
			RequestsPerMinute: rl.RequestsPerMinute,
			RequestsPerHour:   rl.RequestsPerHour,
		},
	})
}

// HandleCreate handles POST /admin/keys
//
//	@Summary		Create API key
//	@Description	Generates a new API key. The full secret appears in this response only and cannot be retrieved again.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		SuperUserAuth
//	@Param			X-Super-User-Key	header		string					true	"Super-user key"
//	@Param			request				body		pdfsdk.CreateKeyRequest	true	"Key creation request"
//	@Success		201					{object}	pdfsdk.CreateKeyResponse	"Full secret, shown once"
//	@Failure		400					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		401					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		403					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		500					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Router			/admin/keys [post].
func (h *KeysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pdfsdk.CreateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Key name is required",
		})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	key, err := h.KeyService.Create(ctx, strings.TrimSpace(req.Name), active)
	if err != nil {
		log.Error("failed to create api key", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, pdfsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to create API key",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pdfsdk.CreateKeyResponse{
		Key:     key.Key,
		Name:    key.Name,
		Created: key.Created,
		Active:  key.Active,
		Warning: "Store this key securely. The full value will not be shown again.",
	})
}

// HandleUpdate handles PATCH /admin/keys/{prefix}
//
//	@Summary		Update API key
//	@Description	Partially updates the key addressed by a secret prefix. Absent fields are left unchanged.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		SuperUserAuth
//	@Param			X-Super-User-Key	header		string					true	"Super-user key"
//	@Param			prefix				path		string					true	"Secret prefix"
//	@Param			request				body		pdfsdk.UpdateKeyRequest	true	"Fields to update"
//	@Success		200					{object}	pdfsdk.KeyResponse		"Updated key, masked"
//	@Failure		400					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		401					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		403					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		404					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		409					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Router			/admin/keys/{prefix} [patch].
func (h *KeysHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pdfsdk.UpdateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return
	}

	if req.Name == nil && req.Active == nil {
		httpx.WriteJSON(w, http.StatusBadRequest, pdfsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Provide at least one of: name, active",
		})
		return
	}

	updated, err := h.KeyService.Update(ctx, r.PathValue("prefix"), req.Name, req.Active)
	if err != nil {
		writeKeyErr(w, ctx, err, "update")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pdfsdk.KeyResponse{
		Message: "API key updated",
		Key: pdfsdk.KeyEntry{
			Key:     updated.KeyPreview,
			Name:    updated.Name,
			Created: updated.Created,
			Active:  updated.Active,
		},
	})
}

// HandleDelete handles DELETE /admin/keys/{prefix}
//
//	@Summary		Delete API key
//	@Description	Permanently removes the key addressed by a secret prefix. Repeating the call returns 404.
//	@Tags			Admin
//	@Produce		json
//	@Security		SuperUserAuth
//	@Param			X-Super-User-Key	header		string				true	"Super-user key"
//	@Param			prefix				path		string				true	"Secret prefix"
//	@Success		200					{object}	pdfsdk.KeyResponse	"Removed key, masked"
//	@Failure		401					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		403					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		404					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Failure		409					{object}	pdfsdk.ErrorResponse	"error, error_description"
//	@Router			/admin/keys/{prefix} [delete].
func (h *KeysHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed, err := h.KeyService.Delete(ctx, r.PathValue("prefix"))
	if err != nil {
		writeKeyErr(w, ctx, err, "delete")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pdfsdk.KeyResponse{
		Message: "API key deleted",
		Key: pdfsdk.KeyEntry{
			Key:     removed.KeyPreview,
			Name:    removed.Name,
			Created: removed.Created,
			Active:  removed.Active,
		},
	})
}

func writeKeyErr(w http.ResponseWriter, ctx context.Context, err error, op string) {
	log := slogx.FromContext(ctx)

	switch {
	case errors.Is(err, service.ErrKeyNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, pdfsdk.ErrorResponse{
			Error:            "key_not_found",
			ErrorDescription: "No API key matches the given prefix",
		})
	case errors.Is(err, service.ErrAmbiguousPrefix):
		httpx.WriteJSON(w, http.StatusConflict, pdfsdk.ErrorResponse{
			Error:            "ambiguous_prefix",
			ErrorDescription: "Prefix matches more than one key, use a longer prefix",
		})
	default:
		log.Error("key mutation failed", "op", op, "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, pdfsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to persist the key store",
		})
	}
}
