package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pantrydev/pantry-api/internal/api/shared"
	"github.com/pantrydev/pantry-api/internal/service"
	"github.com/pantrydev/pantry-api/internal/store"
)

// ItemHandler handles shopping list item endpoints.
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With("component", "item_handler"),
	}
}

// itemID parses the {id} path parameter. A malformed id can never name a
// stored item, so lookups treat it the same as an unknown id.
func itemID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// List handles GET /shopping-list-item.
// It always returns 200 with an array, empty when nothing is stored.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.GetAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewItemListResponse(items))
}

// Get handles GET /shopping-list-item/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, msgItemNotFound)
		return
	}

	item, err := h.itemService.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewItemResponse(item))
}

// Create handles POST /shopping-list-item.
// On success it returns 201 with the stored item, including its assigned id.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}
	if _, err := time.Parse(time.RFC3339, req.CreatedAt); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Invalid createdAt: must be an RFC 3339 timestamp", err)
		return
	}

	item, err := h.itemService.Create(r.Context(), store.CreateItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		UserID:      req.User,
		CreatedAt:   req.CreatedAt,
		IsPurchased: *req.IsPurchased,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("item created",
		"item_id", item.ID,
		"trace_id", shared.GetTraceID(r.Context()))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewItemResponse(item))
}

// Update handles PUT /shopping-list-item/{id}.
// Fields absent from the body keep their stored values; the response is the
// item as re-read after the merge.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, msgItemNotFound)
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Confirm the item exists before touching it; updating an unknown id
	// is reported the same as reading one.
	if _, err := h.itemService.GetByID(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	item, err := h.itemService.Update(r.Context(), id, store.ItemPatch{
		Name:        req.Name,
		Quantity:    req.Quantity,
		UserID:      req.User,
		IsPurchased: req.IsPurchased,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewItemResponse(item))
}

// Delete handles DELETE /shopping-list-item/{id}.
// Deletion is idempotent: unknown and malformed ids still return 200.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
