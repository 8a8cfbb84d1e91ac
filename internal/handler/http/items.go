package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/store"
	"github.com/MKhiriev/stock-keeper/internal/utils"
	"github.com/MKhiriev/stock-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// Decode errors are not fatal here: missing fields and unparseable
	// fields both surface as the same validation error from the service.
	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addItem").Msg("invalid JSON was passed")
	}

	item, err := h.services.ItemService.CreateItem(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addItem").Msg("error creating item")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", item.ID).Str("name", item.Name).Msg("item created")
	utils.WriteJSON(w, models.MessageResponse{Message: msgItemAdded}, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nameFilter := r.URL.Query().Get("name")

	items, err := h.services.ItemService.GetItems(ctx, nameFilter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing items")
		writeError(w, err)
		return
	}

	response := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, models.ItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		})
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrItemNotFound)
		return
	}

	item, err := h.services.ItemService.GetItemByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Int64("id", id).Msg("error getting item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
	}, http.StatusOK)
}

func (h *Handler) editItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrItemNotFound)
		return
	}

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.editItem").Msg("invalid JSON was passed")
	}

	if err := h.services.ItemService.UpdateItem(ctx, id, req); err != nil {
		log.Err(err).Str("func", "*Handler.editItem").Int64("id", id).Msg("error updating item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgItemUpdated}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrItemNotFound)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteItem").Int64("id", id).Msg("error deleting item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgItemDeleted}, http.StatusOK)
}

// itemIDFromURL parses the {id} URL parameter. A non-numeric id is
// indistinguishable from a missing item for the caller.
func itemIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
