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

func (h *Handler) addLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addLot").Msg("invalid JSON was passed")
	}

	lot, err := h.services.LotService.CreateLot(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addLot").Msg("error creating lot")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", lot.ID).Str("number", lot.Number).Msg("lot created")
	utils.WriteJSON(w, models.MessageResponse{Message: msgLotAdded}, http.StatusCreated)
}

func (h *Handler) listLots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	lots, err := h.services.LotService.GetLots(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLots").Msg("error listing lots")
		writeError(w, err)
		return
	}

	response := make([]models.LotResponse, 0, len(lots))
	for _, lot := range lots {
		response = append(response, models.LotResponse{
			ID:         lot.ID,
			Number:     lot.Number,
			Quantity:   lot.Quantity,
			ExpiryDate: lot.ExpiryDate,
			ItemID:     lot.ItemID,
		})
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := lotIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrLotNotFound)
		return
	}

	lot, err := h.services.LotService.GetLotByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLot").Int64("id", id).Msg("error getting lot")
		writeError(w, err)
		return
	}

	// The detail shape omits the lot number; see models.LotDetailResponse.
	utils.WriteJSON(w, models.LotDetailResponse{
		ID:         lot.ID,
		Quantity:   lot.Quantity,
		ExpiryDate: lot.ExpiryDate,
		ItemID:     lot.ItemID,
	}, http.StatusOK)
}

func (h *Handler) editLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := lotIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrLotNotFound)
		return
	}

	var req models.LotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.editLot").Msg("invalid JSON was passed")
	}

	if err := h.services.LotService.UpdateLot(ctx, id, req); err != nil {
		log.Err(err).Str("func", "*Handler.editLot").Int64("id", id).Msg("error updating lot")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgLotUpdated}, http.StatusOK)
}

func (h *Handler) deleteLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := lotIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrLotNotFound)
		return
	}

	if err := h.services.LotService.DeleteLot(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteLot").Int64("id", id).Msg("error deleting lot")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgLotDeleted}, http.StatusOK)
}

// lotIDFromURL parses the {id} URL parameter. A non-numeric id is
// indistinguishable from a missing lot for the caller.
func lotIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
