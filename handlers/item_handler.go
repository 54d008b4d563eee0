package handlers

import (
	"net/http"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/services"
)

type ItemHandler struct {
	itemService services.ItemService
}

func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ItemInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.itemService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"item": item}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.itemService.GetByID(r.Context(), itemID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"item": item}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("all") != "true"

	items, err := h.itemService.List(r.Context(), onlyActive)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"items": items}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ItemInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.itemService.Update(r.Context(), itemID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"item": item}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetResults replaces the First/Second/Third placements of an item. The
// payload accepts raw ids, id strings, or expanded objects for each slot.
func (h *ItemHandler) SetResults(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var results models.ItemResults
	if err := readJSON(w, r, &results); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.itemService.SetResults(r.Context(), itemID, results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"item": item}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetGrades replaces the grade entries of an item.
func (h *ItemHandler) SetGrades(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Grades []models.GradeEntry `json:"grade"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.itemService.SetGrades(r.Context(), itemID, input.Grades)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"item": item}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.itemService.Delete(r.Context(), itemID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
