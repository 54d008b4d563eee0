package handlers

import (
	"net/http"

	"github.com/artsfest/scoreboard/services"
)

// ScoreboardHandler serves the computed read-only views: the live display
// feed, the combined mobile payload, and per-participant point breakdowns.
type ScoreboardHandler struct {
	scoreboardService services.ScoreboardService
}

func NewScoreboardHandler(s services.ScoreboardService) *ScoreboardHandler {
	return &ScoreboardHandler{scoreboardService: s}
}

// Live returns everything the rotating live display needs.
func (h *ScoreboardHandler) Live(w http.ResponseWriter, r *http.Request) {
	data, err := h.scoreboardService.Live(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MobileData returns the combined scoreboard + pivot tables payload.
func (h *ScoreboardHandler) MobileData(w http.ResponseWriter, r *http.Request) {
	data, err := h.scoreboardService.MobileData(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ParticipantPoints returns one participant's full breakdown.
func (h *ScoreboardHandler) ParticipantPoints(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	data, err := h.scoreboardService.ParticipantPoints(r.Context(), participantID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
