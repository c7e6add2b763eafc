package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/fixture-planner/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

type duplicateTournamentRequest struct {
	Name string `json:"name"`
}

// CreateHandler
// @Summary Create a tournament
// @Tags tournaments
// @Description Creates a tournament with dates, a daily playing window and a format. The current user becomes the organizer.
// @Accept json
// @Produce json
// @Param body body services.TournamentInput true "Tournament settings"
// @Success 201 {object} map[string]interface{} "Created tournament"
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 409 {object} map[string]string "A tournament with this name already exists"
// @Failure 422 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /tournaments [post]
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to create tournament")
		return
	}

	var input services.TournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), actor, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler
// @Summary Get a tournament
// @Tags tournaments
// @Description The tournament with its teams, fields and calendar.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Tournament"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{tournamentID} [get]
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param organizer_id query int false "Filter by organizer"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{} "List tournaments"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /tournaments [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	var filter services.ListTournamentsInput
	query := r.URL.Query()

	if organizerIDStr := query.Get("organizer_id"); organizerIDStr != "" {
		if id, err := strconv.Atoi(organizerIDStr); err == nil && id > 0 {
			filter.OrganizerID = &id
		} else {
			badRequestResponse(w, r, errors.New("invalid organizer_id query parameter"))
			return
		}
	}

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter.Limit, filter.Offset = limit, offset

	tournaments, err := h.tournamentService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MyTournamentsHandler
// @Summary My tournaments
// @Tags tournaments
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{} "Tournaments of the current organizer"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /tournaments/mine [get]
func (h *TournamentHandler) MyTournamentsHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournaments, err := h.tournamentService.List(r.Context(), services.ListTournamentsInput{
		OrganizerID: &actor.UserID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateHandler
// @Summary Update a tournament
// @Tags tournaments
// @Description Replaces the tournament settings. A generated fixture is discarded.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.TournamentInput true "Tournament settings"
// @Success 200 {object} map[string]interface{} "Updated tournament"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 422 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /tournaments/{tournamentID} [put]
func (h *TournamentHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	var input services.TournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Update(r.Context(), id, actor, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler
// @Summary Delete a tournament
// @Tags tournaments
// @Param tournamentID path int true "Tournament ID"
// @Success 204 "Tournament deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Security BearerAuth
// @Router /tournaments/{tournamentID} [delete]
func (h *TournamentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	if err := h.tournamentService.Delete(r.Context(), id, actor); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DuplicateHandler
// @Summary Duplicate a tournament
// @Tags tournaments
// @Description Copies settings, teams, fields and the calendar. The fixture is not copied.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Source tournament ID"
// @Param body body duplicateTournamentRequest true "Name of the copy"
// @Success 201 {object} map[string]interface{} "New tournament"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "A tournament with this name already exists"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/duplicate [post]
func (h *TournamentHandler) DuplicateHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	var input duplicateTournamentRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("name is required"))
		return
	}

	tournament, err := h.tournamentService.Duplicate(r.Context(), id, actor, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetTeamsHandler
// @Summary Replace the team list
// @Tags tournaments
// @Description Replaces the tournament teams. List order sets the seeding.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body []services.TeamInput true "Teams"
// @Success 200 {object} map[string]interface{} "Saved teams"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 409 {object} map[string]string "Duplicate team name"
// @Failure 422 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/teams [put]
func (h *TournamentHandler) SetTeamsHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	var input []services.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.tournamentService.SetTeams(r.Context(), id, actor, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetFieldsHandler
// @Summary Replace the field list
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body []services.FieldInput true "Fields and their availability per day"
// @Success 200 {object} map[string]interface{} "Saved fields"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 409 {object} map[string]string "Duplicate field name"
// @Failure 422 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fields [put]
func (h *TournamentHandler) SetFieldsHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	var input []services.FieldInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fields, err := h.tournamentService.SetFields(r.Context(), id, actor, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fields": fields}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetCalendarHandler
// @Summary Set the calendar
// @Tags tournaments
// @Description Tournament days (full, half, off) and breaks.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.CalendarInput true "Days and breaks"
// @Success 200 {object} map[string]interface{} "Saved calendar"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 422 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/calendar [put]
func (h *TournamentHandler) SetCalendarHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	var input services.CalendarInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	calendar, err := h.tournamentService.SetCalendar(r.Context(), id, actor, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"calendar": calendar}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ownerRequest extracts the tournament ID and the current user. On failure the response has already been written.
func ownerRequest(w http.ResponseWriter, r *http.Request) (int, services.Actor, bool) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, services.Actor{}, false
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return 0, services.Actor{}, false
	}
	return id, actor, true
}
