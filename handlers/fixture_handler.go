package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Dosada05/fixture-planner/export"
	"github.com/Dosada05/fixture-planner/services"
	"github.com/Dosada05/fixture-planner/utils"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
	exportService  services.ExportService
}

func NewFixtureHandler(fs services.FixtureService, es services.ExportService) *FixtureHandler {
	return &FixtureHandler{
		fixtureService: fs,
		exportService:  es,
	}
}

// GenerateHandler
// @Summary Generate the fixture
// @Tags fixture
// @Description Builds the matches for the tournament format and assigns them to slots. Any previous fixture is replaced.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} services.FixtureResult "Fixture and scheduler report"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 422 {object} map[string]string "The configuration cannot produce a fixture"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixture [post]
func (h *FixtureHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	result, err := h.fixtureService.Generate(r.Context(), id, actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MatchesHandler
// @Summary Fixture matches
// @Tags fixture
// @Description The stored fixture grouped by zone, day, field or team.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param view query string false "zone | day | field | team (default zone)"
// @Success 200 {object} services.FixtureView "Match groups"
// @Failure 400 {object} map[string]string "Unknown view"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 409 {object} map[string]string "Fixture not generated yet"
// @Router /tournaments/{tournamentID}/matches [get]
func (h *FixtureHandler) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	view, err := export.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.fixtureService.Matches(r.Context(), id, view)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CSVHandler
// @Summary Download the fixture as CSV
// @Tags fixture
// @Produce text/csv
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {file} file "CSV file"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 409 {object} map[string]string "Fixture not generated yet"
// @Router /tournaments/{tournamentID}/fixture.csv [get]
func (h *FixtureHandler) CSVHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// buffer so that a failure cannot cut off a response already started
	var buf bytes.Buffer
	tournament, err := h.fixtureService.WriteCSV(r.Context(), id, &buf)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	filename := utils.Slugify(tournament.Name) + ".csv"
	w.Header().Set("Content-Type", export.ContentTypeCSV)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportHandler
// @Summary Export the fixture to storage
// @Tags fixture
// @Description Uploads the CSV to R2 and returns a download link.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 201 {object} services.ExportResult "File link"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Fixture not generated yet"
// @Failure 503 {object} map[string]string "Storage is not configured"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/exports [post]
func (h *FixtureHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := ownerRequest(w, r)
	if !ok {
		return
	}

	result, err := h.exportService.Export(r.Context(), id, actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
