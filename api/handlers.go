/*
handlers.go - HTTP API handlers for the holiday engine

PURPOSE:
  Exposes the holiday engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the engine core.

ENDPOINTS:
  Calendars:
    GET    /api/calendars                    List supported calendars
    GET    /api/calendars/{code}/hierarchy   Region tree of a calendar
    GET    /api/calendars/{code}/holidays    Holidays for a year or range
    GET    /api/calendars/{code}/check       Is a date a holiday?

  Admin:
    GET    /api/admin/cache                  Manager cache status
    PUT    /api/admin/cache                  Enable/disable manager cache
    DELETE /api/admin/cache                  Clear cached managers
    GET    /api/admin/definitions            List stored definitions
    GET    /api/admin/definitions/{code}     Fetch a stored definition
    PUT    /api/admin/definitions/{code}     Save a definition

QUERY PARAMETERS:
  holidays:  year=2010            single year (default: current year)
             from=...&to=...      inclusive ISO date range, overrides year
             path=ny,nyc          hierarchy path, outermost first
  check:     date=2010-07-04      required
             path=ny,nyc          optional hierarchy path

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown calendar or definition
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/holiday"
	"github.com/warp/holiday-engine/ruleset"
	"github.com/warp/holiday-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Registry *holiday.Registry

	// Definitions is optional; definition endpoints return 503 when nil.
	Definitions *sqlite.Store
}

// NewHandler creates a new handler backed by the given registry.
func NewHandler(registry *holiday.Registry, definitions *sqlite.Store) *Handler {
	return &Handler{Registry: registry, Definitions: definitions}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListCalendars returns the supported calendar codes.
// GET /api/calendars
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	codes := holiday.Codes()
	dtos := make([]CalendarDTO, len(codes))
	for i, code := range codes {
		dtos[i] = CalendarDTO{Code: code, Name: holiday.CalendarName(code)}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetHierarchy returns a calendar's region tree.
// GET /api/calendars/{code}/hierarchy
func (h *Handler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toHierarchyDTO(mgr.Hierarchy()))
}

// GetHolidays returns holidays for a year or an inclusive date range.
// GET /api/calendars/{code}/holidays?year=2010&path=ny,nyc
// GET /api/calendars/{code}/holidays?from=2010-12-20&to=2011-01-10
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(w, r)
	if !ok {
		return
	}
	path := parsePath(r.URL.Query().Get("path"))

	var (
		set holiday.Set
		err error
	)
	if from := r.URL.Query().Get("from"); from != "" {
		iv, perr := parseInterval(from, r.URL.Query().Get("to"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid date range", perr)
			return
		}
		set, err = mgr.HolidaysBetween(iv, path...)
	} else {
		year, perr := parseYear(r.URL.Query().Get("year"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", perr)
			return
		}
		set, err = mgr.Holidays(year, path...)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to resolve holidays", err)
		return
	}

	writeJSON(w, http.StatusOK, HolidaysResponse{
		Calendar: mgr.CalendarID(),
		Path:     path,
		Holidays: toHolidayDTOs(set),
	})
}

// CheckHoliday answers whether a date is a holiday.
// GET /api/calendars/{code}/check?date=2010-07-04&path=ny
func (h *Handler) CheckHoliday(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(w, r)
	if !ok {
		return
	}

	date, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing date", err)
		return
	}
	path := parsePath(r.URL.Query().Get("path"))

	isHoliday, err := mgr.IsHoliday(date, path...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to resolve holidays", err)
		return
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		Calendar: mgr.CalendarID(),
		Date:     date.String(),
		Holiday:  isHoliday,
		Weekend:  date.IsWeekend(),
	})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// GetCacheStatus reports whether manager caching is enabled.
// GET /api/admin/cache
func (h *Handler) GetCacheStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CacheStatusDTO{Enabled: h.Registry.CachingEnabled()})
}

// SetCacheStatus enables or disables manager caching.
// PUT /api/admin/cache
func (h *Handler) SetCacheStatus(w http.ResponseWriter, r *http.Request) {
	var req SetCacheRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.Registry.SetCachingEnabled(req.Enabled)
	writeJSON(w, http.StatusOK, CacheStatusDTO{Enabled: h.Registry.CachingEnabled()})
}

// ClearCache drops all cached manager instances.
// DELETE /api/admin/cache
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.Registry.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

// ListDefinitions returns the codes stored in the definition store.
// GET /api/admin/definitions
func (h *Handler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	if h.Definitions == nil {
		writeError(w, http.StatusServiceUnavailable, "No definition store configured", nil)
		return
	}
	codes, err := h.Definitions.ListCodes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list definitions", err)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	writeJSON(w, http.StatusOK, codes)
}

// GetDefinition returns one stored calendar definition.
// GET /api/admin/definitions/{code}
func (h *Handler) GetDefinition(w http.ResponseWriter, r *http.Request) {
	if h.Definitions == nil {
		writeError(w, http.StatusServiceUnavailable, "No definition store configured", nil)
		return
	}
	code := holiday.NormalizeCalendarID(chi.URLParam(r, "code"))
	def, err := h.Definitions.Definition(r.Context(), code)
	if errors.Is(err, sqlite.ErrDefinitionNotFound) {
		writeError(w, http.StatusNotFound, "Definition not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load definition", err)
		return
	}
	writeJSON(w, http.StatusOK, DefinitionDTO{
		Code:        def.Code,
		Description: def.Description,
		Definition:  def.JSON,
		Version:     def.Version,
		UpdatedAt:   def.UpdatedAt.Format(time.RFC3339),
	})
}

// SaveDefinition validates and stores a calendar definition, then clears
// the manager cache so the next lookup picks up the new rules.
// PUT /api/admin/definitions/{code}
func (h *Handler) SaveDefinition(w http.ResponseWriter, r *http.Request) {
	if h.Definitions == nil {
		writeError(w, http.StatusServiceUnavailable, "No definition store configured", nil)
		return
	}
	code := holiday.NormalizeCalendarID(chi.URLParam(r, "code"))

	var req SaveDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	def, err := ruleset.Parse([]byte(req.Definition))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid calendar definition", err)
		return
	}
	if def.Code != code {
		writeError(w, http.StatusBadRequest, "Definition code mismatch",
			fmt.Errorf("definition declares code %q, stored under %q", def.Code, code))
		return
	}

	if err := h.Definitions.SaveDefinition(r.Context(), code, req.Description, req.Definition); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save definition", err)
		return
	}
	h.Registry.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// manager resolves the calendar manager for the route's code, writing
// the error response itself on failure.
func (h *Handler) manager(w http.ResponseWriter, r *http.Request) (*holiday.Manager, bool) {
	code := chi.URLParam(r, "code")
	mgr, err := h.Registry.Manager(code, nil)
	if err != nil {
		var cfgErr *holiday.ConfigurationError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusNotFound, "Unknown calendar", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to build calendar manager", err)
		}
		return nil, false
	}
	return mgr, true
}

func parsePath(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	path := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			path = append(path, p)
		}
	}
	return path
}

func parseYear(raw string) (int, error) {
	if raw == "" {
		return time.Now().Year(), nil
	}
	return strconv.Atoi(raw)
}

func parseInterval(from, to string) (calendar.Interval, error) {
	start, err := calendar.ParseDate(from)
	if err != nil {
		return calendar.Interval{}, err
	}
	end, err := calendar.ParseDate(to)
	if err != nil {
		return calendar.Interval{}, err
	}
	iv := calendar.NewInterval(start, end)
	if !iv.IsValid() {
		return calendar.Interval{}, errors.New("range end before start")
	}
	return iv, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
