/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Calendars:
    CalendarDTO, HierarchyDTO

  Holidays:
    HolidayDTO, HolidaysResponse, CheckResponse

  Admin:
    CacheStatusDTO, SetCacheRequest, DefinitionDTO, SaveDefinitionRequest

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"sort"

	"github.com/warp/holiday-engine/holiday"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalendarDTO represents a supported calendar in API responses.
type CalendarDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// HierarchyDTO represents a calendar's region tree.
type HierarchyDTO struct {
	ID       string         `json:"id"`
	Key      string         `json:"key"`
	Children []HierarchyDTO `json:"children,omitempty"`
}

// HolidayDTO represents a single holiday occurrence.
type HolidayDTO struct {
	Date string `json:"date"`
	Key  string `json:"key"`
	Type string `json:"type"`
}

// HolidaysResponse wraps a holiday query result.
type HolidaysResponse struct {
	Calendar string       `json:"calendar"`
	Path     []string     `json:"path,omitempty"`
	Holidays []HolidayDTO `json:"holidays"`
}

// CheckResponse answers an is-holiday query.
type CheckResponse struct {
	Calendar string `json:"calendar"`
	Date     string `json:"date"`
	Holiday  bool   `json:"holiday"`
	Weekend  bool   `json:"weekend"`
}

// CacheStatusDTO reports the manager cache state.
type CacheStatusDTO struct {
	Enabled bool `json:"enabled"`
}

// SetCacheRequest toggles the manager cache.
type SetCacheRequest struct {
	Enabled bool `json:"enabled"`
}

// DefinitionDTO represents a stored calendar definition.
type DefinitionDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Definition  string `json:"definition"`
	Version     int    `json:"version"`
	UpdatedAt   string `json:"updated_at"`
}

// SaveDefinitionRequest creates or replaces a stored definition.
type SaveDefinitionRequest struct {
	Description string `json:"description"`
	Definition  string `json:"definition"`
}

// ErrorResponse is the standard error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toHolidayDTOs(set holiday.Set) []HolidayDTO {
	sorted := set.Sorted()
	dtos := make([]HolidayDTO, len(sorted))
	for i, h := range sorted {
		dtos[i] = HolidayDTO{
			Date: h.Date.String(),
			Key:  h.Key,
			Type: string(h.Type),
		}
	}
	return dtos
}

func toHierarchyDTO(h *holiday.Hierarchy) HierarchyDTO {
	dto := HierarchyDTO{ID: h.ID, Key: h.Key}
	ids := make([]string, 0, len(h.Children))
	for id := range h.Children {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		dto.Children = append(dto.Children, toHierarchyDTO(h.Children[id]))
	}
	return dto
}
