package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wordvault/internal/service"
)

// DictionaryHandler handles word lookup and mutation endpoints.
type DictionaryHandler struct {
	svc service.DictionaryService
}

// NewDictionaryHandler creates a new dictionary handler.
func NewDictionaryHandler(svc service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{svc: svc}
}

// AddWordRequest is a new dictionary entry.
type AddWordRequest struct {
	Word       string `json:"word" form:"word" validate:"required,max=30"`
	Definition string `json:"definition" form:"definition" validate:"required,max=100"`
}

// RemoveWordRequest names the word whose definitions are removed.
type RemoveWordRequest struct {
	Word string `json:"word" form:"word" validate:"required,max=30"`
}

// DefinitionItem is one search hit.
type DefinitionItem struct {
	Definition string `json:"definition"`
}

// SearchResponse lists every definition of the searched word.
type SearchResponse struct {
	Result []DefinitionItem `json:"result"`
}

// RemoveResponse reports how many definitions were removed.
type RemoveResponse struct {
	Message string `json:"message"`
	Removed int64  `json:"removed"`
}

// Search godoc
// @Summary Look up a word
// @Tags dictionary
// @Produce json
// @Security BearerAuth
// @Param word path string true "Word"
// @Success 202 {object} SearchResponse
// @Success 202 {object} MessageResponse "no such word"
// @Failure 401 {object} errors.ErrorResponse
// @Router /search/{word} [get]
func (h *DictionaryHandler) Search(c echo.Context) error {
	definitions, err := h.svc.Search(c.Request().Context(), c.Param("word"))
	if err != nil {
		return Error(err)
	}

	if len(definitions) == 0 {
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "no such word found"})
	}

	result := make([]DefinitionItem, 0, len(definitions))
	for _, d := range definitions {
		result = append(result, DefinitionItem{Definition: d})
	}
	return c.JSON(http.StatusAccepted, SearchResponse{Result: result})
}

// AddWord godoc
// @Summary Add a definition
// @Tags dictionary
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body AddWordRequest true "Entry"
// @Success 201 {object} MessageResponse
// @Success 202 {object} MessageResponse "word already exists"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /add [post]
func (h *DictionaryHandler) AddWord(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return Error(err)
	}

	var req AddWordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, err := h.svc.AddWord(c.Request().Context(), user, req.Word, req.Definition)
	if err != nil {
		return Error(err)
	}

	if outcome == service.OutcomeAlreadyExists {
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "word already exists"})
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "word added successfully"})
}

// RemoveWord godoc
// @Summary Remove every definition of a word
// @Tags dictionary
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body RemoveWordRequest true "Word"
// @Success 202 {object} RemoveResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /remove [post]
func (h *DictionaryHandler) RemoveWord(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return Error(err)
	}

	var req RemoveWordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, removed, err := h.svc.RemoveWord(c.Request().Context(), user, req.Word)
	if err != nil {
		return Error(err)
	}

	if outcome == service.OutcomeNotFound {
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "word does not exist"})
	}
	return c.JSON(http.StatusAccepted, RemoveResponse{Message: "word deleted successfully", Removed: removed})
}
