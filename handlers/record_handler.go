package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/journal"
	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type RecordHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewRecordHandler(db *gorm.DB, log *logrus.Logger) *RecordHandler {
	return &RecordHandler{DB: db, Log: log}
}

// gormRecordSource is the production RecordSource: the records table plays
// the remote collaborator.
type gormRecordSource struct {
	db *gorm.DB
}

func (s gormRecordSource) Create(ctx context.Context, rec *models.Record) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s gormRecordSource) Update(ctx context.Context, id uint, category journal.Category, note string) error {
	return s.db.WithContext(ctx).Model(&models.Record{}).Where("id = ?", id).
		Updates(map[string]any{"category": string(category), "note": note}).Error
}

func (s gormRecordSource) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Record{}, id).Error
}

func (s gormRecordSource) FetchAll(ctx context.Context, accountID uint) ([]models.Record, error) {
	var rows []models.Record
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (h *RecordHandler) store(c echo.Context) (*journal.RecordStore, bool) {
	uid, ok := accountID(c)
	if !ok {
		return nil, false
	}
	return journal.NewRecordStore(gormRecordSource{db: h.DB}, uid), true
}

type recordReq struct {
	ChildID  uint   `json:"child_id"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

func mutationError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, journal.ErrEmptyNote):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "EMPTY_NOTE"})
	case errors.Is(err, journal.ErrNoChild):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CHILD"})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MUTATION_FAILED"})
	}
}

// GET /parent/records?childId=
func (h *RecordHandler) List(c echo.Context) error {
	store, ok := h.store(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}
	if err := store.Reload(c.Request().Context()); err != nil {
		h.Log.WithError(err).Error("record list failed")
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if childID := atoiOr(c.QueryParam("childId"), 0); childID > 0 {
		return c.JSON(http.StatusOK, store.ForChild(uint(childID)))
	}
	return c.JSON(http.StatusOK, store.Entries())
}

// POST /parent/records
// The response body is the freshly reloaded list: the store never keeps an
// optimistic local insert, mutations are followed by a full re-fetch.
func (h *RecordHandler) Create(c echo.Context) error {
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	store, ok := h.store(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}
	if err := store.Add(c.Request().Context(), req.ChildID, journal.Category(req.Category), req.Note); err != nil {
		h.Log.WithError(err).Warn("record create rejected")
		return mutationError(err)
	}
	return c.JSON(http.StatusCreated, store.Entries())
}

// PUT /parent/records/:id — full replace of category and note.
func (h *RecordHandler) Update(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	store, ok := h.store(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}
	if !h.owns(c, uint(id)) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err := store.Update(c.Request().Context(), uint(id), journal.Category(req.Category), req.Note); err != nil {
		h.Log.WithError(err).Warn("record update rejected")
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, store.Entries())
}

// DELETE /parent/records/:id — immediate and irreversible, no soft delete.
func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	store, ok := h.store(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}
	if !h.owns(c, uint(id)) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err := store.Delete(c.Request().Context(), uint(id)); err != nil {
		h.Log.WithError(err).Error("record delete failed")
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, store.Entries())
}

func (h *RecordHandler) owns(c echo.Context, id uint) bool {
	uid, _ := accountID(c)
	var rec models.Record
	return h.DB.Where("id = ? AND account_id = ?", id, uid).First(&rec).Error == nil
}
