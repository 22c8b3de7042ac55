package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	Log       *logrus.Logger
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, log *logrus.Logger, secret string) *AuthHandler {
	return &AuthHandler{DB: db, Log: log, JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type ParentRegisterReq struct {
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name"`
	AgreeTerms bool   `json:"agree_terms" validate:"required"`
}

type ParentLoginReq struct {
	Identity string `json:"identity"` // email or phone
	Password string `json:"password"`
}

type StaffLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /auth/parents/register
func (h *AuthHandler) ParentRegister(c echo.Context) error {
	var req ParentRegisterReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	var dup models.Account
	if err := h.DB.Where("email = ?", email).First(&dup).Error; err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS", "code": "EMAIL_EXISTS"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}
	rec := models.Account{
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		Password:    string(hash),
		Name:        strings.TrimSpace(req.Name),
		AgreedTerms: req.AgreeTerms,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		h.Log.WithError(err).Error("parent register failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}

// GET /auth/check-email?email=...
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := strings.TrimSpace(strings.ToLower(c.QueryParam("email")))
	if email == "" {
		return c.JSON(http.StatusOK, map[string]bool{"exists": false})
	}
	var a models.Account
	err := h.DB.Where("email = ?", email).First(&a).Error
	return c.JSON(http.StatusOK, map[string]bool{"exists": err == nil})
}

// POST /auth/parent/login
func (h *AuthHandler) ParentLogin(c echo.Context) error {
	var req ParentLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	id := strings.TrimSpace(strings.ToLower(req.Identity))
	if id == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var a models.Account
	q := h.DB
	if strings.Contains(id, "@") {
		q = q.Where("email = ?", id)
	} else {
		q = q.Where("phone = ?", id)
	}
	if err := q.First(&a).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(a.ID, "parent", a.Name, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": a.ID, "role": "parent", "emailOrPhone": id, "name": a.Name},
	})
}

// POST /auth/staff/login
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req StaffLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var u models.Staff
	if err := h.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": u.ID, "role": u.Role, "username": u.Username, "name": u.Name},
	})
}
