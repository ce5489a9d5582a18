package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/store"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves register/login/logout/profile.
type AuthHandler struct {
	Users  UserStore
	Tokens TokenIssuer
}

func NewAuthHandler(users UserStore, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and logs it in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		util.Message(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	// pre-check keeps the common case friendly; the unique index still
	// catches a concurrent duplicate insert below
	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		util.Message(c, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		util.Message(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req.Email, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			util.Message(c, http.StatusBadRequest, "User already exists")
		} else {
			util.Message(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	tokenStr, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	util.JSON(c, http.StatusCreated, util.Response{
		"message": "User registered successfully",
		"user": gin.H{
			"_id":   user.ID.Hex(),
			"email": user.Email,
		},
		"token": tokenStr,
	})
}

// Login exchanges valid credentials for a bearer token. Unknown email
// and wrong password are deliberately the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.Message(c, http.StatusInternalServerError, "Failed to look up user")
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenStr, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	util.JSON(c, http.StatusOK, util.Response{
		"token": tokenStr,
		"user": gin.H{
			"_id":   user.ID.Hex(),
			"email": user.Email,
		},
	})
}

// Logout revokes the credential that authenticated this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get(middleware.TokenKey)
	tokenStr, _ := v.(string)
	if !ok || tokenStr == "" {
		util.Message(c, http.StatusUnauthorized, "Missing Authorization header")
		return
	}

	if err := h.Tokens.Revoke(c.Request.Context(), tokenStr); err != nil {
		util.Message(c, http.StatusInternalServerError, "Failed to revoke token")
		return
	}

	util.Message(c, http.StatusOK, "Logout complete")
}

// Profile returns the authenticated user's public fields.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Message(c, http.StatusNotFound, "User not found")
		} else {
			util.Message(c, http.StatusInternalServerError, "Failed to look up user")
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{
		"email": user.Email,
		"_id":   user.ID.Hex(),
	})
}
