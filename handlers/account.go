package handlers

import (
	"errors"
	"net/http"

	"medcrew/services/account"
	"medcrew/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes login, logout, and account retrieval.
type AccountHandler struct {
	Svc account.AccountService
}

// NewAccountHandler creates a new AccountHandler instance.
func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates an account and returns a token.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Svc.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.GetLogger().Error("login failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated account record.
func (h *AccountHandler) MeHandler(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	acct, err := h.Svc.FetchAccount(accountID.(string))
	if err != nil || acct == nil {
		utils.JSONError(c, http.StatusNotFound, "Account not found", "")
		return
	}
	c.JSON(http.StatusOK, acct)
}

// LogoutHandler revokes the account's current token.
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Svc.RevokeToken(accountID.(string)); err != nil {
		utils.GetLogger().Error("logout failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

type fcmTokenRequest struct {
	FCMToken string `json:"fcmToken" binding:"required"`
}

// UpdateFCMTokenHandler stores the device push token for the account.
func (h *AccountHandler) UpdateFCMTokenHandler(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Svc.UpdateFCMToken(accountID.(string), req.FCMToken); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update push token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "push token updated"})
}
