package handlers

import (
	"net/http"

	"awards_backend/internal/services"
	"awards_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

// RegisterRoutes registers the account workflow under /auth.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.GET("/me/:userId", h.GetCurrentUser)
		auth.GET("/check-category/:userId/:categorySlug", h.CheckCategoryApplied)
		auth.POST("/draft/:userId", h.SaveDraft)
		auth.GET("/draft/:userId", h.GetDraft)
		auth.POST("/complete-registration/:userId", h.CompleteRegistration)
		auth.POST("/submit-application/:userId", h.SubmitApplication)
	}

	admin := rg.Group("/auth/admin")
	{
		admin.GET("/pending-registrations", h.PendingRegistrations)
		admin.POST("/review-registration", h.ReviewRegistration)
	}
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.accountService.Signup(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) GetCurrentUser(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.accountService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) CheckCategoryApplied(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.accountService.CheckCategoryApplied(c.Request.Context(), userID, c.Param("categorySlug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) SaveDraft(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.DraftRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.accountService.SaveDraft(c.Request.Context(), userID, req.Data); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Draft saved successfully"})
}

func (h *AccountHandler) GetDraft(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.accountService.GetDraft(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) CompleteRegistration(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RegistrationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.accountService.CompleteRegistration(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Registration completed successfully"})
}

func (h *AccountHandler) SubmitApplication(c *gin.Context) {
	userID, err := ParseParamInt(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.accountService.SubmitApplication(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application submitted successfully"})
}

func (h *AccountHandler) PendingRegistrations(c *gin.Context) {
	resp, err := h.accountService.PendingRegistrations(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) ReviewRegistration(c *gin.Context) {
	var req dto.ReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.accountService.ReviewRegistration(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
