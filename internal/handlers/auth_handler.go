package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	uc "github.com/BruksfildServices01/calendar-scheduler/internal/usecase/scheduling"
)

type AuthHandler struct {
	register *uc.RegisterUser
	login    *uc.Login
	visitor  *uc.CreateVisitor
	resolve  *uc.ResolveUser
	log      zerolog.Logger
}

func NewAuthHandler(
	register *uc.RegisterUser,
	login *uc.Login,
	visitor *uc.CreateVisitor,
	resolve *uc.ResolveUser,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		visitor:  visitor,
		resolve:  resolve,
		log:      log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.register.Execute(c.Request.Context(), uc.RegisterUserInput{
		Name:     req.DisplayName(),
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err, "failed_to_create_user")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.FromUser(out.User),
		Token: out.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, token, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err, "failed_to_login")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.FromUser(user),
		Token: token,
	})
}

// Me answers {user: null} for unknown sessions instead of an error.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.resolve.Execute(c.Request.Context(), c.Query("token"), c.Query("id"))
	if err != nil {
		writeError(c, h.log, err, "failed_to_get_user")
		return
	}

	resp := dto.MeResponse{}
	if user != nil {
		u := dto.FromUser(user)
		resp.User = &u
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RandomUser(c *gin.Context) {
	var req dto.RandomUserRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", err.Error())
			return
		}
	}

	user, err := h.visitor.Execute(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, h.log, err, "failed_to_create_user")
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}
