package v1

import (
	"net/http"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

// NewAccountHandler registers registration and login. loginLimit guards /login.
func NewAccountHandler(r gin.IRouter, accountUC domain.AccountUsecase, loginLimit gin.HandlerFunc) {
	handler := &AccountHandler{accountUC: accountUC}

	r.POST("/usuarios", handler.Register)
	r.POST("/login", loginLimit, handler.Login)
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message string          `json:"message"`
	Usuario *domain.Account `json:"usuario"`
}

// Register godoc
// @Summary      Register an account
// @Description  Creates an account. All four fields are required and the email must be unused.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Account data"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /usuarios [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(msgInvalidBody).WithDetail(err.Error()))
		return
	}

	account, err := h.accountUC.Register(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Login godoc
// @Summary      Log in
// @Description  Checks name, code, email and password together. Any mismatch is rejected the same way.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// malformed bodies are rejected like any other bad credential
		req = CredentialsRequest{}
	}

	account, err := h.accountUC.Login(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login exitoso", Usuario: account})
}
