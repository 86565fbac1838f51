package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-vacancy-backend/internal/delivery/http/response"
	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(r gin.IRouter, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := r.Group("/vacantes")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:id", handler.Get)
		vacancies.POST("", handler.Create)
		vacancies.PUT("/:id", handler.Update)
	}
}

// VacancyRequest is the body of create and update. Absent text fields are
// stored as empty strings; an absent salary is stored as NULL. Numbers are
// accepted for any field and kept as text.
type VacancyRequest struct {
	Titulo      textValue  `json:"titulo" swaggertype:"string"`
	Descripcion textValue  `json:"descripcion" swaggertype:"string"`
	Ubicacion   textValue  `json:"ubicacion" swaggertype:"string"`
	Salario     *textValue `json:"salario" swaggertype:"string"`
}

func (r VacancyRequest) toDomain(id int64) *domain.Vacancy {
	return &domain.Vacancy{
		ID:          id,
		Title:       string(r.Titulo),
		Description: string(r.Descripcion),
		Location:    string(r.Ubicacion),
		Salary:      r.Salario.ptr(),
	}
}

// bindVacancy reads the JSON body. An empty body counts as all fields absent.
func bindVacancy(c *gin.Context) (VacancyRequest, bool) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.Validation(msgInvalidVacancyBody).WithDetail(err.Error()))
		return req, false
	}
	return req, true
}

// List godoc
// @Summary      List vacancies
// @Tags         vacantes
// @Produce      json
// @Success      200  {array}   domain.Vacancy
// @Failure      500  {object}  response.Response
// @Router       /vacantes [get]
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

// Get godoc
// @Summary      Get a vacancy
// @Tags         vacantes
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  domain.Vacancy
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /vacantes/{id} [get]
func (h *VacancyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// no row can have a non-numeric id
		c.Error(apperror.NotFound(msgVacancyNotFound))
		return
	}

	vacancy, err := h.vacancyUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

// Create godoc
// @Summary      Create a vacancy
// @Tags         vacantes
// @Accept       json
// @Produce      json
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      201   {object}  response.CreatedResponse
// @Failure      400   {object}  response.Response
// @Router       /vacantes [post]
func (h *VacancyHandler) Create(c *gin.Context) {
	req, ok := bindVacancy(c)
	if !ok {
		return
	}

	id, err := h.vacancyUC.Create(c.Request.Context(), req.toDomain(0))
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, http.StatusCreated, "Vacante creada exitosamente.", id)
}

// Update godoc
// @Summary      Replace a vacancy
// @Description  Replaces every field. An unknown id still answers 200 and changes nothing.
// @Tags         vacantes
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Vacancy ID"
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /vacantes/{id} [put]
func (h *VacancyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation(msgInvalidVacancyID).WithDetail("id: " + c.Param("id")))
		return
	}

	req, ok := bindVacancy(c)
	if !ok {
		return
	}

	if err := h.vacancyUC.Update(c.Request.Context(), req.toDomain(id)); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Vacante actualizada exitosamente.")
}
