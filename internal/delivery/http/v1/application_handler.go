package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-vacancy-backend/internal/delivery/http/response"
	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is allowed on top of the CV cap for the text fields and
// part headers of a submission.
const multipartOverhead = 1 << 20

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	maxCVBytes    int64
}

// NewApplicationHandler registers application routes. uploadLimit guards the
// submission endpoint.
func NewApplicationHandler(r gin.IRouter, applicationUC domain.ApplicationUsecase, uploadLimit gin.HandlerFunc, maxCVBytes int64) {
	handler := &ApplicationHandler{applicationUC: applicationUC, maxCVBytes: maxCVBytes}

	r.POST("/datos_usuario", uploadLimit, handler.Submit)

	applications := r.Group("/api/applications")
	{
		applications.GET("", handler.List)
		applications.GET("/export", handler.Export)
		applications.GET("/:id", handler.Get)
	}
}

// Submit godoc
// @Summary      Submit an application
// @Description  Stores the applicant data and a PDF CV (5 MiB max by default).
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        correo     formData  string  true  "Applicant email"
// @Param        nombres    formData  string  true  "First names"
// @Param        apellidos  formData  string  true  "Last names"
// @Param        vacanteId  formData  int     true  "Vacancy ID"
// @Param        cv         formData  file    true  "CV (PDF)"
// @Success      201  {object}  response.CreatedResponse
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /datos_usuario [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxCVBytes+multipartOverhead)

	// any other error leaves fh nil and the usecase reports the missing CV
	fh, err := c.FormFile("cv")
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.Error(apperror.FileTooLarge(msgUploadFailed, fmt.Sprintf("request exceeds %d bytes", maxErr.Limit)))
		return
	}

	in := domain.ApplicationInput{
		Email:     c.PostForm("correo"),
		FirstName: c.PostForm("nombres"),
		LastName:  c.PostForm("apellidos"),
	}
	// an absent or unparsable id stays nil and fails validation
	if id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("vacanteId")), 10, 64); err == nil {
		in.VacancyID = &id
	}

	var file *domain.UploadedFile
	if fh != nil {
		src, err := fh.Open()
		if err != nil {
			c.Error(apperror.Storage(msgUploadFailed, err).WithCode(http.StatusBadRequest))
			return
		}
		defer src.Close()

		file = &domain.UploadedFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     src,
		}
	}

	id, err := h.applicationUC.Submit(c.Request.Context(), in, file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, http.StatusCreated, "Aplicación almacenada exitosamente.", id)
}

// List godoc
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.DataResponse{data=[]domain.Application}
// @Failure      500  {object}  response.Response
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, msgDataFetched, apps)
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.DataResponse{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound(msgApplicationNotFound))
		return
	}

	app, err := h.applicationUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, msgDataFetched, app)
}

// Export godoc
// @Summary      Export applications
// @Description  Downloads every application as a spreadsheet.
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/applications/export [get]
func (h *ApplicationHandler) Export(c *gin.Context) {
	out, err := h.applicationUC.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
