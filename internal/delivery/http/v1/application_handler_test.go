package v1

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-vacancy-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) applicationCount(t *testing.T) int {
	t.Helper()
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/applications", nil))
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeBody(t, w)["data"].([]interface{})
	require.True(t, ok, w.Body.String())
	return len(data)
}

func TestSubmitApplication(t *testing.T) {
	s := newTestServer(t)

	cv := pdfOfSize(config.DefaultMaxCVBytes)
	w := s.do(submission(t, applicantFields(), &cvPart{"mi cv.pdf", "application/pdf", cv}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Aplicación almacenada exitosamente.","id":1}`, w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/applications/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Datos obtenidos exitosamente.", body["message"])
	app := body["data"].(map[string]interface{})
	assert.Equal(t, "luis@example.com", app["correo"])
	assert.Equal(t, "Luis", app["nombres"])
	assert.Equal(t, "Pérez", app["apellidos"])
	assert.Equal(t, float64(1), app["vacante_id"])
	assert.NotEmpty(t, app["created_at"])

	// url_cv is relative to the server root, not to the upload dir on disk
	cvPath := app["url_cv"].(string)
	assert.Regexp(t, `^uploads/cvs/\d{13}-\d+\.pdf$`, cvPath)
	assert.NotContains(t, cvPath, s.uploadDir)

	onDisk, err := os.ReadFile(s.cvFile(cvPath))
	require.NoError(t, err)
	assert.Equal(t, cv, onDisk)

	w = s.do(httptest.NewRequest(http.MethodGet, "/"+cvPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(cv), w.Body.Len())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestSubmitApplication_VacancyZero(t *testing.T) {
	s := newTestServer(t)

	w := s.do(submission(t, with(applicantFields(), "vacanteId", "0"), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(64)}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/applications/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	app := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), app["vacante_id"])
}

func TestSubmitApplication_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]string
		cv      *cvPart
		message string
	}{
		{"missing cv", applicantFields(), nil, "El CV es requerido."},
		{"png", applicantFields(), &cvPart{"foto.png", "image/png", []byte("\x89PNG\r\n\x1a\n0000")}, "Solo se permiten archivos PDF"},
		{"one byte over the cap", applicantFields(), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(config.DefaultMaxCVBytes + 1)}, "Error al subir el archivo"},
		{"far over the cap", applicantFields(), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(config.DefaultMaxCVBytes + 2<<20)}, "Error al subir el archivo"},
		{"declared pdf, not a pdf", applicantFields(), &cvPart{"cv.pdf", "application/pdf", []byte("hello, not a pdf")}, "Solo se permiten archivos PDF"},
		{"non-numeric vacancy", with(applicantFields(), "vacanteId", "abc"), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(64)}, "Todos los campos son requeridos."},
		{"missing vacancy", without(applicantFields(), "vacanteId"), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(64)}, "Todos los campos son requeridos."},
		{"html name with pdf content", applicantFields(), &cvPart{"cv.html", "application/pdf", pdfOfSize(64)}, "Solo se permiten archivos PDF"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)

			w := s.do(submission(t, tc.fields, tc.cv))
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tc.message, decodeBody(t, w)["message"])

			assert.Zero(t, s.applicationCount(t))
			entries, err := os.ReadDir(s.cvDir())
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestApplicationReads(t *testing.T) {
	s := newTestServer(t)

	assert.Zero(t, s.applicationCount(t))

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/applications/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Aplicación no encontrada.", decodeBody(t, w)["message"])

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/applications/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// vacancy reference is not checked
	fields := with(applicantFields(), "vacanteId", "42")
	require.Equal(t, http.StatusCreated, s.do(submission(t, fields, &cvPart{"cv.pdf", "application/pdf", pdfOfSize(128)})).Code)

	first := s.do(httptest.NewRequest(http.MethodGet, "/api/applications", nil)).Body.String()
	second := s.do(httptest.NewRequest(http.MethodGet, "/api/applications", nil)).Body.String()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.applicationCount(t))
}

func TestExportApplications(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(submission(t, applicantFields(), &cvPart{"cv.pdf", "application/pdf", pdfOfSize(128)})).Code)

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/applications/export?format=csv", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "luis@example.com", rows[1][1])

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/applications/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/applications/export?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["database"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
