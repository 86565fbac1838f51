package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ana = map[string]string{
	"nombre":     "Ana",
	"codigo":     "A01",
	"correo":     "ana@example.com",
	"contrasena": "s3cret",
}

func with(base map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}

func without(base map[string]string, key string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	w := s.doJSON(http.MethodPost, "/usuarios", ana)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Ana", body["nombre"])
	assert.Equal(t, "A01", body["codigo"])
	assert.Equal(t, "ana@example.com", body["correo"])
	assert.NotContains(t, body, "contrasena")

	t.Run("duplicate email", func(t *testing.T) {
		w := s.doJSON(http.MethodPost, "/usuarios", with(ana, "nombre", "Otra"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "El correo electrónico ya está en uso.", decodeBody(t, w)["message"])
	})

	t.Run("missing field", func(t *testing.T) {
		w := s.doJSON(http.MethodPost, "/usuarios", with(ana, "codigo", ""))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Todos los campos son requeridos.", body["message"])
		assert.Contains(t, body["error"], "Código")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := s.doJSON(http.MethodPost, "/usuarios", "not an object")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Datos inválidos.", decodeBody(t, w)["message"])
	})

	t.Run("numeric code", func(t *testing.T) {
		w := s.doJSON(http.MethodPost, "/usuarios", map[string]interface{}{
			"nombre":     "Beto",
			"codigo":     2021001,
			"correo":     "beto@example.com",
			"contrasena": "s3cret",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "2021001", decodeBody(t, w)["codigo"])

		w = s.doJSON(http.MethodPost, "/login", map[string]interface{}{
			"nombre":     "Beto",
			"codigo":     2021001,
			"correo":     "beto@example.com",
			"contrasena": "s3cret",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("object where text is expected", func(t *testing.T) {
		w := s.doJSON(http.MethodPost, "/usuarios", map[string]interface{}{
			"nombre":     "Caro",
			"codigo":     map[string]string{"x": "y"},
			"correo":     "caro@example.com",
			"contrasena": "s3cret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Datos inválidos.", decodeBody(t, w)["message"])
	})
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.doJSON(http.MethodPost, "/usuarios", ana).Code)

	w := s.doJSON(http.MethodPost, "/login", ana)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "Login exitoso", body["message"])
	usuario, ok := body["usuario"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), usuario["id"])
	assert.Equal(t, "ana@example.com", usuario["correo"])
	assert.NotContains(t, usuario, "contrasena")

	for _, field := range []string{"nombre", "codigo", "correo", "contrasena"} {
		t.Run("mismatched "+field, func(t *testing.T) {
			w := s.doJSON(http.MethodPost, "/login", with(ana, field, "wrong"))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Credenciales incorrectas.", decodeBody(t, w)["message"])
		})
	}
}
