package v1

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-vacancy-backend/internal/domain"
)

// textValue is a text field that also accepts a bare JSON number. The
// number keeps its literal form, so 2021001 binds as "2021001". Objects,
// arrays and booleans are rejected.
type textValue string

func (t *textValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = textValue(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*t = textValue(b)
	default:
		return fmt.Errorf("expected text or number, got %s", b)
	}
	return nil
}

func (t *textValue) ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Nombre     textValue `json:"nombre" swaggertype:"string"`
	Codigo     textValue `json:"codigo" swaggertype:"string"`
	Correo     textValue `json:"correo" swaggertype:"string"`
	Contrasena textValue `json:"contrasena" swaggertype:"string"`
}

func (r CredentialsRequest) toDomain() domain.Credentials {
	return domain.Credentials{
		Name:   string(r.Nombre),
		Code:   string(r.Codigo),
		Email:  string(r.Correo),
		Secret: string(r.Contrasena),
	}
}
