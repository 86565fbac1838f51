package domain

import (
	"context"
	"io"
	"time"
)

// Application binds an applicant and an uploaded CV to a vacancy.
// VacancyID is not checked against the vacancies table.
type Application struct {
	ID        int64     `json:"id"`
	Email     string    `json:"correo"`
	FirstName string    `json:"nombres"`
	LastName  string    `json:"apellidos"`
	CVPath    string    `json:"url_cv"`
	VacancyID int64     `json:"vacante_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplicationInput holds the text fields of a submission form.
// VacancyID is nil when the field is absent or not an integer; 0 is a
// valid id.
type ApplicationInput struct {
	Email     string `form:"correo" validate:"required"`
	FirstName string `form:"nombres" validate:"required"`
	LastName  string `form:"apellidos" validate:"required"`
	VacancyID *int64 `form:"vacanteId" validate:"required"`
}

// UploadedFile is a file part as received from the client.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Export formats for ApplicationUsecase.Export.
const (
	ExportXLSX = "xlsx"
	ExportCSV  = "csv"
)

// ExportFile is a rendered spreadsheet ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicationRepository interface {
	// Create inserts the row and fills ID and CreatedAt from the store.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	List(ctx context.Context) ([]Application, error)
}

// UploadsURLPrefix is the URL segment stored files are served under. It
// does not depend on where the upload directory sits on disk.
const UploadsURLPrefix = "uploads"

// FileStore persists uploaded CVs and returns the public path the file is
// served under, e.g. uploads/cvs/<name>.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in ApplicationInput, file *UploadedFile) (int64, error)
	Get(ctx context.Context, id int64) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	Export(ctx context.Context, format string) (*ExportFile, error)
}
