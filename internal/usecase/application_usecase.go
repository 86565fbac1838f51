package usecase

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"
	"go-vacancy-backend/pkg/logger"
	"go-vacancy-backend/pkg/security"
	"go-vacancy-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const (
	msgCVRequired           = "El CV es requerido."
	msgOnlyPDF              = "Solo se permiten archivos PDF"
	msgUploadFailed         = "Error al subir el archivo"
	msgApplicationInvalid   = "Todos los campos son requeridos."
	msgApplicationStoreFail = "Error al almacenar los datos."
	msgApplicationNotFound  = "Aplicación no encontrada."
	msgApplicationGetFailed = "Error al obtener los datos."
	msgExportFormat         = "Formato de exportación no soportado."
	msgExportFailed         = "Error al exportar los datos."
)

var errCVTooLarge = errors.New("cv exceeds size limit")

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	files           domain.FileStore
	validate        *validator.Validate
	maxCVBytes      int64
}

// NewApplicationUsecase wires the submission flow. maxCVBytes is the largest
// accepted upload; files of exactly that size pass.
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	files domain.FileStore,
	validate *validator.Validate,
	maxCVBytes int64,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		files:           files,
		validate:        validate,
		maxCVBytes:      maxCVBytes,
	}
}

// Submit checks the CV, writes it to the file store and records the
// application. The file is written before the insert and is not removed
// if the insert fails.
func (uc *applicationUsecase) Submit(ctx context.Context, in domain.ApplicationInput, file *domain.UploadedFile) (int64, error) {
	// 1. CV is mandatory
	if file == nil || file.Content == nil {
		return 0, apperror.Validation(msgCVRequired)
	}

	// 2. Extension and declared type
	if result := security.ValidateDeclared(file.Filename, file.ContentType); !result.Valid {
		return 0, apperror.UnsupportedFileType(msgOnlyPDF, result.Error)
	}

	// 3. Size cap
	if file.Size > uc.maxCVBytes {
		return 0, uc.tooLarge()
	}

	// 4. Content must really be a PDF
	br := bufio.NewReaderSize(file.Content, security.SniffLen)
	head, err := br.Peek(security.SniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, apperror.Storage(msgUploadFailed, err).WithCode(http.StatusBadRequest)
	}
	if result := security.ValidateContent(head); !result.Valid {
		return 0, apperror.UnsupportedFileType(msgOnlyPDF, result.Error)
	}

	// 5. Text fields, checked before anything touches the disk
	if err := uc.validate.Struct(in); err != nil {
		return 0, apperror.Validation(msgApplicationInvalid).WithDetail(validation.Detail(err))
	}

	// 6. Write the file
	path, err := uc.files.Save(ctx, file.Filename, &capReader{r: br, left: uc.maxCVBytes})
	if err != nil {
		if errors.Is(err, errCVTooLarge) {
			return 0, uc.tooLarge()
		}
		return 0, apperror.Storage(msgUploadFailed, err).WithCode(http.StatusBadRequest)
	}

	// 7. Record the row
	app := &domain.Application{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CVPath:    path,
		VacancyID: *in.VacancyID,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		logger.Log.Warn("application insert failed, cv left on disk", "cv_path", path, "error", err)
		return 0, apperror.Storage(msgApplicationStoreFail, err).WithCode(http.StatusBadRequest)
	}

	logger.Log.Info("application stored", "application_id", app.ID, "vacancy_id", app.VacancyID)
	return app.ID, nil
}

func (uc *applicationUsecase) tooLarge() *apperror.AppError {
	return apperror.FileTooLarge(msgUploadFailed, fmt.Sprintf("file exceeds %d bytes", uc.maxCVBytes))
}

func (uc *applicationUsecase) Get(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgApplicationNotFound)
		}
		return nil, apperror.Storage(msgApplicationGetFailed, err)
	}
	return app, nil
}

func (uc *applicationUsecase) List(ctx context.Context) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.List(ctx)
	if err != nil {
		return nil, apperror.Storage(msgApplicationGetFailed, err)
	}
	return apps, nil
}

// Export renders every application as a spreadsheet. An empty format means xlsx.
func (uc *applicationUsecase) Export(ctx context.Context, format string) (*domain.ExportFile, error) {
	if format == "" {
		format = domain.ExportXLSX
	}
	if format != domain.ExportXLSX && format != domain.ExportCSV {
		return nil, apperror.Validation(msgExportFormat).WithDetail("format: " + format)
	}

	apps, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case domain.ExportCSV:
		data, err := exportCSV(apps)
		if err != nil {
			return nil, apperror.Storage(msgExportFailed, err)
		}
		return &domain.ExportFile{
			Filename:    "aplicaciones_" + stamp + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		data, err := exportExcel(apps)
		if err != nil {
			return nil, apperror.Storage(msgExportFailed, err)
		}
		return &domain.ExportFile{
			Filename:    "aplicaciones_" + stamp + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
}

var exportHeaders = []string{"id", "correo", "nombres", "apellidos", "url_cv", "vacante_id", "created_at"}

func exportRow(a domain.Application) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Email,
		a.FirstName,
		a.LastName,
		a.CVPath,
		strconv.FormatInt(a.VacancyID, 10),
		a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func exportExcel(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Aplicaciones"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return nil, err
	}

	for i, a := range apps {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{a.ID, a.Email, a.FirstName, a.LastName, a.CVPath, a.VacancyID, a.CreatedAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(apps []domain.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, a := range apps {
		if err := w.Write(exportRow(a)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// capReader fails once more than left bytes have been read, so a client
// that lies about the part size still cannot exceed the cap on disk.
type capReader struct {
	r    io.Reader
	left int64
}

func (c *capReader) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, errCVTooLarge
	}
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n, errCVTooLarge
	}
	return n, err
}
