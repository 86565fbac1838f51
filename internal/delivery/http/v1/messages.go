package v1

// Client-facing messages produced at the transport layer.
const (
	msgInvalidBody         = "Datos inválidos."
	msgVacancyNotFound     = "Vacante no encontrada."
	msgInvalidVacancyID    = "ID de vacante inválido."
	msgInvalidVacancyBody  = "Datos de la vacante inválidos."
	msgApplicationNotFound = "Aplicación no encontrada."
	msgDataFetched         = "Datos obtenidos exitosamente."
	msgUploadFailed        = "Error al subir el archivo"
)
