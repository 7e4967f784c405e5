package dto

// Tipos de mensaje transitorio (el "toast" de la SPA).
const (
	MensajeSuccess = "success"
	MensajeError   = "error"
	MensajeWarning = "warning"
)

// Mensaje aviso transitorio para mostrar al usuario.
type Mensaje struct {
	Mensaje string `json:"mensaje"`
	Tipo    string `json:"tipo"` // success | error | warning
}

// NuevoMensaje arma un aviso.
func NuevoMensaje(texto, tipo string) *Mensaje {
	return &Mensaje{Mensaje: texto, Tipo: tipo}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
