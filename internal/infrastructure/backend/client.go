// Package backend implementa los clientes HTTP delgados sobre el API REST remoto
// de la automotora. Cada recurso (vehículos, marcas, usuarios, reservas...) expone
// list/get/create/update/delete; los errores se mapean a los sentinelas de dominio
// y nunca afectan la puerta de acceso.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/pkg/logger"
)

// Client cliente base del backend remoto. Usa net/http de la stdlib con un
// circuit breaker por delante: si el backend encadena fallas, las pantallas
// reciben ErrBackendUnavailable de inmediato en vez de colgar esperando timeouts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *logger.Logger
}

// NewClient construye el cliente base contra baseURL (ej. https://.../api/v1).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "automotora-backend",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		// Un 404 o un 401 son respuestas válidas del backend, no caídas:
		// solo las fallas de infraestructura abren el circuito.
		IsSuccessful: func(err error) bool {
			return err == nil || !esFallaDeInfraestructura(err)
		},
	})
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    cb,
		log:        log,
	}
}

// apiError respuesta de error del backend; a veces es solo un string plano.
type apiError struct {
	Mensaje string `json:"mensaje"`
	Error_  string `json:"error"`
}

// doJSON ejecuta una petición JSON contra el backend. body y out pueden ser nil.
// Mapeo de errores: 404 ⇒ ErrNotFound, 401 ⇒ ErrCredencialesInvalidas,
// 409 ⇒ ErrDuplicate, 4xx restantes ⇒ ErrInvalidInput, 5xx y fallas de red ⇒
// ErrBackendUnavailable (envuelto, para conservar el detalle en logs).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.doOnce(ctx, method, path, body, out)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn().Str("path", path).Msg("circuit breaker abierto hacia el backend")
			return fmt.Errorf("%w: circuito abierto", domain.ErrBackendUnavailable)
		}
		return err
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar petición %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp, method, path)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}

// mapError traduce el status HTTP del backend a un sentinela de dominio,
// conservando el mensaje que envió el backend cuando existe.
func (c *Client) mapError(resp *http.Response, method, path string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	mensaje := extraerMensaje(data)

	var sentinela error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		sentinela = domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		sentinela = domain.ErrCredencialesInvalidas
	case resp.StatusCode == http.StatusConflict:
		sentinela = domain.ErrDuplicate
	case resp.StatusCode >= 500:
		c.log.Error().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("error del backend")
		sentinela = domain.ErrBackendUnavailable
	default:
		sentinela = domain.ErrInvalidInput
	}
	if mensaje != "" {
		return fmt.Errorf("%w: %s", sentinela, mensaje)
	}
	return fmt.Errorf("%w: %s %s -> %d", sentinela, method, path, resp.StatusCode)
}

// esFallaDeInfraestructura decide qué cuenta como falla para el breaker.
func esFallaDeInfraestructura(err error) bool {
	return errors.Is(err, domain.ErrBackendUnavailable)
}

func extraerMensaje(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var ae apiError
	if err := json.Unmarshal(data, &ae); err == nil {
		if ae.Mensaje != "" {
			return ae.Mensaje
		}
		if ae.Error_ != "" {
			return ae.Error_
		}
	}
	// El backend a veces responde el mensaje como string JSON plano.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return ""
}
