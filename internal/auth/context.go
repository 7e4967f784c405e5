// Package auth mantiene el estado de sesión del proceso: el principal actual y la
// bandera de carga que las puertas de acceso consultan antes de decidir.
package auth

import (
	"sync"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/session"
	"github.com/tu-usuario/automotora-front/pkg/logger"
)

// Context fuente única de verdad de la sesión. Se construye una sola vez en el
// arranque y se inyecta por referencia; no hay singleton de paquete, así los tests
// pueden crear instancias aisladas.
//
// Máquina de estados: Initializing → Ready(principal=nil) | Ready(principal!=nil).
// La transición inicial ocurre exactamente una vez por proceso (Inicializar) y las
// puertas no deben confiar en ninguna decisión mientras Cargando() sea true.
type Context struct {
	store session.Store
	log   *logger.Logger

	mu        sync.RWMutex
	principal *entity.Principal
	cargando  bool

	inicio sync.Once
}

// NewContext construye el contexto en estado Initializing (cargando=true).
func NewContext(store session.Store, log *logger.Logger) *Context {
	if log == nil {
		log = logger.Nop()
	}
	return &Context{store: store, log: log, cargando: true}
}

// Inicializar lee el registro de sesión y pasa a Ready. Se ejecuta una sola vez;
// llamadas posteriores no tienen efecto. Pase lo que pase con el store, el contexto
// termina en Ready: una sesión ilegible equivale a estar deslogueado.
func (c *Context) Inicializar() {
	c.inicio.Do(func() {
		p, err := c.store.Load()
		if err != nil {
			c.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida, se asume sin sesión")
			p = nil
		}
		c.mu.Lock()
		c.principal = p
		c.cargando = false
		c.mu.Unlock()
		if p != nil {
			c.log.Info().Int("usuario_id", p.ID).Int("rol_id", p.RolID()).Msg("sesión restaurada")
		}
	})
}

// Cargando indica si la transición inicial sigue pendiente.
func (c *Context) Cargando() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cargando
}

// Principal devuelve una copia del principal actual, o nil si no hay sesión.
// Los consumidores deben tratarlo como solo lectura; la copia evita que muten
// el estado compartido por accidente.
func (c *Context) Principal() *entity.Principal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.principal == nil {
		return nil
	}
	cp := *c.principal
	if c.principal.Rol != nil {
		rol := *c.principal.Rol
		cp.Rol = &rol
	}
	return &cp
}

// Login fija el principal en memoria y lo persiste. No valida nada: confía en el
// principal que el caller obtuvo del intercambio de credenciales con el backend.
// La escritura al store es bloqueante para que un reinicio inmediato no la pierda.
func (c *Context) Login(p *entity.Principal) error {
	c.mu.Lock()
	c.principal = p
	c.mu.Unlock()

	if err := c.store.Save(p); err != nil {
		// La sesión en memoria queda válida; solo se perderá al reiniciar.
		c.log.Error().Err(err).Msg("no se pudo persistir la sesión")
		return err
	}
	c.log.Info().Int("usuario_id", p.ID).Int("rol_id", p.RolID()).Msg("sesión iniciada")
	return nil
}

// Logout limpia memoria y registro persistido. Es seguro llamarlo en cualquier
// estado, incluso sin sesión activa.
func (c *Context) Logout() error {
	c.mu.Lock()
	c.principal = nil
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.Error().Err(err).Msg("no se pudo limpiar la sesión persistida")
		return err
	}
	return nil
}
