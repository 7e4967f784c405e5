package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

func newCliente(t *testing.T, handler http.Handler) (*backend.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 2*time.Second, nil), srv
}

// Un listado exitoso decodifica el JSON del backend.
func TestVehiculosClient_List(t *testing.T) {
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehiculos", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"), "cada llamada debe ir correlacionada")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"modelo":"Corolla","anio":2022,"precio":18990000,"marca":{"id":1,"nombre":"Toyota"}}]`))
	}))

	vehiculos := backend.NewVehiculosClient(cliente)
	list, err := vehiculos.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Corolla", list[0].Modelo)
	assert.Equal(t, "Toyota", list[0].Marca.Nombre)
	assert.Equal(t, "18990000", list[0].Precio.String())
}

// 404 del backend se mapea al sentinela ErrNotFound.
func TestClient_MapeaNotFound(t *testing.T) {
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `"vehiculo no existe"`, http.StatusNotFound)
	}))

	vehiculos := backend.NewVehiculosClient(cliente)
	_, err := vehiculos.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// 401 en el login se mapea a credenciales inválidas con el mensaje del backend.
func TestUsuariosClient_LoginCredencialesInvalidas(t *testing.T) {
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"mensaje":"Credenciales inválidas"}`))
	}))

	usuarios := backend.NewUsuariosClient(cliente)
	_, err := usuarios.Login(context.Background(), backend.Credenciales{Correo: "a@a.cl", Contrasena: "mala"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.Contains(t, err.Error(), "Credenciales inválidas")
}

// El login exitoso devuelve el usuario con rol embebido normalizable.
func TestUsuariosClient_LoginExitoso(t *testing.T) {
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"nombre":"Ana","correo":"ana@a.cl","rol":{"id":2,"nombre":"vendedor"}}`))
	}))

	usuarios := backend.NewUsuariosClient(cliente)
	u, err := usuarios.Login(context.Background(), backend.Credenciales{Correo: "ana@a.cl", Contrasena: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, 2, u.Rol.RolID())
	assert.True(t, u.Rol.EsElevado())
}

// Rol como id desnudo en la respuesta también decodifica (formato histórico).
func TestUsuariosClient_LoginRolDesnudo(t *testing.T) {
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":9,"nombre":"Luis","correo":"luis@a.cl","rol":3}`))
	}))

	usuarios := backend.NewUsuariosClient(cliente)
	u, err := usuarios.Login(context.Background(), backend.Credenciales{Correo: "luis@a.cl", Contrasena: "x"})
	require.NoError(t, err)
	assert.Equal(t, 3, u.Rol.RolID())
	assert.False(t, u.Rol.EsElevado())
}

// Fallas 5xx encadenadas abren el circuito; las llamadas siguientes fallan
// rápido con ErrBackendUnavailable sin golpear el backend.
func TestClient_CircuitBreakerAbre(t *testing.T) {
	var hits int
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	vehiculos := backend.NewVehiculosClient(cliente)
	for i := 0; i < 5; i++ {
		_, err := vehiculos.List(context.Background())
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	}

	hitsAntes := hits
	// Con el circuito abierto ya no debe llegar tráfico al backend.
	for i := 0; i < 3; i++ {
		_, err := vehiculos.List(context.Background())
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	}
	assert.Equal(t, hitsAntes, hits, "el breaker abierto no debe dejar pasar llamadas")
}

// Un 404 no abre el circuito: es una respuesta válida del backend.
func TestClient_NotFoundNoAbreElCircuito(t *testing.T) {
	var hits int
	cliente, _ := newCliente(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "no existe", http.StatusNotFound)
	}))

	vehiculos := backend.NewVehiculosClient(cliente)
	for i := 0; i < 6; i++ {
		_, err := vehiculos.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, 6, hits, "todas las llamadas deben llegar al backend")
}
