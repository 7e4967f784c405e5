package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore implementación en memoria de session.Store.
type memStore struct {
	p *entity.Principal
}

func (s *memStore) Load() (*entity.Principal, error) { return s.p, nil }
func (s *memStore) Save(p *entity.Principal) error   { s.p = p; return nil }
func (s *memStore) Clear() error                     { s.p = nil; return nil }

// pdfFijo generador de comprobantes que devuelve bytes fijos.
type pdfFijo struct{}

func (pdfFijo) Generar(*entity.Reserva) ([]byte, error) { return []byte("%PDF-fake"), nil }

func newBackend(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 2*time.Second, nil)
}

func sesionCon(p *entity.Principal) *auth.Context {
	ctx := auth.NewContext(&memStore{p: p}, nil)
	ctx.Inicializar()
	return ctx
}

func jsonDecode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func jsonEncode(w http.ResponseWriter, in any) {
	_ = json.NewEncoder(w).Encode(in)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo: caché y purga
// ──────────────────────────────────────────────────────────────────────────────

// El catálogo se sirve de caché hasta que una mutación admin lo purga.
func TestCatalogo_CacheYPurgaTrasMutacion(t *testing.T) {
	var hits int
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/vehiculos":
			hits++
			w.Write([]byte(`[{"id":1,"modelo":"Corolla","anio":2022,"precio":18990000},{"id":4,"modelo":"Yaris","anio":2023,"precio":13990000}]`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	vehiculosCli := backend.NewVehiculosClient(cliente)
	catalogoUC := usecase.NewCatalogoUseCase(vehiculosCli, 16, time.Minute)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculosCli, catalogoUC)

	out, err := catalogoUC.Catalogo(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, 4, out.Vehiculos[0].ID, "los recién cargados van primero")

	_, err = catalogoUC.Catalogo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "la segunda lectura debe salir del caché")

	require.NoError(t, vehiculoUC.Delete(context.Background(), 1))
	_, err = catalogoUC.Catalogo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, hits, "tras la mutación el caché debe repoblarse")
}

// El precio llega formateado para la vista y la imagen faltante usa el respaldo.
func TestCatalogo_FormatoParaVista(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"modelo":"Corolla","anio":2022,"precio":18990000}]`))
	}))
	catalogoUC := usecase.NewCatalogoUseCase(backend.NewVehiculosClient(cliente), 16, time.Minute)

	out, err := catalogoUC.Catalogo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$18.990.000", out.Vehiculos[0].PrecioFmt)
	assert.NotEmpty(t, out.Vehiculos[0].ImagenURL, "sin imagen del backend debe usarse el respaldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth: login y destino por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginVendedorEntraAlDashboard(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"nombre":"Ana","correo":"ana@a.cl","rol":{"id":2,"nombre":"vendedor"}}`))
	}))
	sesion := sesionCon(nil)
	authUC := usecase.NewAuthUseCase(backend.NewUsuariosClient(cliente), sesion)

	out, err := authUC.Login(context.Background(), dto.LoginRequest{Correo: "ana@a.cl", Contrasena: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", out.Destino)
	assert.Equal(t, "¡Bienvenido Ana!", out.Mensaje.Mensaje)

	principal := sesion.Principal()
	require.NotNil(t, principal, "el login debe fijar la sesión")
	assert.True(t, principal.EsElevado())
}

func TestAuth_LoginClienteEntraALaHome(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":9,"nombre":"Luis","correo":"luis@a.cl","rol":{"id":3,"nombre":"cliente"}}`))
	}))
	authUC := usecase.NewAuthUseCase(backend.NewUsuariosClient(cliente), sesionCon(nil))

	out, err := authUC.Login(context.Background(), dto.LoginRequest{Correo: "luis@a.cl", Contrasena: "x"})
	require.NoError(t, err)
	assert.Equal(t, "/", out.Destino)
}

// Un login fallido no toca la sesión vigente.
func TestAuth_LoginFallidoNoTocaLaSesion(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	previa := &entity.Principal{ID: 7, Nombre: "Ana", Rol: &entity.RolRef{ID: 2}}
	sesion := sesionCon(previa)
	authUC := usecase.NewAuthUseCase(backend.NewUsuariosClient(cliente), sesion)

	_, err := authUC.Login(context.Background(), dto.LoginRequest{Correo: "otra@a.cl", Contrasena: "mala"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)

	principal := sesion.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, 7, principal.ID, "la sesión previa debe quedar intacta")
}

func TestAuth_PerfilSinSesion(t *testing.T) {
	authUC := usecase.NewAuthUseCase(nil, sesionCon(nil))
	_, err := authUC.Perfil()
	assert.ErrorIs(t, err, domain.ErrSinSesion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reservas
// ──────────────────────────────────────────────────────────────────────────────

// Crear congela el precio vigente del vehículo y parte en estado pendiente.
func TestReserva_CrearCongelaPrecio(t *testing.T) {
	var creada entity.Reserva
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/vehiculos/4":
			w.Write([]byte(`{"id":4,"modelo":"Yaris","anio":2023,"precio":13990000}`))
		case r.Method == http.MethodGet && r.URL.Path == "/estados-reserva":
			w.Write([]byte(`[{"id":1,"estado":"pendiente"},{"id":2,"estado":"confirmada"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/reservas":
			require.NoError(t, jsonDecode(r, &creada))
			creada.ID = 31
			jsonEncode(w, creada)
		default:
			http.NotFound(w, r)
		}
	}))
	uc := usecase.NewReservaUseCase(
		backend.NewReservasClient(cliente),
		backend.NewVehiculosClient(cliente),
		backend.NewCatalogosClient(cliente),
		pdfFijo{},
	)

	principal := &entity.Principal{ID: 7, Nombre: "Ana", Rol: &entity.RolRef{ID: 3}}
	out, err := uc.Crear(context.Background(), principal, 4, dto.CrearReservaRequest{})
	require.NoError(t, err)

	assert.Equal(t, 31, out.ID)
	assert.Equal(t, "13990000", creada.Precio.String(), "el precio debe congelarse al del vehículo")
	assert.Equal(t, 7, creada.Usuario.ID)
	assert.Equal(t, 1, creada.Estado.ID, "la reserva parte pendiente")
}

func TestReserva_CrearSinSesion(t *testing.T) {
	uc := usecase.NewReservaUseCase(nil, nil, nil, pdfFijo{})
	_, err := uc.Crear(context.Background(), nil, 4, dto.CrearReservaRequest{})
	assert.ErrorIs(t, err, domain.ErrSinSesion)
}

// El comprobante solo sale para el dueño de la reserva o un rol elevado.
func TestReserva_ComprobantePropiedad(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":31,"usuario":{"id":7,"nombre":"Ana"},"fechaReserva":"2026-08-30T12:00:00Z","precio":13990000,"estado":{"id":1,"estado":"pendiente"}}`))
	}))
	uc := usecase.NewReservaUseCase(
		backend.NewReservasClient(cliente), nil,
		backend.NewCatalogosClient(cliente), pdfFijo{},
	)

	dueno := &entity.Principal{ID: 7, Rol: &entity.RolRef{ID: 3}}
	pdfBytes, err := uc.Comprobante(context.Background(), dueno, 31)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)

	ajeno := &entity.Principal{ID: 99, Rol: &entity.RolRef{ID: 3}}
	_, err = uc.Comprobante(context.Background(), ajeno, 31)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	vendedor := &entity.Principal{ID: 99, Rol: &entity.RolRef{ID: 2}}
	_, err = uc.Comprobante(context.Background(), vendedor, 31)
	assert.NoError(t, err, "un rol elevado puede descargar cualquier comprobante")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios admin: cambio de rol
// ──────────────────────────────────────────────────────────────────────────────

// CambiarRol lee el usuario y reenvía el recurso completo con el rol nuevo.
func TestUsuario_CambiarRol(t *testing.T) {
	var enviado entity.Usuario
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/usuarios/9":
			w.Write([]byte(`{"id":9,"nombre":"Luis","correo":"luis@a.cl","rol":{"id":3,"nombre":"cliente"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/usuarios/9":
			require.NoError(t, jsonDecode(r, &enviado))
			jsonEncode(w, enviado)
		default:
			http.NotFound(w, r)
		}
	}))
	uc := usecase.NewUsuarioUseCase(backend.NewUsuariosClient(cliente), backend.NewCatalogosClient(cliente))

	out, err := uc.CambiarRol(context.Background(), 9, dto.CambiarRolRequest{RolID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, enviado.Rol.RolID(), "el PUT debe llevar el rol nuevo")
	assert.Equal(t, "Luis", enviado.Nombre, "el PUT debe llevar el recurso completo")
	assert.Equal(t, 2, out.RolID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	cliente := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/vehiculos":
			w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
		case "/marcas":
			w.Write([]byte(`[{"id":1},{"id":2}]`))
		case "/usuarios":
			w.Write([]byte(`[{"id":1}]`))
		case "/reservas":
			w.Write([]byte(`[{"id":1,"fechaReserva":"2026-08-30T12:00:00Z","precio":1,"estado":{"id":1,"estado":"pendiente"}},{"id":2,"fechaReserva":"2026-08-30T12:00:00Z","precio":1,"estado":{"id":2,"estado":"confirmada"}}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	uc := usecase.NewDashboardUseCase(
		backend.NewVehiculosClient(cliente),
		backend.NewMarcasClient(cliente),
		backend.NewUsuariosClient(cliente),
		backend.NewReservasClient(cliente),
	)

	out, err := uc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalVehiculos)
	assert.Equal(t, 2, out.TotalMarcas)
	assert.Equal(t, 1, out.TotalUsuarios)
	assert.Equal(t, 2, out.Reservas.Total)
	assert.Equal(t, 1, out.Reservas.Pendiente)
	assert.Equal(t, 1, out.Reservas.Confirmada)
}
