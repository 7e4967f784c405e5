package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/session"
)

func newContext(t *testing.T) (*auth.Context, *session.FileStore) {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return auth.NewContext(store, nil), store
}

// Antes de Inicializar el contexto está en Initializing; después queda Ready.
func TestContext_Inicializar_TransicionUnica(t *testing.T) {
	ctx, _ := newContext(t)

	assert.True(t, ctx.Cargando(), "recién construido debe estar cargando")
	ctx.Inicializar()
	assert.False(t, ctx.Cargando())
	assert.Nil(t, ctx.Principal(), "sin registro previo el principal es nil")

	// Segunda llamada: sin efecto (la transición ocurre una sola vez por proceso).
	ctx.Inicializar()
	assert.False(t, ctx.Cargando())
}

// Login fija memoria y persiste; un contexto nuevo sobre el mismo store la recupera.
func TestContext_Login_PersisteYRestaura(t *testing.T) {
	ctx, store := newContext(t)
	ctx.Inicializar()

	p := &entity.Principal{ID: 7, Nombre: "Ana", Rol: &entity.RolRef{ID: entity.RolVendedor}}
	require.NoError(t, ctx.Login(p))

	got := ctx.Principal()
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Nombre)

	// "Recarga de página": contexto nuevo inicializado desde el mismo store.
	ctx2 := auth.NewContext(store, nil)
	assert.True(t, ctx2.Cargando())
	ctx2.Inicializar()
	assert.False(t, ctx2.Cargando())

	restaurado := ctx2.Principal()
	require.NotNil(t, restaurado)
	assert.Equal(t, 7, restaurado.ID)
	assert.Equal(t, "Ana", restaurado.Nombre)
	assert.Equal(t, entity.RolVendedor, restaurado.RolID())
	assert.True(t, restaurado.EsElevado())
}

// Logout dos veces seguidas deja el contexto en Ready(nil) ambas veces, sin error.
func TestContext_Logout_Idempotente(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Inicializar()

	require.NoError(t, ctx.Login(&entity.Principal{ID: 1, Nombre: "Ana", Rol: &entity.RolRef{ID: entity.RolAdmin}}))

	require.NoError(t, ctx.Logout())
	assert.Nil(t, ctx.Principal())
	assert.False(t, ctx.Cargando())

	require.NoError(t, ctx.Logout())
	assert.Nil(t, ctx.Principal())
	assert.False(t, ctx.Cargando())
}

// Logout es seguro incluso si nunca hubo sesión.
func TestContext_Logout_SinSesionPrevia(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Inicializar()

	require.NoError(t, ctx.Logout())
	assert.Nil(t, ctx.Principal())
}

// Principal devuelve una copia: mutarla no debe afectar el estado interno.
func TestContext_Principal_CopiaDefensiva(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Inicializar()
	require.NoError(t, ctx.Login(&entity.Principal{ID: 5, Nombre: "Ana", Rol: &entity.RolRef{ID: entity.RolAdmin}}))

	copia := ctx.Principal()
	copia.Nombre = "Otro"
	copia.Rol.ID = entity.RolCliente

	original := ctx.Principal()
	assert.Equal(t, "Ana", original.Nombre)
	assert.Equal(t, entity.RolAdmin, original.RolID())
}

// Si el store falla al cargar, el contexto igual queda Ready y deslogueado.
type storeConError struct{}

func (storeConError) Load() (*entity.Principal, error) { return nil, assert.AnError }
func (storeConError) Save(*entity.Principal) error     { return nil }
func (storeConError) Clear() error                     { return nil }

func TestContext_Inicializar_FallaDelStore_QuedaDeslogueado(t *testing.T) {
	ctx := auth.NewContext(storeConError{}, nil)
	ctx.Inicializar()

	assert.False(t, ctx.Cargando())
	assert.Nil(t, ctx.Principal())
}
