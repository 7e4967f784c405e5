package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/session"
)

func newStore(t *testing.T) *session.FileStore {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

// Save seguido de Load debe devolver un principal igual en id, nombre y rol.
func TestFileStore_SaveLoad_RoundTrip(t *testing.T) {
	store := newStore(t)

	p := &entity.Principal{
		ID:     7,
		Nombre: "Ana",
		Rol:    &entity.RolRef{ID: entity.RolVendedor, Nombre: "vendedor"},
	}
	require.NoError(t, store.Save(p))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, entity.RolVendedor, got.RolID())
}

// Sin registro previo, Load devuelve nil sin error.
func TestFileStore_Load_SinRegistro(t *testing.T) {
	store := newStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Un registro corrupto se trata como "sin sesión", nunca como falla de arranque.
func TestFileStore_Load_RegistroCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	store := session.NewFileStore(path)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Rol guardado como id desnudo (formato histórico) también debe normalizar.
func TestFileStore_Load_RolDesnudo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":3,"nombre":"Pedro","rol":3}`), 0o600))

	store := session.NewFileStore(path)
	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.RolCliente, got.RolID())
	assert.False(t, got.EsElevado())
}

// Clear es idempotente: limpiar un store ya vacío no es un error.
func TestFileStore_Clear_Idempotente(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(&entity.Principal{ID: 1, Nombre: "Ana"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Save sobreescribe el registro anterior por completo.
func TestFileStore_Save_Sobreescribe(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(&entity.Principal{ID: 1, Nombre: "Ana", Rol: &entity.RolRef{ID: entity.RolAdmin}}))
	require.NoError(t, store.Save(&entity.Principal{ID: 2, Nombre: "Luis", Rol: &entity.RolRef{ID: entity.RolCliente}}))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, "Luis", got.Nombre)
	assert.Equal(t, entity.RolCliente, got.RolID())
}
