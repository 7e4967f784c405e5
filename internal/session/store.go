// Package session persiste el principal autenticado entre reinicios del proceso,
// igual que la SPA lo guardaba en localStorage bajo una clave fija. Es una frontera
// de serialización tonta: sin red y sin validación de semántica de roles.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// Store puerto de persistencia del registro único de sesión.
type Store interface {
	// Load devuelve el principal guardado, o nil si no hay registro o está corrupto.
	// Un registro ilegible nunca es un error duro: el arranque debe continuar.
	Load() (*entity.Principal, error)
	// Save sobreescribe el registro completo de forma atómica.
	Save(p *entity.Principal) error
	// Clear elimina el registro. Es idempotente.
	Clear() error
}

var _ Store = (*FileStore)(nil)

// FileStore implementación de Store sobre un archivo JSON local.
type FileStore struct {
	path string
}

// NewFileStore construye el store sobre la ruta indicada.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load lee el registro de sesión. Archivo inexistente o JSON corrupto se tratan
// como "sin sesión" (nil, nil); solo fallas de E/S reales devuelven error.
func (s *FileStore) Load() (*entity.Principal, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var p entity.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		// Registro corrupto: se descarta en vez de abortar el arranque.
		return nil, nil
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

// Save escribe el registro completo vía archivo temporal + rename, para que un
// lector nunca observe un estado intermedio.
func (s *FileStore) Save(p *entity.Principal) error {
	if p == nil {
		return fmt.Errorf("guardar sesión: principal nil")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Clear elimina el registro; borrar un store vacío no es un error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}
