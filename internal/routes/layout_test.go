package routes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/automotora-front/internal/routes"
)

func TestResolverLayout_RutaPublicaConNavbar(t *testing.T) {
	l := routes.ResolverLayout(routes.Nueva(), "/")

	assert.False(t, l.EsSeccionAdmin)
	assert.True(t, l.MostrarNavbar)
	assert.Equal(t, "Automotora Front", l.Titulo)
	assert.NotEmpty(t, l.Enlaces)
}

func TestResolverLayout_LoginSinNavbar(t *testing.T) {
	l := routes.ResolverLayout(routes.Nueva(), "/login")

	assert.False(t, l.EsSeccionAdmin)
	assert.False(t, l.MostrarNavbar)
}

// La sección admin muestra su barra aunque el descriptor no declare MostrarNavbar.
func TestResolverLayout_SeccionAdmin(t *testing.T) {
	l := routes.ResolverLayout(routes.Nueva(), "/admin/vehiculos")

	assert.True(t, l.EsSeccionAdmin)
	assert.True(t, l.MostrarNavbar)
	assert.Equal(t, "Admin Automotora", l.Titulo)
	assert.Equal(t, "/admin/dashboard", l.Enlaces[0].Ruta)
}

// "/administracion" no comparte el prefijo reservado: no es sección admin.
func TestResolverLayout_PrefijoExacto(t *testing.T) {
	l := routes.ResolverLayout(routes.Nueva(), "/administracion")

	assert.False(t, l.EsSeccionAdmin)
	assert.False(t, l.MostrarNavbar)
}

// Path sin calce fuera de admin: sin navbar.
func TestResolverLayout_SinCalce(t *testing.T) {
	l := routes.ResolverLayout(routes.Nueva(), "/ruta/inexistente")

	assert.False(t, l.EsSeccionAdmin)
	assert.False(t, l.MostrarNavbar)
}
