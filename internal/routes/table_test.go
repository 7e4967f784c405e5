package routes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/automotora-front/internal/routes"
)

// Calce exacto de rutas estáticas.
func TestTabla_Match_RutasEstaticas(t *testing.T) {
	tabla := routes.Nueva()

	d, ok := tabla.Match("/")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaHome, d.Nombre)
	assert.False(t, d.RequiereAdmin)
	assert.True(t, d.MostrarNavbar)

	d, ok = tabla.Match("/login")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaLogin, d.Nombre)
	assert.False(t, d.MostrarNavbar)

	d, ok = tabla.Match("/admin/vehiculos")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaAdminVehiculos, d.Nombre)
	assert.True(t, d.RequiereAdmin)
}

// ":param" calza cualquier segmento no vacío, pero un solo segmento.
func TestTabla_Match_SegmentosParametrizados(t *testing.T) {
	tabla := routes.Nueva()

	d, ok := tabla.Match("/vehiculo/42")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaVehiculoDetalle, d.Nombre)

	d, ok = tabla.Match("/vehiculo/abc")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaVehiculoDetalle, d.Nombre)

	// Dos segmentos extra no calzan el patrón de un parámetro: cae al centinela.
	d, ok = tabla.Match("/vehiculo/42/fotos/1")
	require.True(t, ok)
	assert.True(t, d.EsCatchAll())

	d, ok = tabla.Match("/admin/reservas/15")
	require.True(t, ok)
	assert.Equal(t, routes.PantallaAdminReservas, d.Nombre)
	assert.True(t, d.RequiereAdmin)
}

// Sin calce, siempre responde el centinela 404, nunca "no encontrado" duro.
func TestTabla_Match_Centinela(t *testing.T) {
	tabla := routes.Nueva()

	d, ok := tabla.Match("/no/existe/esta/ruta")
	require.True(t, ok)
	assert.True(t, d.EsCatchAll())
	assert.Equal(t, routes.PantallaNoEncontrada, d.Nombre)
	assert.False(t, d.RequiereAdmin)
}

// Gana el primer calce en orden de declaración.
func TestTabla_Match_PrimerCalceGana(t *testing.T) {
	tabla := routes.Tabla{
		{Ruta: "/x/:id", Nombre: "parametrizada"},
		{Ruta: "/x/fijo", Nombre: "fija"},
		{Ruta: "*", Nombre: "centinela"},
	}

	// "/x/fijo" calza ambas; debe ganar la declarada primero.
	d, ok := tabla.Match("/x/fijo")
	require.True(t, ok)
	assert.Equal(t, "parametrizada", d.Nombre)
}

// Una tabla sin centinela devuelve ok=false para paths sin calce.
func TestTabla_Match_SinCentinela(t *testing.T) {
	tabla := routes.Tabla{{Ruta: "/solo-esta", Nombre: "unica"}}

	_, ok := tabla.Match("/otra")
	assert.False(t, ok)
}

// El centinela de la tabla de la aplicación es el último descriptor.
func TestTabla_Nueva_CentinelaAlFinal(t *testing.T) {
	tabla := routes.Nueva()
	require.NotEmpty(t, tabla)
	assert.True(t, tabla[len(tabla)-1].EsCatchAll())
	for _, d := range tabla[:len(tabla)-1] {
		assert.False(t, d.EsCatchAll(), "solo el último descriptor puede ser catch-all")
	}
}
