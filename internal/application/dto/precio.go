package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// La SPA formateaba con precio.toLocaleString(); aquí el equivalente es un
// printer es-CL, para que "$18.990.000" salga igual en todas las pantallas.
var printerCLP = message.NewPrinter(language.MustParse("es-CL"))

// FormatearPrecio devuelve el precio en pesos chilenos para vista ("$18.990.000").
func FormatearPrecio(p decimal.Decimal) string {
	return printerCLP.Sprintf("$%d", p.IntPart())
}
