// Package format formatea números y fechas para los reportes en pt-BR.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Quantity formatea una cantidad con separador de millares pt-BR
// (ej. 20685 -> "20.685"). Los decimales se preservan hasta donde existan.
func Quantity(d decimal.Decimal) string {
	if d.IsInteger() {
		return ptBR.Sprint(number.Decimal(d.IntPart()))
	}
	f, _ := d.Float64()
	return ptBR.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}
