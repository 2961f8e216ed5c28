package reports

import (
	"fmt"
	"strings"
)

// FoundDetails son los sub-campos que el form de "found pet" embebe
// dentro de description como string compuesto. Formato literal:
//
//	Found on: <fecha>, Size: <size>, Condition: <condition>, Temporary care: <tempCare>. <texto libre>
//
// La fecha corta en la primera coma; size/condition/tempCare son tokens
// simples. Encoding frágil a propósito: replica el contrato de la app
// original para que los reportes viejos sigan parseando.
type FoundDetails struct {
	FoundDate string
	Size      string
	Condition string
	TempCare  string
	FreeText  string
}

const (
	labelFoundOn   = "Found on: "
	labelSize      = ", Size: "
	labelCondition = ", Condition: "
	labelTempCare  = ", Temporary care: "
)

// EncodeFoundDetails produce el string compuesto para description.
func EncodeFoundDetails(d FoundDetails) string {
	return fmt.Sprintf("Found on: %s, Size: %s, Condition: %s, Temporary care: %s. %s",
		d.FoundDate, d.Size, d.Condition, d.TempCare, d.FreeText)
}

// ParseFoundDetails intenta recuperar los sub-campos desde description.
// Si el texto no calza con el formato, degrada: sub-campos vacíos y todo
// el texto como FreeText (ok == false).
func ParseFoundDetails(description string) (FoundDetails, bool) {
	degraded := FoundDetails{FreeText: description}

	rest, found := strings.CutPrefix(description, labelFoundOn)
	if !found {
		return degraded, false
	}

	date, rest, found := strings.Cut(rest, labelSize)
	if !found || strings.Contains(date, ",") {
		return degraded, false
	}

	size, rest, found := strings.Cut(rest, labelCondition)
	if !found || !singleToken(size) {
		return degraded, false
	}

	condition, rest, found := strings.Cut(rest, labelTempCare)
	if !found || !singleToken(condition) {
		return degraded, false
	}

	tempCare, free, found := strings.Cut(rest, ". ")
	if !found {
		// Permite el caso sin texto libre: "... care: Yes."
		tempCare, found = strings.CutSuffix(rest, ".")
		if !found || !singleToken(tempCare) {
			return degraded, false
		}
		free = ""
	}
	if !singleToken(tempCare) {
		return degraded, false
	}

	return FoundDetails{
		FoundDate: date,
		Size:      size,
		Condition: condition,
		TempCare:  tempCare,
		FreeText:  free,
	}, true
}

func singleToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, " ,.")
}
