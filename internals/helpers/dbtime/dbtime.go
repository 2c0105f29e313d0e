// Package dbtime concentra o parsing dos formatos de data/hora usados no
// banco: data civil "YYYY-MM-DD" (sem timezone) e hora "HH:MM:SS".
package dbtime

import (
	"fmt"
	"time"
)

const (
	LayoutData = "2006-01-02"
	LayoutHora = "15:04:05"
)

// ValidarDataISO aceita somente "YYYY-MM-DD" estrito. time.Parse já rejeita
// datas que não existem no calendário (ex.: 2024-02-30), então não há o
// rollover silencioso do Date() de JS.
func ValidarDataISO(s string) (time.Time, error) {
	t, err := time.Parse(LayoutData, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", s)
	}
	return t, nil
}

// IndiceDiaSemana devolve 0=domingo..6=sábado, a convenção da grade semanal.
func IndiceDiaSemana(t time.Time) int {
	return int(t.Weekday())
}

// HoraParaSegundos converte "HH:MM:SS" em segundos desde a meia-noite.
// A aritmética de intervalos trabalha na granularidade completa do formato:
// um intervalo de 30 segundos é válido e uma sobreposição de 30 segundos é
// sobreposição.
func HoraParaSegundos(s string) (int, error) {
	t, err := time.Parse(LayoutHora, s)
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q: esperado HH:MM:SS", s)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
