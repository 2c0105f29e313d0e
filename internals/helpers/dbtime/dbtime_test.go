package dbtime

import (
	"testing"
	"time"
)

func TestValidarDataISO(t *testing.T) {
	casos := []struct {
		nome    string
		entrada string
		valida  bool
	}{
		{"data comum", "2025-03-10", true},
		{"ano bissexto", "2024-02-29", true},
		{"dia inexistente", "2024-02-30", false},
		{"mes 13", "2025-13-01", false},
		{"formato BR", "10/03/2025", false},
		{"sem zero a esquerda", "2025-3-10", false},
		{"com hora junto", "2025-03-10T10:00:00", false},
		{"vazia", "", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := ValidarDataISO(c.entrada)
			if c.valida && err != nil {
				t.Fatalf("ValidarDataISO(%q): erro inesperado %v", c.entrada, err)
			}
			if !c.valida && err == nil {
				t.Fatalf("ValidarDataISO(%q): esperava erro", c.entrada)
			}
		})
	}
}

func TestIndiceDiaSemana(t *testing.T) {
	casos := []struct {
		data   string
		indice int
	}{
		{"2025-03-09", 0}, // domingo
		{"2025-03-10", 1}, // segunda
		{"2025-03-15", 6}, // sábado
	}
	for _, c := range casos {
		dt, err := time.Parse(LayoutData, c.data)
		if err != nil {
			t.Fatalf("parse %q: %v", c.data, err)
		}
		if got := IndiceDiaSemana(dt); got != c.indice {
			t.Errorf("IndiceDiaSemana(%s) = %d, esperado %d", c.data, got, c.indice)
		}
	}
}

func TestHoraParaSegundos(t *testing.T) {
	casos := []struct {
		hora     string
		segundos int
	}{
		{"00:00:00", 0},
		{"08:30:00", 30600},
		// os segundos contam: 08:00:30 ≠ 08:00:00
		{"08:00:30", 28830},
		{"23:59:59", 86399},
	}
	for _, c := range casos {
		got, err := HoraParaSegundos(c.hora)
		if err != nil {
			t.Fatalf("HoraParaSegundos(%q): %v", c.hora, err)
		}
		if got != c.segundos {
			t.Errorf("HoraParaSegundos(%q) = %d, esperado %d", c.hora, got, c.segundos)
		}
	}

	invalidas := []string{"25:00:00", "24:00:00", "08:30", "8:30:00", "08:61:00", "08:00:61", "", "abc"}
	for _, h := range invalidas {
		if _, err := HoraParaSegundos(h); err == nil {
			t.Errorf("HoraParaSegundos(%q): esperava erro", h)
		}
	}
}
