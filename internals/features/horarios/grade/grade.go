// Package grade define a grade semanal de funcionamento: 7 entradas
// (0=domingo..6=sábado), cada uma com a lista ordenada de intervalos
// {inicio, fim} em que a sala pode ser reservada naquele dia.
//
// Cada intervalo da grade é um slot discreto: a unidade atômica de reserva.
package grade

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"reservasalas_backend/internals/helpers/dbtime"
)

const DiasSemana = 7

type Intervalo struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// Igual compara por igualdade exata de limites. A ocupação de slot usa essa
// política: reserva só ocupa o slot cujos limites batem exatamente.
func (i Intervalo) Igual(o Intervalo) bool {
	return i.Inicio == o.Inicio && i.Fim == o.Fim
}

// GradeSemanal indexa os intervalos por dia da semana.
type GradeSemanal [][]Intervalo

// Parse desserializa e valida uma grade vinda de coluna JSONB ou payload.
func Parse(raw datatypes.JSON) (GradeSemanal, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("grade ausente")
	}
	var g GradeSemanal
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("grade malformada: %w", err)
	}
	if err := g.Validar(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validar exige 7 entradas e, por dia, intervalos bem formados
// (HH:MM:SS, inicio < fim), ordenados por início e sem sobreposição.
func (g GradeSemanal) Validar() error {
	if len(g) != DiasSemana {
		return fmt.Errorf("grade deve ter %d entradas (uma por dia da semana), recebidas %d", DiasSemana, len(g))
	}
	for dia, intervalos := range g {
		fimAnterior := -1
		for idx, iv := range intervalos {
			ini, err := dbtime.HoraParaSegundos(iv.Inicio)
			if err != nil {
				return fmt.Errorf("dia %d, intervalo %d: %w", dia, idx, err)
			}
			fim, err := dbtime.HoraParaSegundos(iv.Fim)
			if err != nil {
				return fmt.Errorf("dia %d, intervalo %d: %w", dia, idx, err)
			}
			if fim <= ini {
				return fmt.Errorf("dia %d, intervalo %d: fim %s deve ser maior que inicio %s", dia, idx, iv.Fim, iv.Inicio)
			}
			if ini < fimAnterior {
				return fmt.Errorf("dia %d, intervalo %d: sobrepõe ou desordena o intervalo anterior", dia, idx)
			}
			fimAnterior = fim
		}
	}
	return nil
}

// Dia devolve os intervalos do dia (0=domingo..6=sábado). Grade nula ou dia
// sem intervalos significam sala fechada naquele dia.
func (g GradeSemanal) Dia(indice int) []Intervalo {
	if g == nil || indice < 0 || indice >= len(g) {
		return nil
	}
	return g[indice]
}

// Clonar faz cópia profunda por valor — é o que o "copiar horário para sala"
// persiste: a sala guarda a própria cópia, não uma referência ao molde.
func (g GradeSemanal) Clonar() GradeSemanal {
	if g == nil {
		return nil
	}
	out := make(GradeSemanal, len(g))
	for dia, intervalos := range g {
		out[dia] = make([]Intervalo, len(intervalos))
		copy(out[dia], intervalos)
	}
	return out
}

// JSON serializa a grade para persistência em coluna JSONB.
func (g GradeSemanal) JSON() (datatypes.JSON, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar grade: %w", err)
	}
	return datatypes.JSON(b), nil
}
