package service

import (
	"errors"
	"testing"
	"time"
)

const secretTeste = "segredo-de-teste"

func TestGerarEParseAccessToken(t *testing.T) {
	agora := time.Now()
	token, err := GerarAccessToken(123, secretTeste, agora)
	if err != nil {
		t.Fatalf("GerarAccessToken: %v", err)
	}

	usuarioID, exp, err := ParseAccessToken(token, secretTeste)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if usuarioID != 123 {
		t.Errorf("usuarioID = %d, esperado 123", usuarioID)
	}

	esperado := agora.Add(AccessTokenTTL)
	if diff := exp.Sub(esperado); diff < -time.Second || diff > time.Second {
		t.Errorf("exp = %v, esperado ~%v", exp, esperado)
	}
}

func TestParseAccessTokenSecretErrado(t *testing.T) {
	token, err := GerarAccessToken(1, secretTeste, time.Now())
	if err != nil {
		t.Fatalf("GerarAccessToken: %v", err)
	}
	if _, _, err := ParseAccessToken(token, "outro-segredo"); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("secret errado deveria dar ErrTokenInvalido, veio %v", err)
	}
}

func TestParseAccessTokenExpirado(t *testing.T) {
	// emitido no passado distante: exp já venceu
	token, err := GerarAccessToken(1, secretTeste, time.Now().Add(-48*time.Hour))
	if err != nil {
		t.Fatalf("GerarAccessToken: %v", err)
	}
	if _, _, err := ParseAccessToken(token, secretTeste); !errors.Is(err, ErrTokenExpirado) {
		t.Errorf("token vencido deveria dar ErrTokenExpirado, veio %v", err)
	}
}

func TestParseAccessTokenLixo(t *testing.T) {
	if _, _, err := ParseAccessToken("nao-e-um-jwt", secretTeste); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("token lixo deveria dar ErrTokenInvalido, veio %v", err)
	}
}

func TestTokensDistintosPorJTI(t *testing.T) {
	agora := time.Now()
	a, err := GerarAccessToken(5, secretTeste, agora)
	if err != nil {
		t.Fatalf("GerarAccessToken: %v", err)
	}
	b, err := GerarAccessToken(5, secretTeste, agora)
	if err != nil {
		t.Fatalf("GerarAccessToken: %v", err)
	}
	if a == b {
		t.Error("dois logins do mesmo usuário devem produzir tokens distintos (jti)")
	}
}
