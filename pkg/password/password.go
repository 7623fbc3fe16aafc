package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de trabajo de bcrypt. 10 equilibra latencia de login y
// resistencia a fuerza bruta sobre hashes filtrados.
const Cost = 10

// Hash genera el hash bcrypt del password en claro.
// El error solo ocurre ante fallo interno de la librería; el caller lo trata como fatal para la petición.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Verify compara un password en claro contra un hash almacenado.
// Nunca devuelve error en un mismatch: un hash malformado también cuenta como no-match.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
