package validators

import "strings"

// IsEmailValid faz uma checagem estrutural simples: algo@dominio.tld.
// Validação de entrega real fica por conta do provedor.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.Contains(email[:at], " ") || strings.Contains(domain, " ") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return true
}
