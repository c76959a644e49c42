package booking

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// time.Parse aceita dígitos sem zero à esquerda; o round-trip garante que a
// chave armazenada fica sempre na forma canônica.
func isValidDate(date string) bool {
	t, err := time.Parse(dateLayout, date)
	return err == nil && t.Format(dateLayout) == date
}

func isValidTime(hm string) bool {
	t, err := time.Parse(timeLayout, hm)
	return err == nil && t.Format(timeLayout) == hm
}
