package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD) y elimina las marcas combinantes: "Société" -> "Societe".
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make genera un slug URL-safe a partir de un nombre de empresa.
// Quita acentos, pasa a minúsculas y colapsa todo lo no alfanumérico en guiones.
func Make(name string) string {
	clean, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		clean = name
	}
	clean = strings.ToLower(clean)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
