package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domicilia/backoffice-api/pkg/slug"
)

func TestMake(t *testing.T) {
	casos := map[string]string{
		"Société Générale":       "societe-generale",
		"Le Café  des Artisans!": "le-cafe-des-artisans",
		"  Domicilia Paris 9 ":   "domicilia-paris-9",
		"ÀÉÎÕÜ":                  "aeiou",
		"---":                    "",
	}
	for in, want := range casos {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}
