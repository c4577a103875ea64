package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Longitud del secreto en claro (caracteres alfanuméricos).
const secretLength = 40

const secretCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSecret genera el secreto aleatorio de un token opaco.
// El cliente recibe el secreto una sola vez; en base de datos solo se guarda su hash.
func NewSecret() (string, error) {
	buf := make([]byte, secretLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: generar secreto: %w", err)
	}
	for i, b := range buf {
		buf[i] = secretCharset[int(b)%len(secretCharset)]
	}
	return string(buf), nil
}

// Hash devuelve el SHA-256 en hex del secreto, que es lo único que se persiste.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Compose arma el token en claro que viaja al cliente: "<id>|<secreto>".
// El id permite localizar la fila sin buscar por hash.
func Compose(id int64, secret string) string {
	return strconv.FormatInt(id, 10) + "|" + secret
}

// Split separa un token en claro en id y secreto. Error si el formato no es "<id>|<secreto>".
func Split(plain string) (int64, string, error) {
	idPart, secret, ok := strings.Cut(plain, "|")
	if !ok || secret == "" {
		return 0, "", fmt.Errorf("token: formato inválido")
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("token: id inválido")
	}
	return id, secret, nil
}

// Matches compara en tiempo constante el hash almacenado contra el secreto presentado.
func Matches(storedHash, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(Hash(secret))) == 1
}
