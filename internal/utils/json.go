package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

var ErrEmptyBody = errors.New("request body is empty")

// MaxBodyBytes limita o corpo aceito pelos handlers (usado com http.MaxBytesReader).
const MaxBodyBytes = 64 << 10

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde {"error": msg}.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, map[string]string{"error": msg})
}

func BadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, msg)
}

/*
DecodeStrict decodifica JSON rejeitando chaves desconhecidas
e garantindo que exista exatamente UM objeto JSON.
*/
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	// qualquer coisa depois do objeto (inclusive "}" ou "]" soltos) é erro
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected additional JSON content")
	}
	return nil
}

// DecodeErrorMessage deixa a mensagem do encoding/json mais curta para o cliente.
func DecodeErrorMessage(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "request body too large"
	}
	msg := err.Error()
	msg = strings.TrimPrefix(msg, "json: ")
	return "invalid json: " + msg
}
