package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt aceita números, strings numéricas ou null vindos da API do Mangools.
// Valores não numéricos viram "sem dado" em vez de erro de decodificação, para
// que a classificação de keywords seja total sobre qualquer resposta.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.Valid = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		// Tenta como float truncado (a API já retornou "12.0" em rank_change)
		fval, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		value = int(fval)
	}

	f.Value = value
	f.Valid = true
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IntPtr devolve o valor como *int, nil quando ausente
func (f FlexInt) IntPtr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexFloat é o equivalente de FlexInt para campos fracionários (rank médio)
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Valid = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	f.Value = value
	f.Valid = true
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f FlexFloat) FloatPtr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
