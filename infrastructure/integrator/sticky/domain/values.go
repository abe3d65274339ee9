package stickydomain

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Amount aceita valores monetários enviados como string ("12.50") ou número (12.5)
type Amount struct {
	decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(value)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		// Valores inválidos contam como zero, como a plataforma trata campos vazios
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = value
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.StringFixed(2))), nil
}

// Count aceita contadores enviados como string ("12") ou número (12)
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		*c = 0
		return nil
	}

	*c = Count(value)
	return nil
}

// IDList aceita listas de identificadores numéricos ou string
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		// Algumas respostas trazem um único identificador fora de uma lista
		var single any
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		raw = []any{single}
	}

	ids := make(IDList, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if v != "" {
				ids = append(ids, v)
			}
		case float64:
			ids = append(ids, strconv.FormatInt(int64(v), 10))
		}
	}

	*l = ids
	return nil
}

// Code aceita códigos de resposta enviados como string ou número
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	*c = Code(strings.TrimSpace(string(bytes.Trim(data, `"`))))
	return nil
}
