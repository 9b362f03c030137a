package adsdomain

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value guarda qualquer campo escalar da API como texto. A API envia int64 como
// string e double como número; a conversão numérica fica com o integrador.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	*v = Value(data)
	return nil
}

func (v Value) String() string {
	return string(v)
}

func (v Value) IsEmpty() bool {
	return v == ""
}
