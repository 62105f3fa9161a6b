package validate

import (
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/multierr"
)

var errMalformedBody = errors.New("malformed JSON body")

// DecodeJSON reads a JSON body into v and checks its tags.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return multierr.Append(ErrInvalidInput, errMalformedBody)
	}
	return Struct(v)
}
