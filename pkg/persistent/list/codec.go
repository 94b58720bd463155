package list

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON decodes a JSON array into a new list and stores it in *l. The
// list previously held by *l is not modified. JSON null decodes to the empty
// list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "decode list")
	}
	*l = FromSlice(s)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l List[T]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence into a new list and stores it in *l.
// The list previously held by *l is not modified.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.Errorf("decode list: line %d: expected a sequence", value.Line)
	}
	var s []T
	if err := value.Decode(&s); err != nil {
		return errors.Wrap(err, "decode list")
	}
	*l = FromSlice(s)
	return nil
}
