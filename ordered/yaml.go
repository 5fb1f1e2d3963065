package ordered

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalYAML implements yaml.Marshaler, emitting keys in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	return m.yamlNode()
}

func (m *Map[V]) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, m.Len()*2),
	}
	for k, v := range m.All() {
		valNode, err := ToYAMLNode(v)
		if err != nil {
			return nil, fmt.Errorf("ordered: key %q: %w", k, err)
		}
		node.Content = append(node.Content, scalarNode("!!str", k), valNode)
	}
	return node, nil
}

type yamlNoder interface {
	yamlNode() (*yaml.Node, error)
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// ToYAMLNode converts a JSON-compatible value tree to a yaml.Node.
// Plain Go maps are emitted with sorted keys; *Map values keep their order.
func ToYAMLNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case yamlNoder:
		return val.yamlNode()
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case float64:
		return scalarNode("!!float", strconv.FormatFloat(val, 'f', -1, 64)), nil
	case string:
		return scalarNode("!!str", val), nil
	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := ToYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case map[string]any:
		return FromMap(val).yamlNode()
	default:
		// Anything else goes through its JSON form
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to yaml.Node: %w", v, err)
		}
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return ToYAMLNode(result)
	}
}
