package schema

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Types []TypeDescriptor `yaml:"types"`
}

func LoadConfiguration(data io.Reader) (*Registry, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema configuration: %w", err)
	}

	registry, _ := NewRegistry()

	for idx := range cfg.Types {
		err = registry.Register(&cfg.Types[idx])
		if err != nil {
			return nil, err
		}
	}

	return registry, nil
}
