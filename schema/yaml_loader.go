package schema

import (
	"fmt"
	"os"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Collections []yamlCollection `yaml:"collections"`
}

type yamlCollection struct {
	Name        string           `yaml:"name"`
	ForeignKeys []yamlForeignKey `yaml:"foreignKeys"`
}

type yamlForeignKey struct {
	Field      string `yaml:"field"`
	Collection string `yaml:"collection"`
}

// LoadYAML reads collection schemas from filename; entries keep their file order
func (r *Registry) LoadYAML(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}
	return r.LoadYAMLBytes(data)
}

func (r *Registry) LoadYAMLBytes(data []byte) error {
	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return fmt.Errorf("unmarshalling YAML: %w", err)
	}

	for _, c := range yf.Collections {
		entitySchema := model.EntitySchema{Collection: c.Name}
		for _, fk := range c.ForeignKeys {
			entitySchema.ForeignKeys = append(entitySchema.ForeignKeys, model.ForeignKey{
				Field:      fk.Field,
				Collection: fk.Collection,
			})
		}
		if err := r.AddCollection(entitySchema); err != nil {
			return err
		}
	}
	logger.Infof("Loaded %d collection schemas", len(yf.Collections))
	return nil
}
