package model

// ForeignKey declares that Field holds primary keys of documents stored in Collection
type ForeignKey struct {
	Field      string
	Collection string
}

// EntitySchema is the static description of one entity type.
// The order of ForeignKeys defines the alias numbering of generated joins.
type EntitySchema struct {
	Collection  string
	ForeignKeys []ForeignKey
}

// ForeignKeyDescriptor is the resolved foreign key information of an entity type
type ForeignKeyDescriptor struct {
	IsForeignKey bool
	ForeignKeys  []ForeignKey
}

// NoForeignKeys is the descriptor of every entity type without declared relations.
var NoForeignKeys = ForeignKeyDescriptor{}

func (s EntitySchema) Descriptor() ForeignKeyDescriptor {
	if len(s.ForeignKeys) == 0 {
		return NoForeignKeys
	}
	keys := make([]ForeignKey, len(s.ForeignKeys))
	copy(keys, s.ForeignKeys)
	return ForeignKeyDescriptor{IsForeignKey: true, ForeignKeys: keys}
}
