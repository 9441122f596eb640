package model

import (
	"context"
	"reflect"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
)

// Connection is a reusable channel to one database. A connection is owned by a single
// caller while borrowed from the pool.
type Connection interface {
	Send(ctx context.Context, payload rest.Payload) (*rest.Result, error)
}

// ConnectionFactory creates connections for the settings of one database
type ConnectionFactory func(settings DatabaseSettings) Connection

// Serializer converts entities to and from request/response bodies
type Serializer interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// ClientOptions are options for ArangoClient creation
type ClientOptions struct {
	// ConnectionFactory overrides the default HTTP connection.
	ConnectionFactory ConnectionFactory

	// Serializer overrides the JSON serializer built from DatabaseSettings.Serialization.
	Serializer func(settings DatabaseSettings) Serializer

	// Schemas resolves collections and foreign keys of entity types. When nil, the
	// collection of an entity is its type name and no foreign keys are known.
	Schemas SchemaResolver
}

// SchemaResolver maps entity types to their collection and foreign keys
type SchemaResolver interface {
	CollectionName(entityType reflect.Type) string
	ForeignKeys(entityType reflect.Type) ForeignKeyDescriptor
}
