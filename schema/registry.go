// Package schema holds the static metadata of entity types: the collection each type is
// stored in and the ordered list of fields referencing other collections.
package schema

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/cache"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go/v3/logging"
)

var logger logging.Logger

func init() {
	logger = logging.GetLogger("arangobase")
}

// Registry maps entity types to their EntitySchema. It is populated during startup and
// read concurrently afterwards.
type Registry struct {
	mx          sync.RWMutex
	types       map[reflect.Type]model.EntitySchema
	collections map[string]model.EntitySchema
	descriptors *cache.DescriptorCache[reflect.Type, model.ForeignKeyDescriptor]
}

func NewRegistry() *Registry {
	return &Registry{
		types:       make(map[reflect.Type]model.EntitySchema),
		collections: make(map[string]model.EntitySchema),
		descriptors: cache.NewDescriptorCache[reflect.Type, model.ForeignKeyDescriptor](),
	}
}

// Register binds T to entitySchema. An empty collection defaults to the type name.
func Register[T any](r *Registry, entitySchema model.EntitySchema) {
	r.RegisterType(reflect.TypeFor[T](), entitySchema)
}

// Bind binds T to a schema previously loaded for collection.
func Bind[T any](r *Registry, collection string) error {
	r.mx.RLock()
	entitySchema, ok := r.collections[collection]
	r.mx.RUnlock()
	if !ok {
		return fmt.Errorf("schema for collection '%s' is not loaded", collection)
	}
	Register[T](r, entitySchema)
	return nil
}

func (r *Registry) RegisterType(entityType reflect.Type, entitySchema model.EntitySchema) {
	entityType = indirect(entityType)
	if entitySchema.Collection == "" {
		entitySchema.Collection = entityType.Name()
	}
	r.mx.Lock()
	r.types[entityType] = entitySchema
	r.collections[entitySchema.Collection] = entitySchema
	r.mx.Unlock()
	r.descriptors.Delete(entityType)
	logger.Debugf("Registered entity %v in collection '%s' with %d foreign keys", entityType, entitySchema.Collection, len(entitySchema.ForeignKeys))
}

// AddCollection makes a schema available for Bind without tying it to a type
func (r *Registry) AddCollection(entitySchema model.EntitySchema) error {
	if entitySchema.Collection == "" {
		return fmt.Errorf("schema collection can't be empty")
	}
	for i, fk := range entitySchema.ForeignKeys {
		if fk.Field == "" || fk.Collection == "" {
			return fmt.Errorf("foreign key #%d of collection '%s' must have field and collection", i, entitySchema.Collection)
		}
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.collections[entitySchema.Collection] = entitySchema
	return nil
}

// Lookup returns the schema bound to entityType
func (r *Registry) Lookup(entityType reflect.Type) (model.EntitySchema, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	entitySchema, ok := r.types[indirect(entityType)]
	return entitySchema, ok
}

// Collection returns the schema loaded or registered for collection
func (r *Registry) Collection(collection string) (model.EntitySchema, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	entitySchema, ok := r.collections[collection]
	return entitySchema, ok
}

// CollectionName returns the registered collection of entityType or its type name
func (r *Registry) CollectionName(entityType reflect.Type) string {
	if entitySchema, ok := r.Lookup(entityType); ok {
		return entitySchema.Collection
	}
	return indirect(entityType).Name()
}

// ForeignKeys returns the foreign key descriptor of entityType. Unregistered types have none.
func (r *Registry) ForeignKeys(entityType reflect.Type) model.ForeignKeyDescriptor {
	entityType = indirect(entityType)
	descriptor, _ := r.descriptors.Cache(entityType, func() (model.ForeignKeyDescriptor, error) {
		if entitySchema, ok := r.Lookup(entityType); ok {
			return entitySchema.Descriptor(), nil
		}
		return model.NoForeignKeys, nil
	})
	return descriptor
}

func indirect(entityType reflect.Type) reflect.Type {
	for entityType.Kind() == reflect.Pointer {
		entityType = entityType.Elem()
	}
	return entityType
}
