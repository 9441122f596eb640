package arangobase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	intermodel "github.com/netcracker/qubership-core-lib-go-arangodb-client/internal/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/query"
)

type operationOptions struct {
	collection    string
	hasCollection bool
}

// OperationOption customizes a single typed operation
type OperationOption func(*operationOptions)

// InCollection overrides the collection resolved from the entity type
func InCollection(collection string) OperationOption {
	return func(o *operationOptions) {
		o.collection = collection
		o.hasCollection = true
	}
}

// Query runs an ad hoc AQL query. Parameters use the names of the query, for example
// "@col" for a collection bound as @@col. A rejected query returns nil without error.
func Query[T any](ctx context.Context, d *ArangoDatabase, aql string, parameters map[string]interface{}) ([]T, error) {
	if err := requireNotBlank("query", aql); err != nil {
		return nil, err
	}
	return executeQuery[T](ctx, d, rest.Query{Query: aql, Parameters: parameters})
}

// GetAllKeys returns the keys of every document stored for T
func GetAllKeys[T any](ctx context.Context, d *ArangoDatabase, opts ...OperationOption) ([]string, error) {
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}
	return d.GetAllKeysIn(ctx, collection)
}

// GetByExample returns the documents matching every filter, with foreign keys of T joined.
// Empty filters read the whole collection; nil filters are rejected.
func GetByExample[T any](ctx context.Context, d *ArangoDatabase, filters query.Filters, opts ...OperationOption) ([]T, error) {
	if filters == nil {
		return nil, model.InvalidArgumentError{Argument: "filters", Message: "value cannot be nil"}
	}
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}
	descriptor := d.schemas.ForeignKeys(reflect.TypeFor[T]())
	return executeQuery[T](ctx, d, query.Build(descriptor, collection, filters))
}

// GetByKey returns the document with primary key key, or nil when it can't be read
func GetByKey[T any](ctx context.Context, d *ArangoDatabase, key string, opts ...OperationOption) (*T, error) {
	if err := requireNotBlank("key", key); err != nil {
		return nil, err
	}
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}

	descriptor := d.schemas.ForeignKeys(reflect.TypeFor[T]())
	if descriptor.IsForeignKey {
		items, err := executeQuery[T](ctx, d, query.Build(descriptor, collection, query.ByKey(key)))
		if err != nil || len(items) == 0 {
			return nil, err
		}
		return &items[0], nil
	}

	result, err := d.execute(ctx, rest.Payload{
		Method: http.MethodGet,
		Path:   fmt.Sprintf(documentPath, url.PathEscape(collection), url.PathEscape(key)),
	})
	if err != nil {
		return nil, err
	}
	if !intermodel.DocumentPolicy.IsSuccess(result.StatusCode) {
		logger.DebugC(ctx, "Document '%s/%s' was not read, response code %d", collection, key, result.StatusCode)
		return nil, nil
	}
	item := new(T)
	if err := d.serializer.Unmarshal(result.Content, item); err != nil {
		return nil, model.DecodeError{Target: typeName[T](), Errors: err}
	}
	return item, nil
}

// GetAll returns every document stored for T
func GetAll[T any](ctx context.Context, d *ArangoDatabase, opts ...OperationOption) ([]T, error) {
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}
	descriptor := d.schemas.ForeignKeys(reflect.TypeFor[T]())
	if descriptor.IsForeignKey {
		return executeQuery[T](ctx, d, query.Build(descriptor, collection, nil))
	}
	return executeQuery[T](ctx, d, query.All(collection))
}

// Insert stores item and returns the created document. Once the arguments are valid,
// every failure is logged and reported as a nil document without error, panics of the
// serializer or the connection included.
func Insert[T any](ctx context.Context, d *ArangoDatabase, item *T, opts ...OperationOption) (document *rest.UpdatedDocument[T], err error) {
	if item == nil {
		return nil, model.InvalidArgumentError{Argument: "item", Message: "value cannot be nil"}
	}
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorC(ctx, "Insert into '%s' failed with panic: %v", collection, r)
			document, err = nil, nil
		}
	}()

	content, err := d.serializer.Marshal(item)
	if err != nil {
		logger.ErrorC(ctx, "Insert into '%s' failed, got error during marshaling: %v", collection, err.Error())
		return nil, nil
	}
	result, err := d.execute(ctx, rest.Payload{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf(insertDocumentPath, url.PathEscape(collection)),
		Content: content,
	})
	if err != nil {
		logger.ErrorC(ctx, "Insert into '%s' failed: %v", collection, err.Error())
		return nil, nil
	}
	if !intermodel.DocumentPolicy.IsSuccess(result.StatusCode) {
		logger.ErrorC(ctx, "Insert into '%s' failed: %v", collection, d.remoteError(result, "insert failed").Error())
		return nil, nil
	}
	document = &rest.UpdatedDocument[T]{}
	if err := d.serializer.Unmarshal(result.Content, document); err != nil {
		logger.ErrorC(ctx, "Insert into '%s' failed: %v", collection, model.DecodeError{Target: typeName[T](), Errors: err}.Error())
		return nil, nil
	}
	return document, nil
}

// Update merges item into the document key and returns the updated document
func Update[T any](ctx context.Context, d *ArangoDatabase, key string, item *T, opts ...OperationOption) (*rest.UpdatedDocument[T], error) {
	if item == nil {
		return nil, model.InvalidArgumentError{Argument: "item", Message: "value cannot be nil"}
	}
	return update[T](ctx, d, key, item, opts)
}

// UpdateFields merges only the given attributes into the document key
func UpdateFields[T any](ctx context.Context, d *ArangoDatabase, key string, fields map[string]interface{}, opts ...OperationOption) (*rest.UpdatedDocument[T], error) {
	if len(fields) == 0 {
		return nil, model.InvalidArgumentError{Argument: "fields", Message: "value cannot be empty"}
	}
	return update[T](ctx, d, key, fields, opts)
}

// Delete removes the document key of T. Nothing is retried.
func Delete[T any](ctx context.Context, d *ArangoDatabase, key string, opts ...OperationOption) (bool, error) {
	if err := requireNotBlank("key", key); err != nil {
		return false, err
	}
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return false, err
	}
	return d.DeleteIn(ctx, key, collection)
}

func update[T any](ctx context.Context, d *ArangoDatabase, key string, item interface{}, opts []OperationOption) (*rest.UpdatedDocument[T], error) {
	if err := requireNotBlank("key", key); err != nil {
		return nil, err
	}
	collection, err := collectionOf[T](d, opts)
	if err != nil {
		return nil, err
	}
	content, err := d.serializer.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("got error during marshaling update: %w", err)
	}
	result, err := d.execute(ctx, rest.Payload{
		Method:  http.MethodPatch,
		Path:    fmt.Sprintf(updateDocumentPath, url.PathEscape(collection), url.PathEscape(key)),
		Content: content,
	})
	if err != nil {
		return nil, err
	}
	if !intermodel.DocumentPolicy.IsSuccess(result.StatusCode) {
		remoteErr := d.remoteError(result, "update failed")
		logger.ErrorC(ctx, "Update of '%s/%s' failed: %v", collection, key, remoteErr.Error())
		return nil, remoteErr
	}
	document := &rest.UpdatedDocument[T]{}
	if err := d.serializer.Unmarshal(result.Content, document); err != nil {
		return nil, model.DecodeError{Target: typeName[T](), Errors: err}
	}
	return document, nil
}

// executeQuery posts q to the cursor endpoint and follows the cursor until it is drained
func executeQuery[T any](ctx context.Context, d *ArangoDatabase, q rest.Query) ([]T, error) {
	logger.DebugC(ctx, "Execute query in database '%s': %s", d.name, q.Query)
	payload, err := d.cursorPayload(q)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	for {
		result, err := d.execute(ctx, payload)
		if err != nil {
			return nil, err
		}
		if !intermodel.CursorPolicy.IsSuccess(result.StatusCode) {
			logger.WarnC(ctx, "Query was rejected by database '%s': %v", d.name, d.remoteError(result, "cursor request failed").Error())
			return nil, nil
		}
		queryResult := rest.QueryResult[T]{}
		if err := d.serializer.Unmarshal(result.Content, &queryResult); err != nil {
			return nil, model.DecodeError{Target: "[]" + typeName[T](), Errors: err}
		}
		items = append(items, queryResult.Result...)
		if !queryResult.HasMore || queryResult.Id == "" {
			return items, nil
		}
		payload = rest.Payload{Method: http.MethodPut, Path: fmt.Sprintf(cursorBatchPath, url.PathEscape(queryResult.Id))}
	}
}

func collectionOf[T any](d *ArangoDatabase, opts []OperationOption) (string, error) {
	options := operationOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	collection := options.collection
	if !options.hasCollection {
		collection = d.schemas.CollectionName(reflect.TypeFor[T]())
	}
	if err := requireNotBlank("collection", collection); err != nil {
		return "", err
	}
	return collection, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
