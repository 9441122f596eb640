package arangobase

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	intermodel "github.com/netcracker/qubership-core-lib-go-arangodb-client/internal/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/pool"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/query"
	"github.com/netcracker/qubership-core-lib-go/v3/logging"
)

var logger logging.Logger

const (
	collectionPath     = "_api/collection"
	cursorPath         = "_api/cursor"
	cursorBatchPath    = "_api/cursor/%s"
	debugCursorPath    = "_api/cursor?query=%s"
	documentPath       = "_api/document/%s/%s"
	insertDocumentPath = "_api/document/%s/?returnNew=true"
	updateDocumentPath = "_api/document/%s/%s?mergeObjects=false&returnNew=true"
	deleteDocumentPath = "_api/document/%s/%s?silent=true"
)

func init() {
	logger = logging.GetLogger("arangobase")
}

// ArangoDatabase executes requests against one registered database. Connections are
// borrowed from the database pool for the duration of a single request.
type ArangoDatabase struct {
	name       string
	settings   model.DatabaseSettings
	pool       *pool.Pool[model.Connection]
	serializer model.Serializer
	schemas    model.SchemaResolver
}

func (d *ArangoDatabase) Name() string {
	return d.name
}

func (d *ArangoDatabase) Settings() model.DatabaseSettings {
	return d.settings
}

func (d *ArangoDatabase) Serializer() model.Serializer {
	return d.serializer
}

// CreateCollection creates a collection. A rejected request returns nil without error.
func (d *ArangoDatabase) CreateCollection(ctx context.Context, collection rest.Collection) (*rest.CollectionResult, error) {
	if err := requireNotBlank("collection.Name", collection.Name); err != nil {
		return nil, err
	}
	content, err := d.serializer.Marshal(collection)
	if err != nil {
		return nil, fmt.Errorf("got error during marshaling collection: %w", err)
	}
	result, err := d.execute(ctx, rest.Payload{Method: http.MethodPost, Path: collectionPath, Content: content})
	if err != nil {
		return nil, err
	}
	if !intermodel.DocumentPolicy.IsSuccess(result.StatusCode) {
		logger.WarnC(ctx, "Collection '%s' was not created: %s", collection.Name, d.remoteError(result, "collection request failed").Error())
		return nil, nil
	}
	collectionResult := &rest.CollectionResult{}
	if err := d.serializer.Unmarshal(result.Content, collectionResult); err != nil {
		return nil, model.DecodeError{Target: "CollectionResult", Errors: err}
	}
	logger.InfoC(ctx, "Collection '%s' was created in database '%s'", collection.Name, d.name)
	return collectionResult, nil
}

// GetAllKeysIn returns the keys of every document in collection
func (d *ArangoDatabase) GetAllKeysIn(ctx context.Context, collection string) ([]string, error) {
	if err := requireNotBlank("collection", collection); err != nil {
		return nil, err
	}
	return executeQuery[string](ctx, d, query.AllKeys(collection))
}

// DeleteIn deletes the document key from collection. The result is true when the
// server answered 200 or 202.
func (d *ArangoDatabase) DeleteIn(ctx context.Context, key string, collection string) (bool, error) {
	if err := requireNotBlank("key", key); err != nil {
		return false, err
	}
	if err := requireNotBlank("collection", collection); err != nil {
		return false, err
	}
	result, err := d.execute(ctx, rest.Payload{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf(deleteDocumentPath, url.PathEscape(collection), url.PathEscape(key)),
	})
	if err != nil {
		return false, err
	}
	if !intermodel.DeletePolicy.IsSuccess(result.StatusCode) {
		logger.WarnC(ctx, "Document '%s/%s' was not deleted, response code %d", collection, key, result.StatusCode)
		return false, nil
	}
	return true, nil
}

// execute sends payload through a pooled connection. The connection goes back to the
// pool whatever the outcome.
func (d *ArangoDatabase) execute(ctx context.Context, payload rest.Payload) (*rest.Result, error) {
	connection := d.pool.Acquire()
	defer d.pool.Release(connection)
	return connection.Send(ctx, payload)
}

func (d *ArangoDatabase) cursorPayload(q rest.Query) (rest.Payload, error) {
	content, err := d.serializer.Marshal(q)
	if err != nil {
		return rest.Payload{}, fmt.Errorf("got error during marshaling query: %w", err)
	}
	path := cursorPath
	if d.settings.IsDebug {
		path = fmt.Sprintf(debugCursorPath, url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(q.Query))))
	}
	return rest.Payload{Method: http.MethodPost, Path: path, Content: content}, nil
}

func (d *ArangoDatabase) remoteError(result *rest.Result, message string) model.RemoteError {
	errorResponse := rest.ErrorResponse{}
	if err := d.serializer.Unmarshal(result.Content, &errorResponse); err == nil && errorResponse.ErrorMessage != "" {
		message = errorResponse.ErrorMessage
	}
	return model.RemoteError{
		HttpCode: result.StatusCode,
		Message:  message,
		Errors:   fmt.Errorf("request failed with response body: %s", result.Content),
	}
}

func requireNotBlank(argument string, value string) error {
	if strings.TrimSpace(value) == "" {
		return model.InvalidArgumentError{Argument: argument, Message: "value cannot be null or whitespace"}
	}
	return nil
}
