package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
	"github.com/netcracker/qubership-core-lib-go/v3/context-propagation/ctxhelper"
	"github.com/netcracker/qubership-core-lib-go/v3/logging"
	"github.com/netcracker/qubership-core-lib-go/v3/utils"
)

const (
	databasePath    = "%s/_db/%s/%s"
	serverPath      = "%s/%s"
	RequestIdHeader = "X-Request-Id"
)

var logger logging.Logger

func init() {
	logger = logging.GetLogger("arangobase")
}

// HttpConnection sends payloads to one database over HTTP with basic authentication
type HttpConnection struct {
	settings model.DatabaseSettings
	baseUrl  string
	client   *http.Client
}

// NewConnection is the default model.ConnectionFactory
func NewConnection(settings model.DatabaseSettings) model.Connection {
	return NewHttpConnection(settings, utils.GetClient())
}

func NewHttpConnection(settings model.DatabaseSettings, client *http.Client) *HttpConnection {
	return &HttpConnection{
		settings: settings,
		baseUrl:  settings.BaseUrl(),
		client:   client,
	}
}

// Send executes payload. A non-success status is not an error at this level.
func (c *HttpConnection) Send(ctx context.Context, payload rest.Payload) (*rest.Result, error) {
	requestUrl := c.requestUrl(payload.Path)
	var body io.Reader
	if len(payload.Content) > 0 {
		body = bytes.NewReader(payload.Content)
	}
	req, err := http.NewRequestWithContext(ctx, payload.Method, requestUrl, body)
	if err != nil {
		logger.ErrorC(ctx, "Got error during request creation: %v ", err.Error())
		return nil, fmt.Errorf("got error during request creation: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIdHeader, uuid.New().String())
	if credential := c.settings.DatabaseCredential; credential.Username != "" {
		req.SetBasicAuth(credential.Username, credential.Password)
	}
	if err = ctxhelper.AddSerializableContextData(ctx, req.Header.Set); err != nil {
		logger.ErrorC(ctx, "Error during context serializing: %v", err.Error())
		return nil, fmt.Errorf("error during context serializing: %w", err)
	}

	logger.DebugC(ctx, "Send %s request to %s", payload.Method, requestUrl)
	resp, err := c.client.Do(req)
	if err != nil {
		logger.WarnC(ctx, "Error during sending request to arangodb: %v", err.Error())
		return nil, fmt.Errorf("request %s %s failed: %w", payload.Method, payload.Path, err)
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorC(ctx, "Error occurred during response body reading: %v", err.Error())
		return nil, model.RemoteError{
			HttpCode: resp.StatusCode,
			Message:  "Error occurred during response body reading.",
			Errors:   err,
		}
	}
	logger.DebugC(ctx, "Got response from arangodb with code : %d ", resp.StatusCode)
	return &rest.Result{StatusCode: resp.StatusCode, Content: contents}, nil
}

func (c *HttpConnection) requestUrl(path string) string {
	path = strings.TrimPrefix(path, "/")
	if c.settings.DatabaseName == "" {
		return fmt.Sprintf(serverPath, c.baseUrl, path)
	}
	return fmt.Sprintf(databasePath, c.baseUrl, url.PathEscape(c.settings.DatabaseName), path)
}
