package arangobase

import (
	"sort"
	"strings"
	"sync"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/pool"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/schema"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/transport"
)

// DefaultDatabase is the name used by RegisterDefault and DefaultDB
const DefaultDatabase = "default"

// ArangoClient is the table of registered databases. Create one per process during
// startup, register every database, then hand out ArangoDatabase values.
type ArangoClient struct {
	mx        sync.RWMutex
	databases map[string]model.DatabaseSettings
	pools     map[string]*pool.Pool[model.Connection]
	options   model.ClientOptions
}

func NewArangoClient(options ...model.ClientOptions) *ArangoClient {
	client := &ArangoClient{
		databases: make(map[string]model.DatabaseSettings),
		pools:     make(map[string]*pool.Pool[model.Connection]),
	}
	if options != nil {
		client.options = options[0]
	}
	if client.options.ConnectionFactory == nil {
		client.options.ConnectionFactory = transport.NewConnection
	}
	if client.options.Serializer == nil {
		client.options.Serializer = transport.NewSerializer
	}
	if client.options.Schemas == nil {
		client.options.Schemas = schema.NewRegistry()
	}
	return client
}

// Register creates the connection pool of database name. No request is sent.
func (c *ArangoClient) Register(name string, settings model.DatabaseSettings) (*ArangoDatabase, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.InvalidArgumentError{Argument: "name", Message: "value cannot be empty"}
	}
	c.mx.Lock()
	if _, ok := c.databases[name]; ok {
		c.mx.Unlock()
		logger.Errorf("Database '%s' is already registered", name)
		return nil, model.DatabaseAlreadyExistsError{Name: name}
	}
	factory := c.options.ConnectionFactory
	connectionPool := pool.NewPool(func() model.Connection {
		logger.Debugf("Create new connection to database '%s'", name)
		return factory(settings)
	})
	c.databases[name] = settings
	c.pools[name] = connectionPool
	c.mx.Unlock()

	logger.Infof("Registered database '%s' at %s", name, settings.BaseUrl())
	return c.newDatabase(name, settings, connectionPool), nil
}

func (c *ArangoClient) RegisterDefault(settings model.DatabaseSettings) (*ArangoDatabase, error) {
	return c.Register(DefaultDatabase, settings)
}

// DB returns the database registered under name
func (c *ArangoClient) DB(name string) (*ArangoDatabase, error) {
	c.mx.RLock()
	settings, ok := c.databases[name]
	connectionPool := c.pools[name]
	c.mx.RUnlock()
	if !ok {
		return nil, model.DatabaseNotFoundError{Name: name}
	}
	return c.newDatabase(name, settings, connectionPool), nil
}

func (c *ArangoClient) DefaultDB() (*ArangoDatabase, error) {
	return c.DB(DefaultDatabase)
}

// Names returns the registered database names in sorted order
func (c *ArangoClient) Names() []string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	names := make([]string, 0, len(c.databases))
	for name := range c.databases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *ArangoClient) newDatabase(name string, settings model.DatabaseSettings, connectionPool *pool.Pool[model.Connection]) *ArangoDatabase {
	return &ArangoDatabase{
		name:       name,
		settings:   settings,
		pool:       connectionPool,
		serializer: c.options.Serializer(settings),
		schemas:    c.options.Schemas,
	}
}
