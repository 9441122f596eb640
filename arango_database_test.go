package arangobase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/schema"
	. "github.com/netcracker/qubership-core-lib-go-arangodb-client/testutils"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ArangoDatabaseTestSuite struct {
	suite.Suite
	db *ArangoDatabase
}

func (suite *ArangoDatabaseTestSuite) SetupSuite() {
	StartMockServer()
}

func (suite *ArangoDatabaseTestSuite) TearDownSuite() {
	StopMockServer()
}

func (suite *ArangoDatabaseTestSuite) SetupTest() {
	registry := schema.NewRegistry()
	require.NoError(suite.T(), registry.LoadYAML("schema/testdata/schema.yaml"))
	require.NoError(suite.T(), schema.Bind[User](registry, "users"))
	require.NoError(suite.T(), schema.Bind[Role](registry, "roles"))

	client := NewArangoClient(model.ClientOptions{
		ConnectionFactory: func(settings model.DatabaseSettings) model.Connection {
			return transport.NewHttpConnection(settings, http.DefaultClient)
		},
		Schemas: registry,
	})
	host, port := GetMockServerAddress()
	db, err := client.Register("shop", model.NewDatabaseSettings(host, port, model.HTTP, "", "shop", "shop-user", "shop-password", false, false))
	require.NoError(suite.T(), err)
	suite.db = db
}

func (suite *ArangoDatabaseTestSuite) BeforeTest(suiteName, testName string) {
	suite.T().Cleanup(ClearHandlers)
}

func TestArangoDatabaseTestSuite(t *testing.T) {
	suite.Run(t, new(ArangoDatabaseTestSuite))
}

func (suite *ArangoDatabaseTestSuite) TestGetByKeyJoinsForeignKeys() {
	AddRequestHandler(Method(http.MethodPost, "/_db/shop/_api/cursor"), func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		sent := map[string]interface{}{}
		assert.NoError(suite.T(), json.Unmarshal(body, &sent))
		assert.Contains(suite.T(), sent["query"], "LET a0 = (FOR x IN x1.roles FOR a0 IN roles")
		assert.Contains(suite.T(), sent["query"], "LET a1 = (FOR x IN x1.groups FOR a1 IN groups")
		assert.Equal(suite.T(), map[string]interface{}{"pval0": "1"}, sent["bindVars"])
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"result":[{"_key":"1","name":"Alice","roles":[{"_key":"admin","name":"Administrator"}]}],"hasMore":false}`))
	})

	user, err := GetByKey[User](context.Background(), suite.db, "1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alice", user.Name)
	assert.Equal(suite.T(), []Role{{Key: "admin", Name: "Administrator"}}, user.Roles)
}

func (suite *ArangoDatabaseTestSuite) TestInsertThenDelete() {
	AddRequestHandler(Method(http.MethodPost, "/_db/shop/_api/document/roles/"), func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(suite.T(), "true", request.URL.Query().Get("returnNew"))
		body, _ := io.ReadAll(request.Body)
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"_id":"roles/guest","_key":"guest","_rev":"_r1","new":` + string(body) + `}`))
	})
	AddRequestHandler(Method(http.MethodDelete, "/_db/shop/_api/document/roles/guest"), func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(suite.T(), "true", request.URL.Query().Get("silent"))
		writer.WriteHeader(http.StatusAccepted)
	})

	document, err := Insert(context.Background(), suite.db, &Role{Key: "guest", Name: "Guest"})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), document)
	assert.Equal(suite.T(), &Role{Key: "guest", Name: "Guest"}, document.New)

	deleted, err := Delete[Role](context.Background(), suite.db, "guest")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), deleted)
}

func (suite *ArangoDatabaseTestSuite) TestDeleteMissingDocument() {
	deleted, err := Delete[Role](context.Background(), suite.db, "absent")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), deleted)
}

func (suite *ArangoDatabaseTestSuite) TestConcurrentRequestsReuseConnections() {
	AddRequestHandler(Method(http.MethodGet, "/_db/shop/_api/document/roles/"), func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		writer.Write([]byte(`{"_key":"admin","name":"Administrator"}`))
	})

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			role, err := GetByKey[Role](context.Background(), suite.db, "admin")
			if assert.NoError(suite.T(), err) && assert.NotNil(suite.T(), role) {
				assert.Equal(suite.T(), "Administrator", role.Name)
			}
		}()
	}
	assert.False(suite.T(), waitWithTimeout(&wg, 5*time.Second), "requests did not finish in time")

	assert.LessOrEqual(suite.T(), suite.db.pool.Idle(), workers)
	assert.Positive(suite.T(), suite.db.pool.Idle())
}

func waitWithTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	c := make(chan struct{})
	go func() {
		defer close(c)
		wg.Wait()
	}()
	select {
	case <-c:
		return false
	case <-time.After(timeout):
		return true
	}
}
