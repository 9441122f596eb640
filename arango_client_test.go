package arangobase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConnection struct {
	mock.Mock
}

func (m *mockConnection) Send(ctx context.Context, payload rest.Payload) (*rest.Result, error) {
	args := m.Called(payload)
	result, _ := args.Get(0).(*rest.Result)
	return result, args.Error(1)
}

func testSettings(databaseName string) model.DatabaseSettings {
	return model.NewDatabaseSettings("localhost", 8529, model.HTTP, "root-password", databaseName, "user", "password", false, false)
}

func countingFactory(created *int32, connection model.Connection) model.ConnectionFactory {
	return func(settings model.DatabaseSettings) model.Connection {
		atomic.AddInt32(created, 1)
		return connection
	}
}

func TestNewArangoClient_WithoutOptions(t *testing.T) {
	client := NewArangoClient()
	assert.NotNil(t, client)
	assert.NotNil(t, client.options.ConnectionFactory)
	assert.NotNil(t, client.options.Serializer)
	assert.NotNil(t, client.options.Schemas)
	assert.Empty(t, client.Names())
}

func TestArangoClient_RegisterAndGet(t *testing.T) {
	client := NewArangoClient()
	settings := testSettings("shop")

	registered, err := client.Register("shop", settings)
	require.NoError(t, err)
	assert.Equal(t, settings, registered.Settings())

	db, err := client.DB("shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", db.Name())
	assert.Equal(t, settings, db.Settings())
	assert.Same(t, registered.pool, db.pool)
}

func TestArangoClient_GetUnregistered(t *testing.T) {
	client := NewArangoClient()

	_, err := client.DB("absent")
	var notFound model.DatabaseNotFoundError
	if assert.True(t, errors.As(err, &notFound)) {
		assert.Equal(t, "absent", notFound.Name)
	}
}

func TestArangoClient_RegisterDuplicate(t *testing.T) {
	client := NewArangoClient()
	original := testSettings("shop")
	first, err := client.Register("shop", original)
	require.NoError(t, err)

	_, err = client.Register("shop", testSettings("other"))
	var alreadyExists model.DatabaseAlreadyExistsError
	if assert.True(t, errors.As(err, &alreadyExists)) {
		assert.Equal(t, "shop", alreadyExists.Name)
	}

	db, err := client.DB("shop")
	require.NoError(t, err)
	assert.Equal(t, original, db.Settings())
	assert.Same(t, first.pool, db.pool)
}

func TestArangoClient_RegisterBlankName(t *testing.T) {
	client := NewArangoClient()

	_, err := client.Register("  ", testSettings("shop"))
	var invalid model.InvalidArgumentError
	assert.True(t, errors.As(err, &invalid))
	assert.Empty(t, client.Names())
}

func TestArangoClient_DefaultDatabase(t *testing.T) {
	client := NewArangoClient()
	_, err := client.DefaultDB()
	assert.ErrorAs(t, err, &model.DatabaseNotFoundError{})

	settings := testSettings("_system")
	_, err = client.RegisterDefault(settings)
	require.NoError(t, err)

	db, err := client.DefaultDB()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabase, db.Name())
	assert.Equal(t, settings, db.Settings())

	_, err = client.RegisterDefault(settings)
	assert.ErrorAs(t, err, &model.DatabaseAlreadyExistsError{})
}

func TestArangoClient_Names(t *testing.T) {
	client := NewArangoClient()
	for _, name := range []string{"orders", "audit", "shop"} {
		_, err := client.Register(name, testSettings(name))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"audit", "orders", "shop"}, client.Names())
}

func TestArangoClient_ConnectionsAreCreatedLazilyAndShared(t *testing.T) {
	var created int32
	connection := new(mockConnection)
	connection.On("Send", mock.Anything).Return(&rest.Result{StatusCode: 200}, nil)
	client := NewArangoClient(model.ClientOptions{ConnectionFactory: countingFactory(&created, connection)})

	first, err := client.Register("shop", testSettings("shop"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&created))

	deleted, err := first.DeleteIn(context.Background(), "1", "users")
	require.NoError(t, err)
	assert.True(t, deleted)

	second, err := client.DB("shop")
	require.NoError(t, err)
	deleted, err = second.DeleteIn(context.Background(), "2", "users")
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, int32(1), atomic.LoadInt32(&created))
	assert.Equal(t, 1, second.pool.Idle())
}

func TestArangoClient_ConnectionFactoryGetsDatabaseSettings(t *testing.T) {
	var received []model.DatabaseSettings
	connection := new(mockConnection)
	connection.On("Send", mock.Anything).Return(&rest.Result{StatusCode: 200}, nil)
	client := NewArangoClient(model.ClientOptions{ConnectionFactory: func(settings model.DatabaseSettings) model.Connection {
		received = append(received, settings)
		return connection
	}})
	shop, _ := client.Register("shop", testSettings("shop"))
	audit, _ := client.Register("audit", testSettings("audit"))

	_, err := shop.DeleteIn(context.Background(), "1", "users")
	require.NoError(t, err)
	_, err = audit.DeleteIn(context.Background(), "1", "events")
	require.NoError(t, err)

	require.Len(t, received, 2)
	assert.Equal(t, "shop", received[0].DatabaseName)
	assert.Equal(t, "audit", received[1].DatabaseName)
}
