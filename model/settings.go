package model

import (
	"fmt"
	"strings"
)

// ProtocolType is the scheme used to reach the ArangoDB server
type ProtocolType string

const (
	HTTP  ProtocolType = "http"
	HTTPS ProtocolType = "https"
)

const SystemUsername = "root"

// Credential is a username/password pair used for basic authentication
type Credential struct {
	Username string
	Password string
}

// SerializerOptions configure how entities are written to the wire
type SerializerOptions struct {
	// Indent request bodies, mostly useful together with IsDebug.
	Indent bool

	// Escape <, > and & inside JSON strings.
	EscapeHTML bool
}

// DefaultSerializerOptions mirrors the settings used by every database unless overridden.
func DefaultSerializerOptions() SerializerOptions {
	return SerializerOptions{Indent: true}
}

// DatabaseSettings describe how to connect to and authenticate against one named database.
// Settings are created once at registration and must not be changed afterwards.
type DatabaseSettings struct {
	// Host name or IP of the ArangoDB coordinator.
	ServerAddress string

	ServerPort int

	Protocol ProtocolType

	// Name of the database on the server. Empty means the server default (_system).
	DatabaseName string

	// Credential of the root user, used only for server-level administration.
	SystemCredential Credential

	// Credential used for every request issued against DatabaseName.
	DatabaseCredential Credential

	// AutoCreate is carried for callers that provision databases themselves; the client
	// never creates databases implicitly.
	AutoCreate bool

	// IsDebug appends the base64 encoded query text to every cursor request.
	IsDebug bool

	Serialization SerializerOptions
}

func NewDatabaseSettings(serverAddress string, serverPort int, protocol ProtocolType,
	systemPassword string, databaseName string, databaseUsername string, databasePassword string,
	autoCreate bool, isDebug bool) DatabaseSettings {
	return DatabaseSettings{
		ServerAddress:      serverAddress,
		ServerPort:         serverPort,
		Protocol:           protocol,
		DatabaseName:       databaseName,
		SystemCredential:   Credential{Username: SystemUsername, Password: systemPassword},
		DatabaseCredential: Credential{Username: databaseUsername, Password: databasePassword},
		AutoCreate:         autoCreate,
		IsDebug:            isDebug,
		Serialization:      DefaultSerializerOptions(),
	}
}

// BaseUrl returns scheme://address:port without trailing slash
func (s DatabaseSettings) BaseUrl() string {
	protocol := s.Protocol
	if protocol == "" {
		protocol = HTTP
	}
	return fmt.Sprintf("%s://%s:%d", strings.ToLower(string(protocol)), s.ServerAddress, s.ServerPort)
}
