package rest

// CollectionType is the numeric collection type of the ArangoDB API
type CollectionType int

const (
	DocumentCollection CollectionType = 2
	EdgeCollection     CollectionType = 3
)

// Collection is the request model for creating a collection
type Collection struct {
	Name string `json:"name"`

	Type CollectionType `json:"type,omitempty"`

	// Wait until documents are synchronized to disk before returning.
	WaitForSync bool `json:"waitForSync"`

	IsSystem bool `json:"isSystem,omitempty"`

	NumberOfShards int `json:"numberOfShards,omitempty"`

	ShardKeys []string `json:"shardKeys,omitempty"`

	ReplicationFactor int `json:"replicationFactor,omitempty"`

	KeyOptions *KeyOptions `json:"keyOptions,omitempty"`
}

type KeyOptions struct {
	Type          string `json:"type,omitempty"`
	AllowUserKeys bool   `json:"allowUserKeys"`
	Increment     int    `json:"increment,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}

// CollectionParams enumerates the settable attributes of a collection. Zero values keep
// the server defaults.
type CollectionParams struct {
	Name              string
	Edge              bool
	WaitForSync       bool
	NumberOfShards    int
	ShardKeys         []string
	ReplicationFactor int
	KeyOptions        *KeyOptions
}

// NewCollection builds a Collection from params
func NewCollection(params CollectionParams) Collection {
	collectionType := DocumentCollection
	if params.Edge {
		collectionType = EdgeCollection
	}
	return Collection{
		Name:              params.Name,
		Type:              collectionType,
		WaitForSync:       params.WaitForSync,
		NumberOfShards:    params.NumberOfShards,
		ShardKeys:         params.ShardKeys,
		ReplicationFactor: params.ReplicationFactor,
		KeyOptions:        params.KeyOptions,
	}
}

// CollectionResult is the response of a collection request
type CollectionResult struct {
	Id               string         `json:"id"`
	Name             string         `json:"name"`
	Status           int            `json:"status"`
	Type             CollectionType `json:"type"`
	IsSystem         bool           `json:"isSystem"`
	WaitForSync      bool           `json:"waitForSync"`
	GloballyUniqueId string         `json:"globallyUniqueId,omitempty"`
	Error            bool           `json:"error"`
	Code             int            `json:"code"`
}
