// Package query generates AQL for entity reads, joining foreign key fields into the
// returned documents.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
)

const (
	documentVar  = "x1"
	paramPrefix  = "pval"
	aliasPrefix  = "a"
	keyAttribute = "_key"
	// bind key of a collection parameter, referenced as @@col in the query text
	collectionVar = "@col"
)

// Filter is an equality condition on a top level attribute of the document
type Filter struct {
	Name  string
	Value interface{}
}

// Filters keep their order; the position of a filter names its bound parameter.
type Filters []Filter

// FiltersFromMap orders the map by attribute name
func FiltersFromMap(values map[string]interface{}) Filters {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	filters := make(Filters, 0, len(names))
	for _, name := range names {
		filters = append(filters, Filter{Name: name, Value: values[name]})
	}
	return filters
}

// ByKey selects the document with the given primary key
func ByKey(key string) Filters {
	return Filters{{Name: keyAttribute, Value: key}}
}

// Build creates the query reading documents of collection that match filters. Every
// foreign key of descriptor is joined under alias a<i> and merged into the result under
// the lowercased field name.
func Build(descriptor model.ForeignKeyDescriptor, collection string, filters Filters) rest.Query {
	parts := []string{fmt.Sprintf("FOR %s IN %s", documentVar, collection)}

	if descriptor.IsForeignKey {
		for i, fk := range descriptor.ForeignKeys {
			alias := aliasPrefix + fmt.Sprint(i)
			parts = append(parts, fmt.Sprintf("LET %[1]s = (FOR x IN %[2]s.%[3]s FOR %[1]s IN %[4]s FILTER x == %[1]s.%[5]s RETURN %[1]s)",
				alias, documentVar, strings.ToLower(fk.Field), fk.Collection, keyAttribute))
		}
	}

	parameters := make(map[string]interface{}, len(filters))
	for i, filter := range filters {
		param := paramPrefix + fmt.Sprint(i)
		parts = append(parts, fmt.Sprintf("FILTER %s.%s == TO_STRING(@%s)", documentVar, filter.Name, param))
		parameters[param] = filter.Value
	}

	if descriptor.IsForeignKey {
		fields := make([]string, 0, len(descriptor.ForeignKeys))
		for i, fk := range descriptor.ForeignKeys {
			fields = append(fields, fmt.Sprintf("%s: %s%d", strings.ToLower(fk.Field), aliasPrefix, i))
		}
		parts = append(parts, fmt.Sprintf("RETURN MERGE(%s, {%s})", documentVar, strings.Join(fields, ", ")))
	} else {
		parts = append(parts, "RETURN "+documentVar)
	}

	return rest.Query{
		Query:      strings.Join(parts, " "),
		Parameters: parameters,
	}
}

// All reads every document of collection without joins
func All(collection string) rest.Query {
	return rest.Query{Query: fmt.Sprintf("FOR x IN %s RETURN x", collection)}
}

// AllKeys returns the primary keys of every document of collection
func AllKeys(collection string) rest.Query {
	return rest.Query{
		Query:      fmt.Sprintf("FOR x IN @%s RETURN x.%s", collectionVar, keyAttribute),
		Parameters: map[string]interface{}{collectionVar: collection},
	}
}
