package cmd

import (
	"context"

	arangobase "github.com/netcracker/qubership-core-lib-go-arangodb-client"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/query"
	"github.com/spf13/cobra"
)

type document = map[string]interface{}

var getCmd = &cobra.Command{
	Use:   "get <collection> <key>",
	Short: "Print one document, joining foreign keys known from --schema",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, key := args[0], args[1]
		var (
			item *document
			err  error
		)
		if descriptor := foreignKeysOf(collection); descriptor.IsForeignKey {
			var items []document
			items, err = find(cmd.Context(), descriptor, collection, query.ByKey(key))
			if len(items) > 0 {
				item = &items[0]
			}
		} else {
			item, err = arangobase.GetByKey[document](cmd.Context(), database, key, arangobase.InCollection(collection))
		}
		if err != nil {
			return err
		}
		if item == nil {
			printAbsent(cmd.ErrOrStderr(), "Document '%s/%s' was not found", collection, key)
			return nil
		}
		return printJSON(cmd.OutOrStdout(), item)
	},
}

var findCmd = &cobra.Command{
	Use:   "find <collection> [name=value...]",
	Short: "Print the documents whose attributes equal the given values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		items, err := find(cmd.Context(), foreignKeysOf(args[0]), args[0], query.FiltersFromMap(values))
		if err != nil {
			return err
		}
		if items == nil {
			printAbsent(cmd.ErrOrStderr(), "Query was rejected by database '%s'", database.Name())
			return nil
		}
		return printJSON(cmd.OutOrStdout(), items)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys <collection>",
	Short: "Print the keys of every document in a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := database.GetAllKeysIn(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if keys == nil {
			printAbsent(cmd.ErrOrStderr(), "Collection '%s' can't be read", args[0])
			return nil
		}
		return printJSON(cmd.OutOrStdout(), keys)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <key>",
	Short: "Delete one document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := database.DeleteIn(cmd.Context(), args[1], args[0])
		if err != nil {
			return err
		}
		if !deleted {
			printAbsent(cmd.ErrOrStderr(), "Document '%s/%s' was not deleted", args[0], args[1])
			return nil
		}
		printDone(cmd.OutOrStdout(), "Deleted %s/%s", args[0], args[1])
		return nil
	},
}

func foreignKeysOf(collection string) model.ForeignKeyDescriptor {
	if entitySchema, ok := registry.Collection(collection); ok {
		return entitySchema.Descriptor()
	}
	return model.NoForeignKeys
}

func find(ctx context.Context, descriptor model.ForeignKeyDescriptor, collection string, filters query.Filters) ([]document, error) {
	q := query.Build(descriptor, collection, filters)
	return arangobase.Query[document](ctx, database, q.Query, q.Parameters)
}
