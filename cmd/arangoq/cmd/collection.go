package cmd

import (
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model/rest"
	"github.com/spf13/cobra"
)

var (
	edgeCollection bool
	waitForSync    bool
	shards         int
)

var createCollectionCmd = &cobra.Command{
	Use:   "create-collection <name>",
	Short: "Create a document or edge collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := database.CreateCollection(cmd.Context(), rest.NewCollection(rest.CollectionParams{
			Name:           args[0],
			Edge:           edgeCollection,
			WaitForSync:    waitForSync,
			NumberOfShards: shards,
		}))
		if err != nil {
			return err
		}
		if result == nil {
			printAbsent(cmd.ErrOrStderr(), "Collection '%s' was not created", args[0])
			return nil
		}
		printDone(cmd.OutOrStdout(), "Created collection %s (id %s)", result.Name, result.Id)
		return nil
	},
}

func init() {
	createCollectionCmd.Flags().BoolVar(&edgeCollection, "edge", false, "Create an edge collection")
	createCollectionCmd.Flags().BoolVar(&waitForSync, "wait-for-sync", false, "Wait for documents to be synced to disk")
	createCollectionCmd.Flags().IntVar(&shards, "shards", 0, "Number of shards (0 = server default)")
}
