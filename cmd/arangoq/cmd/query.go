package cmd

import (
	arangobase "github.com/netcracker/qubership-core-lib-go-arangodb-client"
	"github.com/spf13/cobra"
)

var queryParams map[string]string

var queryCmd = &cobra.Command{
	Use:   "query <aql>",
	Short: "Run an AQL query and print the result list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := arangobase.Query[interface{}](cmd.Context(), database, args[0], parseParams(queryParams))
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

func init() {
	queryCmd.Flags().StringToStringVarP(&queryParams, "param", "p", nil, "Bind parameter name=value, values are parsed as JSON when possible")
}
