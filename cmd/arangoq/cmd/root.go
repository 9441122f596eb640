package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	arangobase "github.com/netcracker/qubership-core-lib-go-arangodb-client"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go-arangodb-client/schema"
	"github.com/netcracker/qubership-core-lib-go/v3/configloader"
	"github.com/spf13/cobra"
)

var (
	databaseName string
	schemaFile   string

	registry *schema.Registry
	database *arangobase.ArangoDatabase
)

var rootCmd = &cobra.Command{
	Use:   "arangoq",
	Short: "Query and edit ArangoDB documents from the command line",
	Long: `arangoq runs requests through the arangobase client.

Connection settings are read from arangodb.<db>.* properties, for example
ARANGODB_DEFAULT_ADDRESS or ARANGODB_SHOP_PASSWORD. A .env file in the working
directory is loaded first.

Examples:

  arangoq keys users
  arangoq get users 1 --db shop
  arangoq find users name=Alice --schema schema.yaml
  arangoq query 'FOR u IN users FILTER u.age > @age RETURN u' --param age=30
`,
	SilenceUsage:      true,
	PersistentPreRunE: connect,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseName, "db", arangobase.DefaultDatabase, "Name of the configured database")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "Schema YAML file with collections and foreign keys")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(createCollectionCmd)
}

func connect(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
	configloader.InitWithSourcesArray([]*configloader.PropertySource{configloader.EnvPropertySource()})

	registry = schema.NewRegistry()
	if schemaFile != "" {
		if err := registry.LoadYAML(schemaFile); err != nil {
			return err
		}
	}

	client := arangobase.NewArangoClient(model.ClientOptions{Schemas: registry})
	if err := arangobase.RegisterFromConfig(client, databaseName); err != nil {
		return err
	}
	db, err := client.DB(databaseName)
	if err != nil {
		return fmt.Errorf("database '%s' is not available: %w", databaseName, err)
	}
	database = db
	return nil
}
