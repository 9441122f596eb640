package main

import "github.com/netcracker/qubership-core-lib-go-arangodb-client/cmd/arangoq/cmd"

func main() {
	cmd.Execute()
}
