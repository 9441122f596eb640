package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
)

// printJSON writes value with the serializer of the selected database, so that
// arangodb.<db>.serialization.* settings apply to the output as well
func printJSON(out io.Writer, value interface{}) error {
	content, err := database.Serializer().Marshal(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(content))
	return err
}

func printAbsent(out io.Writer, format string, args ...interface{}) {
	yellow.Fprintf(out, "⚠️  "+format+"\n", args...)
}

func printDone(out io.Writer, format string, args ...interface{}) {
	green.Fprintf(out, "✅ "+format+"\n", args...)
}
