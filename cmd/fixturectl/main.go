// Command fixturectl plans a fixture from a YAML tournament file without the API server.
package main

import (
	"os"
)

func main() {
	if err := Root().Execute(); err != nil {
		os.Exit(1)
	}
}
