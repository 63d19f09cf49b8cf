// cmd/perfgate/main.go
package main

import (
	cmd "github.com/perfgate/perfgate/internal/commands"
)

// main starts the perfgate CLI application by delegating to the cobra root
// command defined in the commands package.
func main() {
	cmd.Execute()
}
