// Command termdiscovery finds the glossary terms relevant to Vietnamese
// text, manages the glossary file, translates with glossary guidance and
// serves all of it over MCP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
