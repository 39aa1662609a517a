// Package registry exposes the glossary relevance engine as an MCP server.
//
// A Registry wraps a glossary.Store, a relevance.Scorer and, optionally, a
// translate.Translator, and registers them as MCP tools on an mcp.Server:
//
//   - extract_relevant_terms: rank glossary entries against a text
//   - lookup_term: fetch one entry by source term, with suggestions on a miss
//   - add_terms: merge "vn:en[:src]" pairs or entries into the store
//   - translate: translate a text with glossary guidance (only when a
//     Translator is configured)
//
// Every tool is also callable directly on the Registry, and Client calls
// them on a remote server.
//
// Example usage:
//
//	store := glossary.NewFileStore("glossary.json", logger)
//	if err := store.Load(); err != nil {
//	    return err
//	}
//
//	reg, err := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{Name: "termdiscovery", Version: "1.0.0"},
//	    Store:      store,
//	})
//	if err != nil {
//	    return err
//	}
//
//	// stdio
//	err = reg.ServeStdio(ctx)
//
//	// or streamable HTTP
//	http.Handle("/mcp", reg.HTTPHandler())
package registry
