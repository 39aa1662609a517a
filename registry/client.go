package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClientConfig describes a connection to a remote registry.
type ClientConfig struct {
	// URL is the MCP server URL (http(s)://, sse://).
	URL string
	// Headers are optional HTTP headers for authenticated servers.
	Headers map[string]string
	// MaxRetries controls reconnect attempts for streamable HTTP transport.
	MaxRetries int
	// Transport overrides URL handling when provided (useful for tests).
	Transport mcp.Transport
}

// Client calls the glossary tools of a remote Registry.
type Client struct {
	mu      sync.RWMutex
	session *mcp.ClientSession
}

// Dial connects to the server described by cfg.
func Dial(ctx context.Context, cfg ClientConfig) (*Client, error) {
	transport, err := cfg.transport()
	if err != nil {
		return nil, err
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "termdiscovery-client"}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &Client{session: session}, nil
}

// Close ends the session.
func (c *Client) Close() error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	if session == nil {
		return nil
	}
	return session.Close()
}

// Tools lists the tool names the server offers.
func (c *Client) Tools(ctx context.Context) ([]string, error) {
	session, err := c.current()
	if err != nil {
		return nil, err
	}
	res, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		if tool != nil {
			names = append(names, tool.Name)
		}
	}
	return names, nil
}

// Extract calls extract_relevant_terms.
func (c *Client) Extract(ctx context.Context, in ExtractInput) (ExtractOutput, error) {
	return callTool[ExtractOutput](ctx, c, ToolExtract, in)
}

// Lookup calls lookup_term.
func (c *Client) Lookup(ctx context.Context, in LookupInput) (LookupOutput, error) {
	return callTool[LookupOutput](ctx, c, ToolLookup, in)
}

// Add calls add_terms.
func (c *Client) Add(ctx context.Context, in AddInput) (AddOutput, error) {
	return callTool[AddOutput](ctx, c, ToolAdd, in)
}

// Translate calls translate.
func (c *Client) Translate(ctx context.Context, in TranslateInput) (TranslateOutput, error) {
	return callTool[TranslateOutput](ctx, c, ToolTranslate, in)
}

func (c *Client) current() (*mcp.ClientSession, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, ErrNotConnected
	}
	return c.session, nil
}

func callTool[Out any](ctx context.Context, c *Client, name string, in any) (Out, error) {
	var out Out
	session, err := c.current()
	if err != nil {
		return out, err
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: in,
	})
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
	}
	if result.IsError {
		return out, fmt.Errorf("%w: %s", ErrExecutionFailed, toolResultError(result))
	}

	data, err := toolResultJSON(result)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", name, err)
	}
	return out, nil
}

func toolResultJSON(result *mcp.CallToolResult) ([]byte, error) {
	if result.StructuredContent != nil {
		return json.Marshal(result.StructuredContent)
	}
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			return []byte(text.Text), nil
		}
	}
	return nil, fmt.Errorf("%w: empty result", ErrExecutionFailed)
}

func toolResultError(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok && text.Text != "" {
			return text.Text
		}
	}
	return "tool execution failed"
}

func (cfg ClientConfig) transport() (mcp.Transport, error) {
	if cfg.Transport != nil {
		return cfg.Transport, nil
	}
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("server URL is required")
	}

	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	httpClient := httpClientWithHeaders(cfg.Headers)

	switch parsed.Scheme {
	case "http", "https":
		return &mcp.StreamableClientTransport{
			Endpoint:   cfg.URL,
			HTTPClient: httpClient,
			MaxRetries: cfg.MaxRetries,
		}, nil
	case "sse":
		parsed.Scheme = "http"
		return &mcp.SSEClientTransport{
			Endpoint:   parsed.String(),
			HTTPClient: httpClient,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported server URL scheme %q", parsed.Scheme)
	}
}

// httpClientWithHeaders returns a client that adds headers to every request
// not already carrying them, or nil when there are none to add.
func httpClientWithHeaders(headers map[string]string) *http.Client {
	h := make(http.Header, len(headers))
	for k, v := range headers {
		if strings.TrimSpace(k) != "" {
			h.Set(k, v)
		}
	}
	if len(h) == 0 {
		return nil
	}
	return &http.Client{Transport: &headerRoundTripper{base: http.DefaultTransport, headers: h}}
}

type headerRoundTripper struct {
	base    http.RoundTripper
	headers http.Header
}

// RoundTrip sends a copy of req with the missing headers set; req itself is
// left untouched.
func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	for key := range h.headers {
		if out.Header.Get(key) == "" {
			out.Header.Set(key, h.headers.Get(key))
		}
	}
	return h.base.RoundTrip(out)
}
