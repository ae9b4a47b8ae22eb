package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/runner/mcp"
	"profeia.dev/profeia/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Expose the teaching agenda through the Model Context Protocol so an
assistant can list, add, update and delete activities.`,
		Example: `
profeia mcp
profeia mcp --transport http --http-port 9090
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			persistence, err := store.Load(nil)
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				Persistence: persistence,
				Version:     "dev",
				HTTPPath:    httpPath,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(httpHost, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s%s\n", a, httpPath)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected stdio or http)", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "transport to use: stdio or http")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host for the http transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for the http transport (0 picks a free one)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "endpoint path for the http transport")

	topLevel.AddCommand(cmd)
}
