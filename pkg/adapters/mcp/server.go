package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/presentation/graph"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SimulateArgs are the arguments of the simulate tool.
type SimulateArgs struct {
	Operation string `json:"operation"`
	X         uint32 `json:"x"`
	Y         uint32 `json:"y"`
	Trace     bool   `json:"trace"`
}

// SimulateResponse is the structured result of the simulate tool.
type SimulateResponse struct {
	ID        string `json:"id" jsonschema_description:"Record ID, e.g. mult_4_6"`
	Value     uint32 `json:"value" jsonschema_description:"Decoded result of the computation"`
	Tape      string `json:"tape" jsonschema_description:"Final tape, trimmed so the result follows the first Blank"`
	StepCount int    `json:"step_count" jsonschema_description:"Steps emitted by the top-level machine"`
	Trace     string `json:"trace,omitempty" jsonschema_description:"Human readable trace when requested"`
}

// Server wraps a Simulator and exposes it as an MCP Server.
type Server struct {
	sim       ports.Simulator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(sim ports.Simulator) *Server {
	s := &Server{
		sim:       sim,
		mcpServer: server.NewMCPServer("tmsim-mcp", strings.TrimSpace(tmsim.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func operationNames() []string {
	names := make([]string, len(domain.Operations))
	for i, op := range domain.Operations {
		names[i] = string(op)
	}
	return names
}

func (s *Server) registerTools() {
	// TOOL: simulate
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Run a unary arithmetic tape machine on two non-negative operands."),
		mcp.WithString("operation", mcp.Required(), mcp.Enum(operationNames()...), mcp.Description("Machine to run")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Second operand")),
		mcp.WithBoolean("trace", mcp.Description("Include the step by step trace")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	// TOOL: machine_graph
	s.mcpServer.AddTool(mcp.NewTool("machine_graph",
		mcp.WithDescription("Get the state diagram of a machine as a Mermaid flowchart."),
		mcp.WithString("operation", mcp.Required(), mcp.Enum(operationNames()...), mcp.Description("Machine to describe")),
	), s.handleGraph)
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args SimulateArgs) (SimulateResponse, error) {
	op, err := domain.ParseOperation(args.Operation)
	if err != nil {
		return SimulateResponse{}, err
	}

	rec, err := s.sim.Run(ctx, op, args.X, args.Y, args.Trace)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}

	return SimulateResponse{
		ID:        rec.ID,
		Value:     rec.Result.Value,
		Tape:      rec.Result.Tape,
		StepCount: rec.Result.StepCount,
		Trace:     rec.Trace,
	}, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diagram, err := s.diagram(request.GetString("operation", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(diagram), nil
}

func (s *Server) diagram(name string) (string, error) {
	op, err := domain.ParseOperation(name)
	if err != nil {
		return "", err
	}
	states, err := s.sim.States(op)
	if err != nil {
		return "", fmt.Errorf("inspect failed: %w", err)
	}
	return graph.GenerateMermaid(states, nil), nil
}

func (s *Server) registerResources() {
	// EXPOSE: tmsim://graph/<operation>
	for _, op := range domain.Operations {
		uri := "tmsim://graph/" + string(op)
		s.mcpServer.AddResource(mcp.NewResource(uri, fmt.Sprintf("State diagram of the %s machine", op),
			mcp.WithMIMEType("text/plain"),
		), s.readGraph(uri, op))
	}
}

func (s *Server) readGraph(uri string, op domain.Operation) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		diagram, err := s.diagram(string(op))
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     diagram,
			},
		}, nil
	}
}
