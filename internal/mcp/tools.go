package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/server"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerExerciseTools(s, sc)
	registerEvaluationTools(s, sc)
	registerBatchTools(s, sc)
	return nil
}

func registerExerciseTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	// list_exercises
	listTool := mcp.NewTool("list_exercises",
		mcp.WithDescription("List and search exercises across all exercise packs"),
		mcp.WithString("query",
			mcp.Description("Search terms matched against id, title, category, prompt and tags"),
		),
		mcp.WithString("difficulty",
			mcp.Description("Only list exercises of this difficulty"),
			mcp.Enum("beginner", "intermediate", "advanced"),
		),
		mcp.WithString("tag",
			mcp.Description("Only list exercises carrying this tag"),
		),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListExercises(ctx, request, sc)
	})

	// get_exercise
	getTool := mcp.NewTool("get_exercise",
		mcp.WithDescription("Show an exercise with its prompt, criteria and hints"),
		mcp.WithString("pack",
			mcp.Required(),
			mcp.Description("Name of the exercise pack (e.g. 'prompt-basics')"),
		),
		mcp.WithString("exercise_id",
			mcp.Required(),
			mcp.Description("Exercise identifier within the pack"),
		),
		mcp.WithBoolean("include_solution",
			mcp.Description("Include the reference solution (default: false)"),
		),
	)
	s.AddTool(getTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetExercise(ctx, request, sc)
	})
}

func registerEvaluationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	// evaluate_submission
	evaluateTool := mcp.NewTool("evaluate_submission",
		mcp.WithDescription("Evaluate a submission against an exercise's criteria, or against criteria given inline"),
		mcp.WithString("submission",
			mcp.Required(),
			mcp.Description("The learner's answer text"),
		),
		mcp.WithString("pack",
			mcp.Description("Exercise pack name (required unless criteria are given)"),
		),
		mcp.WithString("exercise_id",
			mcp.Description("Exercise identifier (required unless criteria are given)"),
		),
		mcp.WithArray("criteria",
			mcp.Description("Inline success criteria; overrides pack and exercise_id"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(evaluateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleEvaluateSubmission(ctx, request, sc)
	})
}

func registerBatchTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	// run_batch
	runTool := mcp.NewTool("run_batch",
		mcp.WithDescription("Evaluate a batch of submissions against an exercise pack and store the results"),
		mcp.WithString("pack",
			mcp.Required(),
			mcp.Description("Name of the exercise pack"),
		),
		mcp.WithString("submissions_file",
			mcp.Description("CSV file with ExerciseID and Submission columns, relative to the output directory"),
		),
		mcp.WithBoolean("solutions",
			mcp.Description("Evaluate each exercise's reference solution instead of a submissions file"),
		),
	)
	s.AddTool(runTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRunBatch(ctx, request, sc)
	})

	// get_results
	getResultsTool := mcp.NewTool("get_results",
		mcp.WithDescription("Retrieve results and summaries of past batch runs"),
		mcp.WithString("run_id",
			mcp.Description("Specific run ID to retrieve (optional, lists all if omitted)"),
		),
	)
	s.AddTool(getResultsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetResults(ctx, request, sc)
	})
}
