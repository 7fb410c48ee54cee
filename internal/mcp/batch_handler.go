package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/runner"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/server"
)

func handleRunBatch(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	packName, ok := args["pack"].(string)
	if !ok || packName == "" {
		return mcp.NewToolResultError("pack is required"), nil
	}
	submissionsFile, _ := args["submissions_file"].(string)
	solutions, _ := args["solutions"].(bool)

	if solutions == (submissionsFile != "") {
		return mcp.NewToolResultError("exactly one of submissions_file or solutions=true is required"), nil
	}

	pack, err := catalog.Load(packName, sc.CatalogDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load exercise pack: %v", err)), nil
	}

	var submissions []runner.Submission
	if solutions {
		submissions = runner.SolutionSubmissions(pack)
	} else {
		path, err := resolveSubmissionsPath(sc.OutputDir, submissionsFile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid submissions_file: %v", err)), nil
		}
		submissions, err = runner.LoadSubmissions(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load submissions: %v", err)), nil
		}
	}

	r := runner.NewRunner(sc.OutputDir)
	run, err := r.Run(ctx, pack, submissions)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("batch run failed: %v", err)), nil
	}

	for _, res := range run.Results {
		sc.Metrics.ObserveEvaluation(res.Evaluation)
	}

	summary := map[string]interface{}{
		"run_id":       run.ID,
		"pack":         run.Pack,
		"duration":     run.Duration.String(),
		"results_file": run.ResultsFile,
		"skipped":      run.Skipped,
		"cancelled":    run.Cancelled,
		"summary":      run.Summary,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal summary: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
