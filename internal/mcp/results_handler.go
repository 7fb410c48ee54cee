package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/runner"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/server"
)

func handleGetResults(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	runID, _ := args["run_id"].(string)

	if runID != "" {
		return getSpecificRun(sc.OutputDir, runID)
	}
	return listRuns(sc.OutputDir)
}

func listRuns(outputDir string) (*mcp.CallToolResult, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return mcp.NewToolResultText("[]"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to read results directory: %v", err)), nil
	}

	runs := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		metadata, err := readMetadata(filepath.Join(outputDir, e.Name()))
		if err != nil {
			continue
		}
		runs = append(runs, metadata)
	}

	// Newest first; run IDs embed the pack name, so sort on the timestamp.
	sort.SliceStable(runs, func(i, j int) bool {
		ti, _ := runs[i]["timestamp"].(string)
		tj, _ := runs[j]["timestamp"].(string)
		return ti > tj
	})

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal runs: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func getSpecificRun(outputDir, runID string) (*mcp.CallToolResult, error) {
	runPath, err := resolveRunPath(outputDir, runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid run_id: %v", err)), nil
	}

	metadata, err := readMetadata(runPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run %q not found: %v", runID, err)), nil
	}

	// Include the per-submission results if available.
	if out, err := runner.ReadResults(filepath.Join(runPath, runner.ResultsFileName)); err == nil {
		metadata["summary"] = out.Summary
		metadata["results"] = out.Results
	}

	result, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}

func readMetadata(runPath string) (map[string]interface{}, error) {
	data, err := os.ReadFile(filepath.Join(runPath, runner.MetadataFileName))
	if err != nil {
		return nil, err
	}

	var metadata map[string]interface{}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse run metadata: %w", err)
	}
	return metadata, nil
}
