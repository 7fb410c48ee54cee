package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/server"
)

func handleEvaluateSubmission(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	req, err := evaluator.DecodeRequest(request.GetArguments())
	if err != nil {
		sc.Metrics.ObserveInvalidRequest()
		return mcp.NewToolResultError(err.Error()), nil
	}

	ex, errResult := resolveExercise(req, sc)
	if errResult != nil {
		return errResult, nil
	}

	result, err := evaluator.EvaluateExercise(ex, req.Submission)
	if err != nil {
		if evaluator.IsInvalidInput(err) {
			sc.Metrics.ObserveInvalidRequest()
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	sc.Metrics.ObserveEvaluation(result)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal evaluation: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// resolveExercise returns the exercise to evaluate against: the inline
// criteria when given, the catalog exercise otherwise.
func resolveExercise(req *evaluator.Request, sc *server.ServerContext) (*evaluator.Exercise, *mcp.CallToolResult) {
	if req.Inline() {
		return &evaluator.Exercise{Criteria: req.Criteria}, nil
	}

	if req.Pack == "" || req.ExerciseID == "" {
		sc.Metrics.ObserveInvalidRequest()
		return nil, mcp.NewToolResultError("pack and exercise_id are required unless criteria are given")
	}

	pack, err := catalog.Load(req.Pack, sc.CatalogDir)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to load exercise pack: %v", err))
	}
	ex, ok := pack.Exercise(req.ExerciseID)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("exercise %q not found in pack %q", req.ExerciseID, req.Pack))
	}
	return ex.ToEvaluator(), nil
}
