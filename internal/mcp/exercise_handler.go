package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/server"
)

type exerciseSummary struct {
	Pack          string   `json:"pack"`
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Tags          []string `json:"tags,omitempty"`
	CriteriaCount int      `json:"criteria_count"`
}

type exerciseDetail struct {
	Pack       string   `json:"pack"`
	Locale     string   `json:"locale"`
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Criteria   []string `json:"criteria"`
	Hints      []string `json:"hints,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Solution   string   `json:"solution,omitempty"`
}

func handleListExercises(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	query, _ := args["query"].(string)
	difficulty, _ := args["difficulty"].(string)
	tag, _ := args["tag"].(string)

	packs, err := catalog.LoadAll(sc.CatalogDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load exercise packs: %v", err)), nil
	}

	matches := catalog.Search(packs, catalog.Query{
		Text:       query,
		Difficulty: catalog.Difficulty(difficulty),
		Tag:        tag,
	})

	exercises := make([]exerciseSummary, 0, len(matches))
	for _, m := range matches {
		exercises = append(exercises, exerciseSummary{
			Pack:          m.Pack,
			ID:            m.Exercise.ID,
			Title:         m.Exercise.Title,
			Category:      m.Exercise.Category,
			Difficulty:    string(m.Exercise.Difficulty),
			Tags:          m.Exercise.Tags,
			CriteriaCount: len(m.Exercise.Criteria),
		})
	}

	data, err := json.MarshalIndent(exercises, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal exercises: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func handleGetExercise(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	packName, _ := args["pack"].(string)
	if packName == "" {
		return mcp.NewToolResultError("pack is required"), nil
	}
	exerciseID, _ := args["exercise_id"].(string)
	if exerciseID == "" {
		return mcp.NewToolResultError("exercise_id is required"), nil
	}
	includeSolution, _ := args["include_solution"].(bool)

	pack, err := catalog.Load(packName, sc.CatalogDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load exercise pack: %v", err)), nil
	}
	ex, ok := pack.Exercise(exerciseID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("exercise %q not found in pack %q", exerciseID, packName)), nil
	}

	detail := exerciseDetail{
		Pack:       pack.Name,
		Locale:     pack.Locale,
		ID:         ex.ID,
		Title:      ex.Title,
		Category:   ex.Category,
		Difficulty: string(ex.Difficulty),
		Prompt:     ex.Prompt,
		Criteria:   ex.Criteria,
		Hints:      ex.Hints,
		Tags:       ex.Tags,
	}
	if includeSolution {
		detail.Solution = catalog.PlainText(ex.Solution)
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal exercise: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
