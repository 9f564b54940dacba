// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mgaillard/souschef/internal/adapters/recipefile"
	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go. It exposes
// the recipe collection; cooking sessions live in the interactive
// process and are not reachable from here.
type Server struct {
	server   *server.MCPServer
	provider ports.MCPRecipeProvider
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(provider ports.MCPRecipeProvider) *Server {
	s := &Server{
		provider: provider,
	}

	s.server = server.NewMCPServer(
		"souschef",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: list_recipes
	listTool := mcp.NewTool(
		"list_recipes",
		mcp.WithDescription("List all recipes, optionally fuzzy-filtered by name"),
		mcp.WithString(
			"query",
			mcp.Description("Optional fuzzy search query matched against recipe names"),
		),
	)
	s.server.AddTool(listTool, s.handleListRecipes)

	// Tool: get_recipe
	getTool := mcp.NewTool(
		"get_recipe",
		mcp.WithDescription("Get a recipe with its full steps and ingredients"),
		mcp.WithString(
			"recipe",
			mcp.Required(),
			mcp.Description("Recipe ID or name"),
		),
	)
	s.server.AddTool(getTool, s.handleGetRecipe)

	// Tool: add_recipe
	addTool := mcp.NewTool(
		"add_recipe",
		mcp.WithDescription("Add a new recipe from a YAML definition"),
		mcp.WithString(
			"yaml",
			mcp.Required(),
			mcp.Description("Recipe in SousChef YAML format: name, servings, steps (text, duration_minutes, technique), ingredients"),
		),
	)
	s.server.AddTool(addTool, s.handleAddRecipe)

	// Tool: delete_recipe
	deleteTool := mcp.NewTool(
		"delete_recipe",
		mcp.WithDescription("Delete a recipe"),
		mcp.WithString(
			"recipe",
			mcp.Required(),
			mcp.Description("Recipe ID or name"),
		),
	)
	s.server.AddTool(deleteTool, s.handleDeleteRecipe)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// handleListRecipes handles the list_recipes tool.
func (s *Server) handleListRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	recipes, err := s.provider.ListRecipes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	var recipeList []map[string]interface{}
	for _, recipe := range recipes {
		recipeList = append(recipeList, map[string]interface{}{
			"id":                 recipe.ID,
			"name":               recipe.Name,
			"servings":           recipe.Servings,
			"total_time_minutes": recipe.TotalTimeMinutes,
			"steps":              recipe.StepCount(),
			"timed_steps":        recipe.TimedStepCount(),
		})
	}

	result := map[string]interface{}{
		"recipes":     recipeList,
		"total_count": len(recipeList),
	}
	if query != "" {
		result["query"] = query
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipes: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetRecipe handles the get_recipe tool.
func (s *Server) handleGetRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := request.RequireString("recipe")
	if err != nil {
		return mcp.NewToolResultError("recipe is required: " + err.Error()), nil
	}

	recipe, err := s.provider.Resolve(ctx, idOrName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recipe: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(recipeToMap(recipe), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleAddRecipe handles the add_recipe tool.
func (s *Server) handleAddRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	yamlData, err := request.RequireString("yaml")
	if err != nil {
		return mcp.NewToolResultError("yaml is required: " + err.Error()), nil
	}

	req, err := recipefile.Parse([]byte(yamlData))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid recipe: %v", err)), nil
	}

	recipe, err := s.provider.CreateRecipe(ctx, req.Name, req.Servings, req.TotalTime, req.Steps, req.Ingredients)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add recipe: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"id":     recipe.ID,
		"name":   recipe.Name,
		"steps":  recipe.StepCount(),
		"status": "created",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleDeleteRecipe handles the delete_recipe tool.
func (s *Server) handleDeleteRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := request.RequireString("recipe")
	if err != nil {
		return mcp.NewToolResultError("recipe is required: " + err.Error()), nil
	}

	if err := s.provider.DeleteRecipe(ctx, idOrName); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete recipe: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"recipe": idOrName,
		"status": "deleted",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// recipeToMap flattens a recipe for JSON output.
func recipeToMap(recipe *domain.Recipe) map[string]interface{} {
	var steps []map[string]interface{}
	for _, step := range recipe.Steps {
		stepData := map[string]interface{}{
			"index": step.Index,
			"text":  step.Text,
		}
		if step.DurationMinutes > 0 {
			stepData["duration_minutes"] = step.DurationMinutes
		}
		if step.Technique != "" {
			stepData["technique"] = step.Technique
		}
		steps = append(steps, stepData)
	}

	var ingredients []map[string]interface{}
	for _, ing := range recipe.Ingredients {
		ingData := map[string]interface{}{
			"name":  ing.Name,
			"label": ing.Label(),
		}
		if ing.Quantity > 0 {
			ingData["quantity"] = ing.Quantity
		}
		if ing.Unit != "" {
			ingData["unit"] = ing.Unit
		}
		if ing.Preparation != "" {
			ingData["preparation"] = ing.Preparation
		}
		if ing.Optional {
			ingData["optional"] = true
		}
		ingredients = append(ingredients, ingData)
	}

	return map[string]interface{}{
		"id":                 recipe.ID,
		"name":               recipe.Name,
		"servings":           recipe.Servings,
		"total_time_minutes": recipe.TotalTimeMinutes,
		"steps":              steps,
		"ingredients":        ingredients,
	}
}
