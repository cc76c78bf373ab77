package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/haribabu1133/Smart-todo/modules/task"
)

// setupRoutes configures all HTTP routes. The paths mirror what the SPA's
// task service calls. Fiber matches in registration order, so the static
// /stats and /reorder routes are registered before /:id.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	tasks := m.app.Group("/api/tasks")
	tasks.Get("/stats", m.getStats)
	tasks.Patch("/reorder", m.reorderTasks)
	tasks.Get("/", m.listTasks)
	tasks.Post("/", m.createTask)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// listTasks handles GET /api/tasks. Filters and the title search come in as
// query parameters; an empty result is a 200 with an empty array.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.taskAdapter.ListTasks(c.Context(), &task.ListTasksRequest{
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, toHTTPTask(t))
	}
	return c.JSON(tasks)
}

// getStats handles GET /api/tasks/stats.
func (m *APIModule) getStats(c *fiber.Ctx) error {
	summary, err := m.statsAdapter.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "stats_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// createTask handles POST /api/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.taskAdapter.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return m.errorResponse(c, err, "create_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(toHTTPTask(*resp))
}

// getTask handles GET /api/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	resp, err := m.taskAdapter.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return m.errorResponse(c, err, "get_failed")
	}
	return c.JSON(toHTTPTask(*resp))
}

// updateTask handles PUT /api/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.taskAdapter.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return m.errorResponse(c, err, "update_failed")
	}

	return c.JSON(toHTTPTask(*resp))
}

// deleteTask handles DELETE /api/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	if err := m.taskAdapter.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return m.errorResponse(c, err, "delete_failed")
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// reorderTasks handles PATCH /api/tasks/reorder. On failure the client is
// expected to re-fetch the list rather than retry the write.
func (m *APIModule) reorderTasks(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	assignments := make([]task.OrderAssignment, 0, len(req.Tasks))
	for _, a := range req.Tasks {
		assignments = append(assignments, task.OrderAssignment{ID: a.ID, Order: a.Order})
	}

	resp, err := m.taskAdapter.ReorderTasks(c.Context(), assignments)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "reorder_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(ReorderResponse{
		Message: "Tasks reordered",
		Applied: resp.Applied,
		Skipped: resp.Skipped,
	})
}

// errorResponse maps a core error to the HTTP taxonomy: validation failures
// become 400 with the violated field, missing tasks 404, anything else 500.
func (m *APIModule) errorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case task.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   task.ValidationField(err),
		})
	case task.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	}
}

// toHTTPTask converts a task service response to the HTTP representation.
func toHTTPTask(t task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Category:    t.Category,
		DueDate:     t.DueDate,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
