package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/haribabu1133/Smart-todo/modules/activity"
	"github.com/haribabu1133/Smart-todo/modules/api"
	"github.com/haribabu1133/Smart-todo/modules/stats"
	"github.com/haribabu1133/Smart-todo/modules/task"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Smart Todo API ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(task.NewModule())     // Core domain (owns the store, emits events)
	app.Register(activity.NewModule()) // Event consumer (recent-activity log)
	app.Register(stats.NewModule())    // Read model (depends on task)
	app.Register(api.NewModule())      // Driving adapter (depends on task, stats)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("  GET    /api/tasks          - List tasks (filters: priority, status, category, search)")
	log.Println("  GET    /api/tasks/stats    - Dashboard statistics")
	log.Println("  POST   /api/tasks          - Create a task")
	log.Println("  GET    /api/tasks/:id      - Get a task by ID")
	log.Println("  PUT    /api/tasks/:id      - Update a task")
	log.Println("  DELETE /api/tasks/:id      - Delete a task")
	log.Println("  PATCH  /api/tasks/reorder  - Apply a reorder batch")
	log.Println("  GET    /health             - Health check")
	log.Println("")
	log.Println("Environment: PORT (default 5000), DB_PATH (default smarttodo.db), DB_DEBUG")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
