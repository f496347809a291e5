// Package wire provides dependency injection for the shopfloor application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/shopfloor/internal/adapters/sqlite"
	"github.com/example/shopfloor/internal/app"
	"github.com/example/shopfloor/internal/db"
	"github.com/example/shopfloor/internal/ports/primary"
)

var (
	departmentService primary.DepartmentService
	productService    primary.ProductService
	flowService       primary.FlowService
	summaryService    primary.SummaryService
	leaderService     primary.LeaderService
	once              sync.Once
)

// DepartmentService returns the singleton DepartmentService instance.
func DepartmentService() primary.DepartmentService {
	once.Do(initServices)
	return departmentService
}

// ProductService returns the singleton ProductService instance.
func ProductService() primary.ProductService {
	once.Do(initServices)
	return productService
}

// FlowService returns the singleton FlowService instance.
func FlowService() primary.FlowService {
	once.Do(initServices)
	return flowService
}

// SummaryService returns the singleton SummaryService instance.
func SummaryService() primary.SummaryService {
	once.Do(initServices)
	return summaryService
}

// LeaderService returns the singleton LeaderService instance.
func LeaderService() primary.LeaderService {
	once.Do(initServices)
	return leaderService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) over the shared connection
	departmentRepo := sqlite.NewDepartmentRepository(database)
	productRepo := sqlite.NewProductRepository(database)
	movementRepo := sqlite.NewMovementRepository(database)
	leaderRepo := sqlite.NewLeaderRepository(database)

	// Services (primary ports implementation)
	departmentService = app.NewDepartmentService(departmentRepo)
	productService = app.NewProductService(productRepo, departmentRepo, movementRepo)
	flowService = app.NewFlowService(productRepo, departmentRepo)
	summaryService = app.NewSummaryService(productRepo)
	leaderService = app.NewLeaderService(leaderRepo)
}
