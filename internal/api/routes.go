package api

import (
	"net/http"

	"github.com/RMahshie/cactusplot/internal/api/handlers"
	"github.com/RMahshie/cactusplot/internal/export"
	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/internal/storage"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, exportSvc export.Service, exportRepo repository.ExportRepository, fitRepo repository.FitRepository, store storage.ArtifactStore) {
	// Initialize handlers
	exportHandler := handlers.NewExportHandler(exportSvc, exportRepo, store)
	fitHandler := handlers.NewFitHandler(fitRepo)
	datasetHandler := handlers.NewDatasetHandler()

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, handlers.Health)

	// Register export routes
	huma.Register(api, huma.Operation{
		OperationID: "createPlotExport",
		Method:      http.MethodPost,
		Path:        "/api/exports/plot",
		Summary:     "Export a single plot",
		Description: "Renders all datasets into one 1200x800 PNG and stores it",
		Tags:        []string{"Exports"},
	}, exportHandler.CreatePlotExport)

	huma.Register(api, huma.Operation{
		OperationID: "createSubplotExport",
		Method:      http.MethodPost,
		Path:        "/api/exports/subplots",
		Summary:     "Export a subplot grid",
		Description: "Renders every subplot of a layout into one tiled PNG and stores it",
		Tags:        []string{"Exports"},
	}, exportHandler.CreateSubplotExport)

	huma.Register(api, huma.Operation{
		OperationID: "getExport",
		Method:      http.MethodGet,
		Path:        "/api/exports/{id}",
		Summary:     "Get export",
		Description: "Returns an export record and its download URL",
		Tags:        []string{"Exports"},
	}, exportHandler.GetExport)

	huma.Register(api, huma.Operation{
		OperationID: "getExportImage",
		Method:      http.MethodGet,
		Path:        "/api/exports/{id}/image",
		Summary:     "Get export image",
		Description: "Returns the rendered PNG of a completed export",
		Tags:        []string{"Exports"},
	}, exportHandler.GetExportImage)

	huma.Register(api, huma.Operation{
		OperationID: "listExports",
		Method:      http.MethodGet,
		Path:        "/api/exports",
		Summary:     "List exports",
		Description: "Returns the most recent exports, newest first",
		Tags:        []string{"Exports"},
	}, exportHandler.ListExports)

	// Register fit routes
	huma.Register(api, huma.Operation{
		OperationID:   "createFit",
		Method:        http.MethodPost,
		Path:          "/api/fits",
		Summary:       "Fit a curve",
		Description:   "Fits a linear, sigmoid or Hill model to a dataset and stores the result",
		Tags:          []string{"Fits"},
		DefaultStatus: http.StatusCreated,
	}, fitHandler.CreateFit)

	huma.Register(api, huma.Operation{
		OperationID: "listFits",
		Method:      http.MethodGet,
		Path:        "/api/fits",
		Summary:     "List fit results",
		Tags:        []string{"Fits"},
	}, fitHandler.ListFits)

	huma.Register(api, huma.Operation{
		OperationID: "clearFits",
		Method:      http.MethodDelete,
		Path:        "/api/fits",
		Summary:     "Clear fit results",
		Tags:        []string{"Fits"},
	}, fitHandler.ClearFits)

	// Register dataset routes
	huma.Register(api, huma.Operation{
		OperationID: "parseDataset",
		Method:      http.MethodPost,
		Path:        "/api/datasets/parse",
		Summary:     "Parse a dataset",
		Description: "Parses CSV or XVG text into a dataset",
		Tags:        []string{"Datasets"},
	}, datasetHandler.ParseDataset)

	huma.Register(api, huma.Operation{
		OperationID: "rollingAverage",
		Method:      http.MethodPost,
		Path:        "/api/datasets/rolling-average",
		Summary:     "Rolling average",
		Description: "Derives a rolling-average dataset",
		Tags:        []string{"Datasets"},
	}, datasetHandler.RollingAverage)

	huma.Register(api, huma.Operation{
		OperationID: "randomDataset",
		Method:      http.MethodPost,
		Path:        "/api/datasets/random",
		Summary:     "Random dataset",
		Description: "Generates a dataset of uniformly random values",
		Tags:        []string{"Datasets"},
	}, datasetHandler.RandomDataset)

	huma.Register(api, huma.Operation{
		OperationID: "listLayouts",
		Method:      http.MethodGet,
		Path:        "/api/layouts",
		Summary:     "List subplot layouts",
		Tags:        []string{"Datasets"},
	}, datasetHandler.ListLayouts)
}
