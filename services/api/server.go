package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"turtledb-backend/lib/scrapers/turtlewow"
	"turtledb-backend/services/catalog"
	"turtledb-backend/services/importer"

	"github.com/gin-gonic/gin"
)

// Server is thin REST glue over the catalog and importer services. All
// domain logic lives in the services, handlers only translate errors to
// status codes and wrap payloads in the response envelope.
type Server struct {
	catalog  catalog.Service
	importer importer.Service
	router   *gin.Engine
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}

func NewServer(cat catalog.Service, imp importer.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		catalog:  cat,
		importer: imp,
		router:   r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) error {
	slog.Info("serving http", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) registerRoutes() {
	v1 := s.router.Group("/api/v1")

	v1.GET("/health", s.handleHealth)

	v1.GET("/items", s.handleListItems)
	v1.POST("/items", s.handleCreateItem)
	v1.GET("/items/:id", s.handleGetItem)
	v1.PUT("/items/:id", s.handleUpdateItem)
	v1.DELETE("/items/:id", s.handleDeleteItem)
	v1.GET("/items/:id/recipes", s.handleItemRecipes)

	v1.GET("/professions", s.handleListProfessions)

	v1.GET("/vendors", s.handleListVendors)
	v1.POST("/vendors", s.handleCreateVendor)
	v1.GET("/vendors/:id/items", s.handleVendorItems)
	v1.POST("/vendors/:id/items", s.handleAddVendorItem)

	v1.POST("/imports/item", s.handleImportItem)
	v1.GET("/imports/sources", s.handleImportSources)
}

func respondData(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}

// importStatus maps the import error taxonomy onto HTTP status codes.
func importStatus(code string) int {
	switch code {
	case importer.CodeValidation:
		return http.StatusBadRequest
	case importer.CodeSource:
		return http.StatusServiceUnavailable
	case importer.CodeSourceFormat:
		return http.StatusUnprocessableEntity
	case importer.CodeDuplicate:
		return http.StatusConflict
	case importer.CodeMapping:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError handles the errors shared by all catalog
// handlers.
func respondServiceError(c *gin.Context, err error) {
	var notFound catalog.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", notFound.Error())
		return
	}
	slog.ErrorContext(c.Request.Context(), "request failed",
		"path", c.FullPath(), "error", err)
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleHealth(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{"status": "ok"}, "")
}

func (s *Server) handleListItems(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	items, err := s.catalog.ListItems(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, items, "")
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var input catalog.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	item, err := s.catalog.CreateItem(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item, fmt.Sprintf("Created item %q", item.Name))
}

func (s *Server) handleGetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := s.catalog.GetItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, item, "")
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input catalog.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	item, err := s.catalog.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, item, "")
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteItem(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id}, "")
}

func (s *Server) handleItemRecipes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipes, err := s.catalog.ListRecipesForItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipes, "")
}

func (s *Server) handleListProfessions(c *gin.Context) {
	professions, err := s.catalog.ListProfessions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, professions, "")
}

func (s *Server) handleListVendors(c *gin.Context) {
	vendors, err := s.catalog.ListVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, vendors, "")
}

func (s *Server) handleCreateVendor(c *gin.Context) {
	var input catalog.CreateVendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	vendor, err := s.catalog.CreateVendor(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, vendor, "")
}

func (s *Server) handleVendorItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	listings, err := s.catalog.ListVendorItems(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, listings, "")
}

func (s *Server) handleAddVendorItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input catalog.AddVendorItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := s.catalog.AddVendorItem(c.Request.Context(), id, input); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"vendor_id": id, "item_id": input.ItemID}, "")
}

type importItemRequest struct {
	URL           string `json:"url" binding:"required"`
	ImportRecipes *bool  `json:"import_recipes"`
}

func (s *Server) handleImportItem(c *gin.Context) {
	var req importItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	importRecipes := true
	if req.ImportRecipes != nil {
		importRecipes = *req.ImportRecipes
	}

	result, err := s.importer.ImportItemFromURL(c.Request.Context(), req.URL, importRecipes)
	if err != nil {
		var typed *importer.Error
		if errors.As(err, &typed) {
			respondError(c, importStatus(typed.Code), typed.Code, typed.Message)
			return
		}
		slog.ErrorContext(c.Request.Context(), "import failed", "url", req.URL, "error", err)
		respondError(c, http.StatusInternalServerError, importer.CodeInternal, "import failed")
		return
	}

	message := fmt.Sprintf("Successfully imported item %q with %d recipes",
		result.ItemName, result.RecipesImported)
	respondData(c, http.StatusCreated, result, message)
}

func (s *Server) handleImportSources(c *gin.Context) {
	sources := turtlewow.Sources()
	message := fmt.Sprintf("Found %d supported import sources", len(sources))
	respondData(c, http.StatusOK, sources, message)
}
