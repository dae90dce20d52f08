package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=projects_test

type projectRepo interface {
	Add(ctx context.Context, project *Project) error
	All(ctx context.Context) ([]*Project, error)
	ByCategory(ctx context.Context, category string) ([]*Project, error)
	ByID(ctx context.Context, id int) (*Project, error)
	Update(ctx context.Context, id int, update ProjectUpdate) (*Project, error)
	Delete(ctx context.Context, id int) (*Project, error)
}

type newProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	GithubURL   string `json:"githubUrl" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

type updateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GithubURL   string  `json:"githubUrl"`
	Category    *string `json:"category"`
}

type ProjectResponse struct {
	Message string   `json:"message"`
	Project *Project `json:"project"`
}

const (
	msgInvalidCategory      = "Category must be 'application' or 'opensource'"
	msgInvalidMarker        = "Invalid marker value. Must be 'application' or 'opensource'"
	msgProjectNotFound      = "Project not found"
	msgInvalidProjectID     = "Invalid project id"
	msgAllFieldsAreRequired = "All fields are required"
)

type Handler struct {
	repo projectRepo
}

func NewHandler(repo projectRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	projectsRouter := router.PathPrefix("/api/Osproject").Subrouter()
	projectsRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("project-add")
	projectsRouter.HandleFunc("", handler.handleAll).Methods("GET").Name("project-list")
	projectsRouter.HandleFunc("/marker/{category}", handler.handleByCategory).Methods("GET").Name("project-by-category")
	projectsRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET").Name("project-get")
	projectsRouter.HandleFunc("/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("project-update")
	projectsRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("project-delete")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.add")
	defer span.End()

	var req newProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add project, unmarshal json params: %s", err)
		pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Title = pkg.SanitizeText(req.Title)
	req.Description = pkg.SanitizeText(req.Description)
	req.GithubURL = strings.TrimSpace(req.GithubURL)
	req.Category = strings.TrimSpace(req.Category)
	if err := pkg.Validate(req); err != nil {
		pkg.WriteError(w, msgAllFieldsAreRequired, http.StatusBadRequest)
		return
	}

	project := &Project{
		Title:       req.Title,
		Description: req.Description,
		GithubURL:   req.GithubURL,
		Category:    req.Category,
	}
	if !IsValidCategory(project.Category) {
		pkg.WriteError(w, msgInvalidCategory, http.StatusBadRequest)
		return
	}

	if err := handler.repo.Add(ctx, project); err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			pkg.WriteError(w, msgInvalidCategory, http.StatusBadRequest)
			return
		}
		log.Errorf("add project [%s]: %s", project.Title, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("project.id", project.ID))
	log.Tracef("new project %d: [%s] added", project.ID, project.Title)
	pkg.WriteJSON(w, ProjectResponse{
		Message: "Project saved successfully!",
		Project: project,
	}, http.StatusCreated)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.all")
	defer span.End()

	projects, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("get all projects: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeProjects(w, projects)
}

func (handler *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.byCategory")
	defer span.End()

	category := mux.Vars(r)["category"]
	span.SetAttributes(attribute.String("category", category))
	if !IsValidCategory(category) {
		pkg.WriteError(w, msgInvalidMarker, http.StatusBadRequest)
		return
	}

	projects, err := handler.repo.ByCategory(ctx, category)
	if err != nil {
		log.Errorf("get projects by category %s: %s", category, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeProjects(w, projects)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.get")
	defer span.End()

	id, ok := projectID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	project, err := handler.repo.ByID(ctx, id)
	if err != nil {
		writeRepoError(w, "get project", id, err)
		return
	}

	pkg.WriteJSON(w, project, http.StatusOK)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.update")
	defer span.End()

	id, ok := projectID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update project, unmarshal json params: %s", err)
		pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var update ProjectUpdate
	if title := pkg.SanitizeText(req.Title); title != "" {
		update.Title = &title
	}
	if description := pkg.SanitizeText(req.Description); description != "" {
		update.Description = &description
	}
	if githubURL := strings.TrimSpace(req.GithubURL); githubURL != "" {
		update.GithubURL = &githubURL
	}
	if req.Category != nil && *req.Category != "" {
		if !IsValidCategory(*req.Category) {
			pkg.WriteError(w, msgInvalidCategory, http.StatusBadRequest)
			return
		}
		update.Category = req.Category
	}

	project, err := handler.repo.Update(ctx, id, update)
	if err != nil {
		writeRepoError(w, "update project", id, err)
		return
	}

	pkg.WriteJSON(w, ProjectResponse{
		Message: "Project updated successfully!",
		Project: project,
	}, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.projects.delete")
	defer span.End()

	id, ok := projectID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	project, err := handler.repo.Delete(ctx, id)
	if err != nil {
		writeRepoError(w, "delete project", id, err)
		return
	}

	log.Tracef("project %d deleted", id)
	pkg.WriteJSON(w, ProjectResponse{
		Message: "Project deleted successfully!",
		Project: project,
	}, http.StatusOK)
}

func projectID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteError(w, msgInvalidProjectID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeRepoError(w http.ResponseWriter, op string, id int, err error) {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		pkg.WriteError(w, msgProjectNotFound, http.StatusNotFound)
	case errors.Is(err, ErrInvalidCategory):
		pkg.WriteError(w, msgInvalidCategory, http.StatusBadRequest)
	default:
		log.Errorf("%s %d: %s", op, id, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeProjects(w http.ResponseWriter, projects []*Project) {
	if projects == nil {
		projects = []*Project{}
	}
	pkg.WriteJSON(w, projects, http.StatusOK)
}
