package blog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abcde-dev/abcdecom/internal/media"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=blog_test

type blogRepo interface {
	Add(ctx context.Context, post *BlogPost) error
	All(ctx context.Context) ([]*BlogPost, error)
	Latest(ctx context.Context, limit int) ([]*BlogPost, error)
	ByID(ctx context.Context, id int) (*BlogPost, error)
	Update(ctx context.Context, id int, update BlogPostUpdate) (*BlogPost, error)
	Delete(ctx context.Context, id int) (*BlogPost, error)
}

type imageStore interface {
	SaveImage(ctx context.Context, file io.Reader) (*media.StoredImage, error)
	Delete(ctx context.Context, name string) error
	NameFromURL(url string) (string, bool)
}

type PostResponse struct {
	Message string    `json:"message"`
	Blog    *BlogPost `json:"blog,omitempty"`
}

const (
	msgAllFieldsRequired = "All fields are required, including an image."
	msgBlogNotFound      = "Blog not found"
	msgInvalidBlogID     = "Invalid blog id"
	msgInvalidDate       = "Invalid date"
	imageFormField       = "image"
)

// accepted layouts of the date form field
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

type Handler struct {
	repo          blogRepo
	images        imageStore
	maxUploadSize int64
}

func NewHandler(repo blogRepo, images imageStore, maxUploadSize int64) *Handler {
	return &Handler{
		repo:          repo,
		images:        images,
		maxUploadSize: maxUploadSize,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	blogRouter := router.PathPrefix("/api/blogs").Subrouter()
	blogRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("blog-add")
	blogRouter.HandleFunc("", handler.handleAll).Methods("GET").Name("blog-list")
	blogRouter.HandleFunc("/latest", handler.handleLatest).Methods("GET").Name("blog-latest")
	blogRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET").Name("blog-get")
	blogRouter.HandleFunc("/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("blog-update")
	blogRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("blog-delete")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.add")
	defer span.End()

	if err := handler.parseForm(w, r); err != nil {
		log.Errorf("add blog, parse form: %s", err)
		pkg.WriteError(w, msgAllFieldsRequired, http.StatusBadRequest)
		return
	}

	title := pkg.SanitizeText(r.FormValue("title"))
	description := pkg.SanitizeHTML(r.FormValue("description"))
	dateParam := strings.TrimSpace(r.FormValue("date"))
	imageFile, _, imageErr := r.FormFile(imageFormField)
	if imageErr == nil {
		defer imageFile.Close()
	}
	if title == "" || description == "" || dateParam == "" || imageErr != nil {
		pkg.WriteError(w, msgAllFieldsRequired, http.StatusBadRequest)
		return
	}

	date, err := parseDate(dateParam)
	if err != nil {
		pkg.WriteError(w, msgInvalidDate, http.StatusBadRequest)
		return
	}

	image, ok := handler.saveImage(ctx, w, imageFile)
	if !ok {
		return
	}

	post := &BlogPost{
		Title:       title,
		Description: description,
		Date:        date,
		ImageURL:    image.URL,
		VideoURL:    strings.TrimSpace(r.FormValue("videoUrl")),
	}
	if err := handler.repo.Add(ctx, post); err != nil {
		log.Errorf("add blog [%s]: %s", title, err)
		handler.deleteImage(ctx, image.URL)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("blog.id", post.ID))
	log.Tracef("new blog %d: [%s] added", post.ID, post.Title)
	pkg.WriteJSON(w, PostResponse{
		Message: "Blog created successfully!",
		Blog:    post,
	}, http.StatusCreated)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.all")
	defer span.End()

	posts, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("get all blogs: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writePosts(w, posts)
}

func (handler *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.latest")
	defer span.End()

	posts, err := handler.repo.Latest(ctx, LatestLimit)
	if err != nil {
		log.Errorf("get latest blogs: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writePosts(w, posts)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.get")
	defer span.End()

	id, ok := blogID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	post, err := handler.repo.ByID(ctx, id)
	if err != nil {
		writeRepoError(w, "get blog", id, err)
		return
	}

	pkg.WriteJSON(w, post, http.StatusOK)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.update")
	defer span.End()

	id, ok := blogID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := handler.parseForm(w, r); err != nil {
		log.Errorf("update blog, parse form: %s", err)
		pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var update BlogPostUpdate
	if title := pkg.SanitizeText(r.FormValue("title")); title != "" {
		update.Title = &title
	}
	if description := pkg.SanitizeHTML(r.FormValue("description")); description != "" {
		update.Description = &description
	}
	if dateParam := strings.TrimSpace(r.FormValue("date")); dateParam != "" {
		date, err := parseDate(dateParam)
		if err != nil {
			pkg.WriteError(w, msgInvalidDate, http.StatusBadRequest)
			return
		}
		update.Date = &date
	}
	// a present but empty videoUrl clears the video
	if _, present := r.Form["videoUrl"]; present {
		videoURL := strings.TrimSpace(r.FormValue("videoUrl"))
		update.VideoURL = &videoURL
	}

	var previousImageURL string
	if imageFile, _, err := r.FormFile(imageFormField); err == nil {
		defer imageFile.Close()

		existing, err := handler.repo.ByID(ctx, id)
		if err != nil {
			writeRepoError(w, "update blog", id, err)
			return
		}
		previousImageURL = existing.ImageURL

		image, ok := handler.saveImage(ctx, w, imageFile)
		if !ok {
			return
		}
		update.ImageURL = &image.URL
	}

	post, err := handler.repo.Update(ctx, id, update)
	if err != nil {
		if update.ImageURL != nil {
			handler.deleteImage(ctx, *update.ImageURL)
		}
		writeRepoError(w, "update blog", id, err)
		return
	}

	if previousImageURL != "" && previousImageURL != post.ImageURL {
		handler.deleteImage(ctx, previousImageURL)
	}

	pkg.WriteJSON(w, PostResponse{
		Message: "Blog updated successfully!",
		Blog:    post,
	}, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.delete")
	defer span.End()

	id, ok := blogID(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	post, err := handler.repo.Delete(ctx, id)
	if err != nil {
		writeRepoError(w, "delete blog", id, err)
		return
	}
	handler.deleteImage(ctx, post.ImageURL)

	log.Tracef("blog %d deleted", id)
	pkg.WriteMessage(w, "Blog deleted successfully!", http.StatusOK)
}

// parseForm reads a multipart body, or a urlencoded one when no file is sent.
func (handler *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, handler.maxUploadSize+1<<20)
	err := r.ParseMultipartForm(handler.maxUploadSize)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// saveImage writes the 400 or 500 itself when the image cannot be stored.
func (handler *Handler) saveImage(ctx context.Context, w http.ResponseWriter, file io.Reader) (*media.StoredImage, bool) {
	image, err := handler.images.SaveImage(ctx, file)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedFormat) || errors.Is(err, media.ErrImageTooLarge) {
			pkg.WriteError(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		log.Errorf("save blog image: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return image, true
}

func (handler *Handler) deleteImage(ctx context.Context, url string) {
	name, ok := handler.images.NameFromURL(url)
	if !ok {
		return
	}
	if err := handler.images.Delete(ctx, name); err != nil && !errors.Is(err, media.ErrImageNotFound) {
		log.Errorf("delete blog image [%s]: %s", name, err)
	}
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var date time.Time
		if date, err = time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, err
}

func blogID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteError(w, msgInvalidBlogID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeRepoError(w http.ResponseWriter, op string, id int, err error) {
	if errors.Is(err, ErrBlogNotFound) {
		pkg.WriteError(w, msgBlogNotFound, http.StatusNotFound)
		return
	}
	log.Errorf("%s %d: %s", op, id, err)
	pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
}

func writePosts(w http.ResponseWriter, posts []*BlogPost) {
	if posts == nil {
		posts = []*BlogPost{}
	}
	pkg.WriteJSON(w, posts, http.StatusOK)
}
