package media

import (
	"errors"
	"net/http"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store *DiskStore
}

func NewHandler(store *DiskStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/media/{name}", handler.handleGet).Methods("GET", "HEAD").Name("media-get")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.media.get")
	defer span.End()

	name := mux.Vars(r)["name"]
	file, info, err := handler.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) || errors.Is(err, ErrInvalidImageName) {
			pkg.WriteError(w, "Image not found", http.StatusNotFound)
			return
		}
		log.Errorf("open image [%s]: %s", name, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer file.Close()

	// names are random and never reused
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
