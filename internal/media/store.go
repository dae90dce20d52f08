package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	_ "golang.org/x/image/webp"
)

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrUnsupportedFormat  = errors.New("unsupported image format, allowed: jpg, jpeg, png, webp")
	ErrImageTooLarge      = errors.New("image too large")
	ErrInvalidImageName   = errors.New("invalid image name")
	errRootPathIsRequired = errors.New("media root path cannot be empty")
)

// decoded format name -> stored file extension
var allowedFormats = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"webp": ".webp",
}

var storedNameRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(jpg|png|webp)$`)

type StoredImage struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DiskStore keeps uploaded images flat under rootPath, named by a random uuid
// and the extension of the decoded format.
type DiskStore struct {
	rootPath string
	baseURL  string
	maxSize  int64
}

func NewDiskStore(rootPath, baseURL string, maxSize int64) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errRootPathIsRequired
	}
	if err := pkg.EnsureDir(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create media root [%s]: %w", rootPath, err)
	}
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &DiskStore{
		rootPath: rootPath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxSize:  maxSize,
	}, nil
}

// SaveImage checks the image header before anything touches the disk.
func (s *DiskStore) SaveImage(ctx context.Context, file io.Reader) (_ *StoredImage, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.saveImage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	content, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(content)) > s.maxSize {
		return nil, ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		log.Debugf("disk store: decode image config: %s", err)
		return nil, ErrUnsupportedFormat
	}
	ext, ok := allowedFormats[format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	name := uuid.NewString() + ext
	span.SetAttributes(
		attribute.String("image.name", name),
		attribute.Int("image.size", len(content)),
	)

	// write to a temp file first so readers never see a partial image
	tmp, err := os.CreateTemp(s.rootPath, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				log.Errorf("disk store: remove temp file [%s]: %s", tmpPath, removeErr)
			}
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.rootPath, name)); err != nil {
		return nil, fmt.Errorf("move image in place: %w", err)
	}

	log.Debugf("disk store: image [%s] saved, %dx%d %s", name, cfg.Width, cfg.Height, format)

	return &StoredImage{
		Name:   name,
		URL:    s.URL(name),
		Format: format,
		Size:   int64(len(content)),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Open returns the stored image; the caller closes it.
func (s *DiskStore) Open(ctx context.Context, name string) (_ *os.File, _ os.FileInfo, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.open")
	span.SetAttributes(attribute.String("image.name", name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !storedNameRegex.MatchString(name) {
		return nil, nil, ErrInvalidImageName
	}

	file, err := os.Open(filepath.Join(s.rootPath, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrImageNotFound
		}
		return nil, nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	return file, info, nil
}

func (s *DiskStore) Delete(ctx context.Context, name string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.delete")
	span.SetAttributes(attribute.String("image.name", name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !storedNameRegex.MatchString(name) {
		return ErrInvalidImageName
	}

	if err := os.Remove(filepath.Join(s.rootPath, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrImageNotFound
		}
		return err
	}

	log.Debugf("disk store: image [%s] deleted", name)
	return nil
}

func (s *DiskStore) URL(name string) string {
	return s.baseURL + "/" + name
}

// NameFromURL reverses URL, reporting false for urls this store did not produce.
func (s *DiskStore) NameFromURL(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || !storedNameRegex.MatchString(name) {
		return "", false
	}
	return name, true
}
