package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".m4v":  true,
	".webm": true,
	".mov":  true,
}

// ContentController serves the subscriber-only video library
type ContentController struct {
	dir    string
	files  http.Handler
	logger zerolog.Logger
}

// NewContentController creates a new content controller serving dir
func NewContentController(dir string, logger zerolog.Logger) *ContentController {
	return &ContentController{
		dir:    dir,
		files:  http.StripPrefix("/content/videos/", http.FileServer(http.Dir(dir))),
		logger: logger,
	}
}

type contentPage struct {
	Videos []string
}

// Index handles GET /content/
func (c *ContentController) Index(w http.ResponseWriter, r *http.Request) {
	videos, err := c.listVideos()
	if err != nil {
		c.logger.Error().Err(err).Str("dir", c.dir).Msg("Failed to list videos")
	}

	renderTemplate(w, "content", "content.html", newPageData(r, "Videos", "content", contentPage{Videos: videos}))
}

// Video handles GET /content/videos/*
func (c *ContentController) Video(w http.ResponseWriter, r *http.Request) {
	// No directory listings
	if strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}
	c.files.ServeHTTP(w, r)
}

func (c *ContentController) listVideos() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if videoExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			videos = append(videos, entry.Name())
		}
	}
	sort.Strings(videos)
	return videos, nil
}
