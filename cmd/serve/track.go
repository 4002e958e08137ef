package serve

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gitlab.com/begraf/spurkarte/render"
	"gitlab.com/begraf/spurkarte/track"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	type trackEntry struct {
		ID   string
		Name string
	}

	paths := api.tracks.Paths()
	entries := make([]trackEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, trackEntry{
			ID:   api.tracks.Register(path).String(),
			Name: filepath.Base(path),
		})
	}

	c.HTML(
		http.StatusOK,
		"index.html",
		gin.H{
			"Tracks": entries,
		},
	)
}

// ServeTrack renders a GPX file registered in the tracks directory and
// responds with the Leaflet payload.
func (api *serveAPI) ServeTrack(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	gpxFilePath, ok := api.tracks.PathFromID(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	doc, err := track.LoadFile(gpxFilePath)
	if err != nil {
		api.respondLoadError(c, err)
		return
	}

	api.respondPayload(c, doc)
}

// ServeUpload accepts a GPX file as multipart form data, renders it and
// responds with the Leaflet payload.
func (api *serveAPI) ServeUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.String(http.StatusBadRequest, "unreadable file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.String(http.StatusBadRequest, "unreadable file")
		return
	}

	doc, err := track.Parse(data)
	if err != nil {
		api.respondLoadError(c, err)
		return
	}

	api.respondPayload(c, doc)
}

func (api *serveAPI) respondPayload(c *gin.Context, doc *track.Document) {
	sink := render.NewLeafletSink()
	render.NewRenderer(sink, api.opts).RenderDocument(doc)

	payload, err := sink.Payload()
	if err != nil {
		log.Printf("could not serialize payload: %s", err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (api *serveAPI) respondLoadError(c *gin.Context, err error) {
	log.Printf("could not load track: %s", err)

	var parseErr *track.ParseError
	if errors.As(err, &parseErr) {
		c.String(http.StatusBadRequest, "malformed GPX file")
		return
	}

	var ioErr *track.IOError
	if errors.As(err, &ioErr) {
		c.String(http.StatusNotFound, "track file unreadable")
		return
	}

	c.String(http.StatusInternalServerError, "error")
}
