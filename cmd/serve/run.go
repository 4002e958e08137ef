package serve

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/spurkarte/config"
	"gitlab.com/begraf/spurkarte/filesystem"
	"gitlab.com/begraf/spurkarte/render"
	"gitlab.com/begraf/spurkarte/res"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	api, err := newServeAPI()
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", api.ServeIndex)
	r.GET("/track/:GUID", api.ServeTrack)
	r.POST("/track", api.ServeUpload)

	templates, err := template.ParseFS(res.Templates, "templates/*")
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(templates)

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))

	if err := r.Run(config.ListenAddress()); err != nil {
		log.Fatal(err)
	}

	return nil
}

type serveAPI struct {
	tracks *trackRegistry
	opts   render.Options
}

func newServeAPI() (*serveAPI, error) {
	opts, err := render.NewOptions(
		config.LowColor(),
		config.HighColor(),
		config.ArrowIntervalKm(),
		config.LineWeight(),
		config.LineOpacity(),
	)
	if err != nil {
		return nil, err
	}

	api := &serveAPI{
		tracks: newTrackRegistry(),
		opts:   opts,
	}

	if config.HasTracksDirectory() {
		tracksDirectory := filesystem.Abs(config.TracksDirectory())
		paths, err := filesystem.GatherFiles([]string{tracksDirectory}, config.GPXExtensions())
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			api.tracks.Register(path)
		}
	}

	return api, nil
}
