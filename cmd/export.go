package cmd

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/spurkarte/config"
	"gitlab.com/begraf/spurkarte/filesystem"
	"gitlab.com/begraf/spurkarte/render"
	"gitlab.com/begraf/spurkarte/res"
	"gitlab.com/begraf/spurkarte/track"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [TRACK-FILE]",
	Short: "Export a GPX track to a standalone HTML map",
	RunE:  runExportCmd,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP(
		"output-dir",
		"o",
		config.DefaultExportDirectory(),
		"Directory receiving the HTML page and its static assets",
	)
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}

	gpxFilePath := ""
	if len(args) == 1 {
		gpxFilePath = args[0]
	} else {
		var err error
		gpxFilePath, err = promptTrackFile()
		if err != nil {
			return err
		}
	}

	doc, err := track.LoadFile(gpxFilePath)
	if err != nil {
		return err
	}

	opts, err := render.NewOptions(
		config.LowColor(),
		config.HighColor(),
		config.ArrowIntervalKm(),
		config.LineWeight(),
		config.LineOpacity(),
	)
	if err != nil {
		return err
	}

	sink := render.NewLeafletSink()
	render.NewRenderer(sink, opts).RenderDocument(doc)

	payload, err := sink.Payload()
	if err != nil {
		return fmt.Errorf("could not serialize payload: %w", err)
	}

	mapHTML := render.EmplaceMap(payload, "map")

	templates, err := template.ParseFS(res.Templates, "templates/*")
	if err != nil {
		return fmt.Errorf("could not read templates: %w", err)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "export.html", map[string]interface{}{
		"Title": filepath.Base(gpxFilePath),
		"Map":   template.HTML(mapHTML),
	})
	if err != nil {
		return fmt.Errorf("could not execute template: %w", err)
	}

	outputDirectory := filesystem.Abs(cmd.Flag("output-dir").Value.String())
	if err := filesystem.InstallEmbedFS(res.Static, outputDirectory); err != nil {
		return fmt.Errorf("could not install static resources: %w", err)
	}

	mapFile := filepath.Join(outputDirectory, config.DefaultExportFilename())
	if err := os.WriteFile(mapFile, buf.Bytes(), 0o666); err != nil {
		return fmt.Errorf("could not write map file: %w", err)
	}

	log.Printf("written map file '%s'", mapFile)

	return nil
}

// promptTrackFile lets the user pick a GPX file from the tracks directory
// (or the working directory when none is configured).
func promptTrackFile() (string, error) {
	root := "."
	if config.HasTracksDirectory() {
		root = config.TracksDirectory()
	}

	candidates, err := filesystem.GatherFiles([]string{root}, config.GPXExtensions())
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no GPX files found in '%s'", root)
	}

	selected := ""
	prompt := &survey.Select{
		Message: "Track file",
		Options: candidates,
	}
	if err := survey.AskOne(prompt, &selected, nil); err != nil {
		return "", err
	}

	return selected, nil
}
