package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"gocv.io/x/gocv"

	"github.com/BeauGeogeo/Winadim/internal/extract"
	"github.com/BeauGeogeo/Winadim/internal/layout"
	"github.com/BeauGeogeo/Winadim/internal/masks"
	"github.com/BeauGeogeo/Winadim/internal/ocr"
	"github.com/BeauGeogeo/Winadim/internal/store"
	"github.com/BeauGeogeo/Winadim/internal/table"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" default:"info" help:"Log level (debug, info, warn, error)"`

	Extract ExtractCmd `cmd:"" help:"Extract the table state from a screenshot"`
	History HistoryCmd `cmd:"" help:"List recorded snapshots"`
}

// runContext carries shared dependencies into command Run methods.
type runContext struct {
	logger *log.Logger
}

// ExtractCmd runs the full extraction pipeline on one screenshot and prints
// the rendered message blocks.
type ExtractCmd struct {
	Image   string `arg:"" help:"Screenshot of the table at the calibrated resolution"`
	Layout  string `default:"winadim.hcl" help:"HCL layout profile file (reference calibration if missing)"`
	Profile string `help:"Profile name inside the layout file (first profile if empty)"`
	Masks   string `default:"masks" help:"Mask bank directory (ranks/NN.png, suits/NN.png)"`
	OCRCmd  string `name:"ocr-cmd" default:"tesseract stdin stdout" help:"External OCR command; reads PNG on stdin, prints one string per line"`
	DB      string `help:"Record the snapshot in this SQLite database"`
}

func (c *ExtractCmd) Run(rc *runContext) error {
	profile, err := layout.Load(c.Layout, c.Profile)
	if err != nil {
		return err
	}

	banks, err := masks.Shared(c.Masks)
	if err != nil {
		return err
	}

	reader, err := ocr.NewCommandReader(c.OCRCmd)
	if err != nil {
		return err
	}

	img := gocv.IMRead(c.Image, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("could not read screenshot %s", c.Image)
	}
	defer img.Close()

	rc.logger.Info("Extracting table state", "image", c.Image, "profile", profile.Name)

	extractor := extract.New(profile, banks, reader, rc.logger)
	snapshot, err := extractor.Extract(img)
	if err != nil {
		return err
	}

	players, tableMsg := extractor.Messages(snapshot)
	for _, msg := range players {
		fmt.Println(strings.Join(msg.Content, "\n"))
		fmt.Println()
	}
	fmt.Println(strings.Join(tableMsg.Content, "\n"))

	if c.DB != "" {
		st, err := store.New(c.DB)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.Snapshots().Save(snapshot)
		if err != nil {
			return fmt.Errorf("failed to record snapshot: %w", err)
		}
		rc.logger.Info("Snapshot recorded", "id", id)
	}

	return nil
}

// HistoryCmd lists previously recorded snapshots.
type HistoryCmd struct {
	DB string `default:"winadim.db" help:"SQLite database of recorded snapshots"`
}

func (c *HistoryCmd) Run(rc *runContext) error {
	st, err := store.New(c.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	snaps, err := st.Snapshots().List()
	if err != nil {
		return err
	}

	for _, snap := range snaps {
		board := strings.Join(snap.Community, ", ")
		if snap.Phase == table.Preflop.String() {
			board = "-"
		}
		fmt.Printf("%s  %s  phase=%s  dealer=seat %d  board=[%s]  pot=%s\n",
			snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.ID, snap.Phase,
			snap.DealerSeat, board, snap.Pot)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("winadim"),
		kong.Description("Table-state extraction for fixed-layout poker screenshots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	err = ctx.Run(&runContext{logger: logger})
	ctx.FatalIfErrorf(err)
}
