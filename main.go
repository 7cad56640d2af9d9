package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/app"
	"github.com/llehouerou/islandprofile/internal/config"
	"github.com/llehouerou/islandprofile/internal/errmsg"
	"github.com/llehouerou/islandprofile/internal/haptics"
	"github.com/llehouerou/islandprofile/internal/preset"
	"github.com/llehouerou/islandprofile/internal/profile"
	"github.com/llehouerou/islandprofile/internal/stderr"
	"github.com/llehouerou/islandprofile/internal/ui/avatar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	base, err := preset.Load(cfg.Variant)
	if err != nil {
		fmt.Println(errmsg.FormatWith(errmsg.OpPresetLoad, cfg.Variant, err))
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "islandprofile")
		if err != nil {
			fmt.Println(errmsg.FormatWith(errmsg.OpLogOpen, cfg.LogFile, err))
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	user := profile.Mock()
	var img image.Image
	if path := cfg.GetUIConfig().AvatarPath; path != "" {
		user = user.WithAvatar(path)
		if img, err = avatar.Load(path); err != nil {
			// The placeholder takes over; a missing picture is not fatal.
			log.Print(errmsg.FormatWith(errmsg.OpAvatarLoad, path, err))
			img = nil
		}
	}

	// Capture stderr before the audio output opens so its diagnostics stay
	// out of the alternate screen.
	var lines <-chan string
	if err := stderr.Start(); err == nil {
		lines = stderr.Lines
		defer stderr.Stop()
	}

	var pulser haptics.Pulser
	if cfg.Haptics {
		sp := haptics.NewSpeaker()
		if err := sp.Init(); err != nil {
			log.Print(errmsg.Format(errmsg.OpAudioInit, err))
		} else {
			defer sp.Close()
			pulser = sp
		}
	}

	m := app.New(app.Options{
		Config:  cfg,
		Motion:  cfg.ApplyMotion(base),
		Variant: cfg.Variant,
		User:    user,
		Avatar:  img,
		Pulser:  pulser,
		Stderr:  lines,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		os.Exit(1)
	}
}
