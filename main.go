package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/fonts"
	lpnet "LocalPaint/internal/net"
	"LocalPaint/internal/render"
	"LocalPaint/internal/stroke"
	"LocalPaint/internal/ui"
)

// CustomURLScheme links open a viewer on a host's mirror.
const CustomURLScheme = "localpaint://"

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	view := flag.String("view", "", "open a read-only viewer on a mirror URL (ws://host:port/live)")
	mirror := flag.Bool("mirror", false, "serve the canvas to viewers on the local network")
	port := flag.Int("port", 0, "mirror port")
	browse := flag.Duration("browse", 0, "list mirrors found on the network for the given time and exit")
	saveDir := flag.String("save-dir", "", "directory for saved documents and exports")
	flag.Parse()

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mirror":
			cfg.Mirror.Enabled = *mirror
		case "port":
			cfg.Mirror.Port = *port
		case "save-dir":
			cfg.SaveDir = *saveDir
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	switch {
	case *browse > 0:
		runBrowse(*browse)
	case *view != "":
		runViewer(cfg, *view)
	case flag.NArg() > 0 && strings.HasPrefix(flag.Arg(0), CustomURLScheme):
		runViewer(cfg, viewURL(flag.Arg(0)))
	default:
		runHost(cfg)
	}
}

// viewURL turns a localpaint://host:port link into the mirror address.
func viewURL(link string) string {
	address := strings.TrimSuffix(strings.TrimPrefix(link, CustomURLScheme), "/")
	return "ws://" + address + lpnet.LivePath
}

func runBrowse(timeout time.Duration) {
	err := lpnet.Browse(timeout, func(url string) { fmt.Println(url) })
	if err != nil {
		log.Fatalf("Browse failed: %v", err)
	}
}

func runViewer(cfg *config.Config, url string) {
	log.Printf("Starting as VIEWER of %s", url)
	ui.RunViewer(url, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background)
}

func fontProvider(cfg *config.Config) fonts.Provider {
	if cfg.FontList == "" {
		return fonts.Embedded()
	}
	list, err := fonts.LoadFile(cfg.FontList)
	if err != nil {
		log.Printf("[FONTS] %v, using the bundled list", err)
		return fonts.Embedded()
	}
	return list
}

func toolsFrom(cfg *config.Config, provider fonts.Provider) *canvas.Tools {
	t := canvas.DefaultTools()
	t.Color = cfg.Pen.Color
	t.Fill = cfg.Pen.Fill
	t.Width = cfg.Pen.Width
	if ls, ok := stroke.ParseLineStyle(cfg.Pen.LineStyle); ok {
		t.LineStyle = ls
	}
	t.Font = fonts.Resolve(provider, cfg.Pen.Font)
	t.FontSize = cfg.Pen.FontSize
	return t
}

func runHost(cfg *config.Config) {
	log.Println("Starting as HOST")
	provider := fontProvider(cfg)
	list := render.NewDisplayList(nil)

	opts := []canvas.Option{
		canvas.WithFonts(provider),
		canvas.WithSize(cfg.Canvas.Width, cfg.Canvas.Height),
		canvas.WithBackground(cfg.Canvas.Background),
		canvas.WithHistoryLimit(cfg.HistoryLimit),
	}
	for format, e := range export.All() {
		opts = append(opts, canvas.WithExporter(format, e))
	}
	ctrl := canvas.New(list, toolsFrom(cfg, provider), opts...)

	footer := ""
	if cfg.Mirror.Enabled {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		footer = startMirror(ctx, cfg, ctrl)
	}

	ui.RunApp(ctrl, list, ui.Options{
		Title:   cfg.Mirror.Name,
		SaveDir: cfg.SaveDir,
		Fonts:   provider,
		Footer:  footer,
	})
}

// startMirror serves the document to viewers and republishes it after
// every history change. It returns the share link.
func startMirror(ctx context.Context, cfg *config.Config, ctrl *canvas.Controller) string {
	m := lpnet.NewMirror()
	publish := func() {
		doc, err := ctrl.Document()
		if err != nil {
			log.Printf("[MIRROR] Encode failed: %v", err)
			return
		}
		m.Publish(doc)
	}
	ctrl.OnChange = publish
	publish()

	go func() {
		if err := m.Serve(ctx, cfg.Mirror.Port); err != nil {
			log.Printf("[MIRROR] %v", err)
		}
	}()

	server, err := lpnet.Advertise(cfg.Mirror.Name, cfg.Mirror.Port)
	if err != nil {
		log.Printf("[MIRROR] mDNS disabled: %v", err)
	} else {
		go func() {
			<-ctx.Done()
			server.Shutdown()
		}()
	}

	ip := lpnet.OutgoingIP()
	link := fmt.Sprintf("%s%s:%d", CustomURLScheme, ip, cfg.Mirror.Port)
	log.Printf("[MIRROR] Share %s (%s)", link, lpnet.ViewURL(ip, cfg.Mirror.Port))
	return "Mirror: " + link
}
