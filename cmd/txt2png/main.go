// Command txt2png renders text into PNG images.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/gogpu/txt2png"
	"github.com/gogpu/txt2png/fonts"
	"github.com/gogpu/txt2png/store"
	"github.com/gogpu/txt2png/text"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	font        string
	size        float64
	fg, bg      string
	output      string
	fontsDirs   []string
	systemDirs  []string
	noSystem    bool
	dpi         float64
	batch       string
	jobs        int
	storeDir    string
	storePath   string
	serverURL   string
	downloadFmt string
	verbose     bool
	version     bool
	help        bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	o := &options{}
	fs := pflag.NewFlagSet("txt2png", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&o.font, "font", "f", "Go", "Font name: bundled font, installed family or file path")
	fs.Float64VarP(&o.size, "size", "s", 24, "Font size in points")
	fs.StringVar(&o.fg, "fg", "#000000", "Text color (#rgb, #rrggbb or r,g,b)")
	fs.StringVar(&o.bg, "bg", "#ffffff", "Background color (#rgb, #rrggbb or r,g,b)")
	fs.StringVarP(&o.output, "output", "o", "txt2png.png", "Output file, - for stdout")
	fs.StringSliceVar(&o.fontsDirs, "fonts-dir", nil, "Directory of <name>.ttf/<name>.otf fonts searched first (repeatable)")
	fs.StringSliceVar(&o.systemDirs, "system-dir", nil, "Directory scanned for installed fonts instead of the system index (repeatable)")
	fs.BoolVar(&o.noSystem, "no-system", false, "Do not look up installed fonts")
	fs.Float64Var(&o.dpi, "dpi", 72, "Resolution; at 72 one point is one pixel")
	fs.StringVar(&o.batch, "batch", "", "YAML manifest of labels to render")
	fs.IntVarP(&o.jobs, "jobs", "j", runtime.NumCPU(), "Parallel renders in batch mode")
	fs.StringVar(&o.storeDir, "store-dir", "", "Save images into a content store rooted here")
	fs.StringVar(&o.storePath, "store-path", "txt2png", "Virtual folder inside the content store")
	fs.StringVar(&o.serverURL, "server-url", "", "Base URL the content store is served from")
	fs.StringVar(&o.downloadFmt, "download-format", "download/{0}/{1}", "Download path template, {0}=id {1}=file name")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log font lookups and writes to stderr")
	fs.BoolVar(&o.version, "version", false, "Show version information")
	fs.BoolVarP(&o.help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if o.help {
		printHelp(stderr, fs)
	}
	return o, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if o.help {
		return 0
	}
	if o.version {
		fmt.Fprintf(stdout, "txt2png version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if o.verbose {
		l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		txt2png.SetLogger(l)
		store.SetLogger(l)
		defer txt2png.SetLogger(nil)
		defer store.SetLogger(nil)
	}

	fg, err := txt2png.ParseColor(o.fg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: --fg: %v\n", err)
		return 2
	}
	bg, err := txt2png.ParseColor(o.bg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: --bg: %v\n", err)
		return 2
	}

	var st *publisher
	if o.storeDir != "" {
		st, err = newPublisher(o)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	newFactory := factoryFunc(o)
	ctx := context.Background()

	if o.batch != "" {
		m, err := loadManifest(o.batch)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defaults := item{Font: o.font, Size: o.size, Foreground: o.fg, Background: o.bg}
		if err := runBatch(ctx, m, defaults, o.jobs, newFactory, st, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if len(rest) == 0 {
		fmt.Fprintln(stderr, "Error: no text provided")
		return 2
	}
	req := txt2png.Request{
		Font:       txt2png.FontSpec{Name: o.font, Size: o.size},
		Text:       strings.Join(rest, " "),
		Foreground: fg,
		Background: bg,
	}

	f := newFactory()
	where, err := emit(ctx, f, req, o.output, st, stdout)
	logCacheStats(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if st != nil {
		fmt.Fprintln(stdout, where)
	}
	return 0
}

// factoryFunc returns a constructor for identically configured
// factories, one per worker.
func factoryFunc(o *options) func() *txt2png.Factory {
	return func() *txt2png.Factory {
		var strategies []text.Strategy
		for _, dir := range o.fontsDirs {
			strategies = append(strategies, &text.EmbeddedStrategy{FS: os.DirFS(dir), Dir: "."})
		}
		strategies = append(strategies, &text.EmbeddedStrategy{FS: fonts.FS()})
		switch {
		case o.noSystem:
		case len(o.systemDirs) > 0:
			strategies = append(strategies, &text.SystemStrategy{Locator: text.NewDirLocator(o.systemDirs...)})
		default:
			strategies = append(strategies, &text.SystemStrategy{Locator: sharedFontMap()})
		}
		strategies = append(strategies, text.PathStrategy{})

		return txt2png.New(
			txt2png.WithStrategies(strategies...),
			txt2png.WithDPI(o.dpi),
		)
	}
}

// sharedFontMap returns the system font index shared by all workers.
var sharedFontMap = sync.OnceValue(func() *text.FontMapLocator {
	return text.NewFontMapLocator("")
})

// logCacheStats reports how well f reused fonts and faces.
func logCacheStats(f *txt2png.Factory) {
	fonts, faces := f.Resolver().Stats(), f.Faces().Stats()
	txt2png.Logger().Debug("txt2png: cache stats",
		"font_hits", fonts.Hits,
		"font_misses", fonts.Misses,
		"face_hits", faces.Hits,
		"face_misses", faces.Misses)
}

// emit renders req and writes it to output, or publishes it to the
// content store when one is configured. It returns where the image went:
// the download URL, the file path, or "" for stdout.
func emit(ctx context.Context, f *txt2png.Factory, req txt2png.Request, output string, st *publisher, stdout io.Writer) (string, error) {
	pm, err := f.Render(req)
	if err != nil {
		return "", err
	}

	if st != nil {
		name := filepath.Base(output)
		if output == "" || output == "-" {
			name = "txt2png.png"
		}
		return st.publish(ctx, pm, name)
	}

	if output == "-" {
		return "", pm.WritePNG(stdout)
	}
	if err := pm.SavePNG(output); err != nil {
		return "", err
	}
	return output, nil
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "txt2png - render text into a PNG image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  txt2png [flags] <text>")
	fmt.Fprintln(w, "  txt2png [flags] --batch labels.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bundled fonts: "+strings.Join(fonts.Names(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

// publisher saves rendered images into a content store.
type publisher struct {
	store  store.Store
	path   string
	format store.URLFormat
}

func newPublisher(o *options) (*publisher, error) {
	ds, err := store.NewDirStore(o.storeDir)
	if err != nil {
		return nil, err
	}
	p := &publisher{store: ds, path: o.storePath}
	if o.serverURL != "" {
		p.format = store.NewURLFormat(o.serverURL, o.downloadFmt)
		if !p.format.Valid() {
			return nil, fmt.Errorf("--download-format %q has no {0} placeholder", o.downloadFmt)
		}
	}
	return p, nil
}

// publish saves pm and returns its download URL, or the stored file's
// id and name when no server URL is configured.
func (p *publisher) publish(ctx context.Context, pm *txt2png.Pixmap, filename string) (string, error) {
	data, err := pm.EncodePNG()
	if err != nil {
		return "", err
	}
	d, err := p.store.Save(ctx, p.path, filename, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if p.format == "" {
		return d.UniqueID + "/" + d.Filename, nil
	}
	return p.format.Format(d), nil
}
