package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/txt2png"
)

// manifest is the YAML document read by --batch:
//
//	output_dir: out
//	defaults:
//	  font: Go-Bold
//	  size: 32
//	labels:
//	  - text: Hello
//	    output: hello.png
//	  - text: World
//	    fg: "#c00"
type manifest struct {
	OutputDir string `yaml:"output_dir"`
	Defaults  item   `yaml:"defaults"`
	Labels    []item `yaml:"labels"`
}

// item is one label. Empty fields inherit from the manifest defaults,
// then from the command line flags.
type item struct {
	Text       string  `yaml:"text"`
	Font       string  `yaml:"font,omitempty"`
	Size       float64 `yaml:"size,omitempty"`
	Foreground string  `yaml:"fg,omitempty"`
	Background string  `yaml:"bg,omitempty"`
	Output     string  `yaml:"output,omitempty"`
}

// over returns it with empty fields taken from base.
func (it item) over(base item) item {
	if it.Font == "" {
		it.Font = base.Font
	}
	if it.Size == 0 {
		it.Size = base.Size
	}
	if it.Foreground == "" {
		it.Foreground = base.Foreground
	}
	if it.Background == "" {
		it.Background = base.Background
	}
	return it
}

func (it item) request() (txt2png.Request, error) {
	fg, err := txt2png.ParseColor(it.Foreground)
	if err != nil {
		return txt2png.Request{}, fmt.Errorf("fg: %w", err)
	}
	bg, err := txt2png.ParseColor(it.Background)
	if err != nil {
		return txt2png.Request{}, fmt.Errorf("bg: %w", err)
	}
	return txt2png.Request{
		Font:       txt2png.FontSpec{Name: it.Font, Size: it.Size},
		Text:       it.Text,
		Foreground: fg,
		Background: bg,
	}, nil
}

func loadManifest(path string) (*manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return decodeManifest(f)
}

func decodeManifest(r io.Reader) (*manifest, error) {
	var m manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Labels) == 0 {
		return nil, errors.New("manifest has no labels")
	}
	return &m, nil
}

type job struct {
	index  int
	req    txt2png.Request
	output string
}

// jobs expands the manifest into render jobs, validating every label
// before anything is rendered.
func (m *manifest) jobs(flags item) ([]job, error) {
	base := m.Defaults.over(flags)
	out := make([]job, 0, len(m.Labels))
	for i, it := range m.Labels {
		it = it.over(base)
		req, err := it.request()
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i+1, err)
		}
		name := it.Output
		if name == "-" {
			return nil, fmt.Errorf("label %d: cannot write to stdout in batch mode", i+1)
		}
		if name == "" {
			name = fmt.Sprintf("label-%03d.png", i+1)
		}
		if m.OutputDir != "" && !filepath.IsAbs(name) {
			name = filepath.Join(m.OutputDir, name)
		}
		out = append(out, job{index: i + 1, req: req, output: name})
	}
	return out, nil
}

// runBatch renders every label of m with up to workers goroutines, each
// owning its own Factory. The first failure stops the batch.
func runBatch(ctx context.Context, m *manifest, flags item, workers int, newFactory func() *txt2png.Factory, st *publisher, stdout io.Writer) error {
	jobs, err := m.jobs(flags)
	if err != nil {
		return err
	}
	if m.OutputDir != "" && st == nil {
		if err := os.MkdirAll(m.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	workers = max(1, min(workers, len(jobs)))

	var mu sync.Mutex
	report := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(stdout, line)
	}

	g, ctx := errgroup.WithContext(ctx)
	work := make(chan job)
	g.Go(func() error {
		defer close(work)
		for _, j := range jobs {
			select {
			case work <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range workers {
		g.Go(func() error {
			f := newFactory()
			defer logCacheStats(f)
			for j := range work {
				where, err := emit(ctx, f, j.req, j.output, st, stdout)
				if err != nil {
					return fmt.Errorf("label %d (%s): %w", j.index, j.req, err)
				}
				report(where)
			}
			return nil
		})
	}
	return g.Wait()
}
