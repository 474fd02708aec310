// Package snapshot replays a scripted pointer path against one icon without a
// window and prints the final frame.
package snapshot

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/internal/loop"
)

// Config holds configuration for one snapshot run.
type Config struct {
	Icon eye.Config
	// Path is the pointer trail, "x,y x,y ..." relative to the icon's top-left corner.
	Path     string
	Frames   int
	Interval time.Duration
	Format   string
	Stroke   string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Icon:     eye.Config{Tracking: true, Delay: eye.DefaultDelay, Speed: eye.DefaultSpeed, Size: eye.DefaultSize},
		Frames:   30,
		Interval: 16 * time.Millisecond,
		Format:   "svg",
	}
	fs.BoolVar(&cfg.Icon.Closed, "closed", cfg.Icon.Closed, "draw the closed glyph")
	fs.BoolVar(&cfg.Icon.Tracking, "tracking", cfg.Icon.Tracking, "follow the pointer")
	fs.DurationVar(&cfg.Icon.Delay, "delay", cfg.Icon.Delay, "activation delay")
	fs.BoolVar(&cfg.Icon.Smooth, "smooth", cfg.Icon.Smooth, "ease toward the pointer")
	fs.IntVar(&cfg.Icon.Speed, "speed", cfg.Icon.Speed, "easing speed (1-20)")
	fs.Float64Var(&cfg.Icon.Size, "size", cfg.Icon.Size, "icon size in pixels")
	fs.StringVar(&cfg.Path, "path", cfg.Path, `pointer samples "x,y x,y ..." relative to the icon corner`)
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to run after each sample")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "time between frames")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: svg or json")
	fs.StringVar(&cfg.Stroke, "stroke", cfg.Stroke, "svg stroke color (default currentColor)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Point is one pointer sample.
type Point struct {
	X, Y float64
}

// ParsePath parses "x,y x,y ..." samples.
func ParsePath(s string) ([]Point, error) {
	var pts []Point
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("sample %q: want x,y", field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", field, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("sample %q: not a finite point", field)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

// Result is the state after the replay. Offset is the rendered offset, so it
// is always finite.
type Result struct {
	Frame  eye.Frame `json:"frame"`
	Offset eye.Vec   `json:"offset"`
	Active bool      `json:"active"`
}

// Replay mounts an icon at the origin, waits out its activation delay, then
// feeds each sample followed by cfg.Frames frames.
func Replay(cfg Config, path []Point) Result {
	l := loop.New(time.Unix(0, 0))
	feed := event.NewPointerFeed(event.NewDispatcher())
	icon := eye.NewIcon(
		eye.Env{Pointer: feed, Timers: l, Frames: l},
		eye.LayoutFunc(func() (eye.Rect, bool) {
			size := cfg.Icon.Normalize().Size
			return eye.Rect{W: size, H: size}, true
		}),
		cfg.Icon,
	)
	icon.Mount()
	defer icon.Unmount()

	l.Step(icon.Config().Delay)
	for _, p := range path {
		feed.Update(p.X, p.Y)
		for i := 0; i < cfg.Frames; i++ {
			l.Step(cfg.Interval)
		}
	}
	return Result{Frame: icon.Frame(), Offset: icon.Offset().Finite(), Active: icon.Active()}
}

// Run replays cfg and writes the final frame to out.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.Frames < 0 {
		return errors.New("frames must not be negative")
	}
	path, err := ParsePath(cfg.Path)
	if err != nil {
		return fmt.Errorf("parse path: %w", err)
	}
	res := Replay(cfg, path)

	switch cfg.Format {
	case "svg":
		_, err = fmt.Fprintln(out, res.Frame.SVG(cfg.Stroke))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return err
}
