package options

import (
	"flag"
	"fmt"
)

// Options holds every command-line setting. The fields are flag pointers so
// the struct can be registered against a FlagSet and read after parsing.
type Options struct {
	Width      *int
	Height     *int
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
	Poster     *string
	PosterTime *float64
	Help       *bool
}

// Register binds the full option set to fs with its default values.
// Width and height of 0 mean "fullscreen at the desktop video mode".
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Width:      fs.Int("width", 0, "Window width in pixels (0 = fullscreen)"),
		Height:     fs.Int("height", 0, "Window height in pixels (0 = fullscreen)"),
		Record:     fs.Bool("record", false, "Render offscreen and encode to a video file"),
		Duration:   fs.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile: fs.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Poster:     fs.String("poster", "", "Render a single frame on the CPU to this PNG file and exit"),
		PosterTime: fs.Float64("poster-time", 8.0, "Animation time in seconds for the poster frame"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Validate checks the parsed options and fills in the sizes that only have
// sensible defaults once the mode is known. Recording and poster rendering
// have no desktop video mode to fall back on, so they default to 1280x720.
func (o *Options) Validate() error {
	if *o.Width < 0 || *o.Height < 0 {
		return fmt.Errorf("width and height must not be negative, got %dx%d", *o.Width, *o.Height)
	}
	if (*o.Width == 0) != (*o.Height == 0) {
		return fmt.Errorf("width and height must be given together, got %dx%d", *o.Width, *o.Height)
	}

	if *o.Record || *o.Poster != "" {
		if *o.Width == 0 {
			*o.Width = 1280
			*o.Height = 720
		}
	}

	if *o.Record {
		// The encoder outputs chroma-subsampled yuv420p, which needs even
		// dimensions.
		if *o.Width%2 != 0 || *o.Height%2 != 0 {
			return fmt.Errorf("recording requires even dimensions, got %dx%d", *o.Width, *o.Height)
		}
		if *o.FPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %v", *o.Duration)
		}
		if *o.OutputFile == "" {
			return fmt.Errorf("recording requires an output file")
		}
	}

	if *o.Poster != "" && *o.PosterTime < 0 {
		return fmt.Errorf("poster-time must not be negative, got %v", *o.PosterTime)
	}

	return nil
}
