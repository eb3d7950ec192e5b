package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lumascope/lumascope/fractal"
	"github.com/lumascope/lumascope/glfwcontext"
	"github.com/lumascope/lumascope/options"
	"github.com/lumascope/lumascope/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("lumascope - animated fractal shader viewer/recorder")
		flag.PrintDefaults()
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if *opts.Poster != "" {
		log.Printf("Rendering poster frame at t=%vs to %s", *opts.PosterTime, *opts.Poster)
		err := fractal.SavePoster(*opts.Poster, *opts.Width, *opts.Height, float32(*opts.PosterTime))
		if err != nil {
			log.Fatalf("Poster rendering failed: %v", err)
		}
		return
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		// No rendering context available; nothing else is attempted.
		log.Printf("Failed to initialize graphics: %v", err)
		return
	}
	defer glfwcontext.TerminateGraphics()

	run(opts)
}

func run(opts *options.Options) {
	r, err := renderer.New(*opts.Width, *opts.Height, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(); err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunOffscreen(opts); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
	} else {
		r.Window().RegisterKeyCallback(glfw.KeyS, r.RequestScreenshot)

		log.Println("Starting interactive render loop...")
		r.Run()
	}
}
