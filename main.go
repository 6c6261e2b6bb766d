package main

import (
	"log"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"

	"card-frame/pkg/cardsource"
	"card-frame/pkg/input"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/pkg/watch"
	"card-frame/screens/card"
)

const (
	targetFPS      = 30
	fallbackWidth  = 1080
	fallbackHeight = 1920
)

func main() {
	// SDL must stay on the main thread
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	env := settings.FromEnv()

	source := cardsource.FromEnv(afero.NewOsFs(), env)
	syncResources(source, env)

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	screenWidth, screenHeight := getDisplayDimensions()
	log.Printf("Starting %s | Resolution: %dx%d | config=%s | resources=%s",
		env.Title, screenWidth, screenHeight, env.ConfigPath, env.ResourcesDir)

	window, err := createWindow(env.Title, screenWidth, screenHeight)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	screen, err := card.NewCardScreen(window, renderer, source.Build)
	if err != nil {
		log.Fatalf("Failed to create card screen: %v", err)
	}
	defer screen.Close()

	watcher, err := watch.New([]string{env.ConfigPath, env.ResourcesDir}, watch.DefaultDebounce, func(path string) {
		log.Printf("Card input changed | path=%s", path)
		screen.Invalidate()
	})
	if err != nil {
		log.Printf("Warning: live reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	runLoop(screen)

	log.Println("Card frame shutting down...")
}

// syncResources mirrors the S3 resource folder when a bucket is configured.
// Failures leave whatever is already on disk in place.
func syncResources(source cardsource.Source, env settings.Env) {
	if env.S3Bucket == "" {
		return
	}
	client, err := resources.NewS3Client()
	if err != nil {
		log.Printf("Warning: S3 sync skipped: %v", err)
		return
	}
	if err := source.Sync(client, env); err != nil {
		log.Printf("Warning: S3 sync failed: %v", err)
	}
}

// runLoop executes the main SDL2 loop until the window is closed or a quit
// key is pressed
func runLoop(screen *card.CardScreen) {
	running := true
	frameTime := time.Second / targetFPS
	lastTime := time.Now()
	keys := input.NewKeyPressTracker(input.DefaultBindings)

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		switch keys.Poll(sdl.GetKeyboardState()) {
		case input.ActionQuit:
			running = false
			continue
		case input.ActionReload:
			log.Println("Reload requested from keyboard")
			screen.Invalidate()
		}

		if err := screen.Update(); err != nil {
			log.Printf("Screen update error: %v", err)
			break
		}

		if err := screen.Draw(); err != nil {
			log.Printf("Screen draw error: %v", err)
			break
		}

		elapsed := time.Since(lastTime)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
		lastTime = time.Now()
	}
}
