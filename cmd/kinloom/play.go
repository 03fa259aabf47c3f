package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/kinloom/audio"
	"github.com/lixenwraith/kinloom/engine"
	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/render"
	"github.com/lixenwraith/kinloom/vmath"
)

const (
	scrubStep    = 0.25
	speedStep    = 0.25
	maxSpeed     = 8.0
	resizeSettle = 100 * time.Millisecond
)

var (
	playSpeed float64
	playLoop  bool
	playMute  bool
)

func init() {
	playCmd.Flags().Float64Var(&playSpeed, "speed", parameter.DefaultPlaybackSpeed, "initial playback speed multiplier")
	playCmd.Flags().BoolVar(&playLoop, "loop", false, "restart from beat zero at the end")
	playCmd.Flags().BoolVar(&playMute, "mute", false, "start with the metronome muted")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <document>",
	Short: "Play a sequence document in the terminal",
	Long: `Play renders a sequence document as an animated two-prop display
with a metronome click on every beat boundary.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "play needs exactly one document path")
			os.Exit(1)
		}

		p, err := newPlayer(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer p.cleanup()

		p.run()
	},
}

type player struct {
	screen    tcell.Screen
	view      *render.View
	eng       *engine.Engine
	pump      *engine.LoopPump
	metronome *audio.Metronome

	// Terminal drags emit resize storms; relayout waits until they
	// settle and happens on the main loop, never the timer goroutine
	debounced func(func())
	resizeCh  chan struct{}
}

func newPlayer(path string) (*player, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pump := &engine.LoopPump{}
	eng := engine.New(nil, pump, nil)
	if err := eng.Initialize(doc); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	p := &player{
		screen:    screen,
		view:      render.NewView(screen),
		eng:       eng,
		pump:      pump,
		metronome: audio.NewMetronome(),
		debounced: debounce.New(resizeSettle),
		resizeCh:  make(chan struct{}, 1),
	}

	if err := p.metronome.Initialize(); err != nil {
		// Non-fatal, playback can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	eng.SetSpeed(vmath.Clamp(playSpeed, parameter.MinPlaybackSpeed, maxSpeed))
	eng.SetLoop(playLoop)
	if playMute {
		p.metronome.ToggleMute()
		p.view.SetMuted(true)
	}

	return p, nil
}

func (p *player) run() {
	p.eng.Play()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}

		case <-p.resizeCh:
			p.view.Resize()

		case <-ticker.C:
			p.pump.Fire()
			p.dispatchEvents()
			p.view.RenderFrame(p.eng)
		}
	}
}

func (p *player) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.eng.Scrub(p.eng.CurrentBeat() - scrubStep)
		case tcell.KeyRight:
			p.eng.Scrub(p.eng.CurrentBeat() + scrubStep)
		case tcell.KeyRune:
			return p.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		p.screen.Sync()
		p.debounced(func() {
			select {
			case p.resizeCh <- struct{}{}:
			default:
			}
		})
	}

	return true
}

func (p *player) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		if p.eng.State() == engine.StatePlaying {
			p.eng.Pause()
		} else {
			p.eng.Play()
		}
	case '+', '=':
		p.eng.SetSpeed(vmath.Clamp(p.eng.Speed()+speedStep, parameter.MinPlaybackSpeed, maxSpeed))
	case '-', '_':
		p.eng.SetSpeed(vmath.Clamp(p.eng.Speed()-speedStep, parameter.MinPlaybackSpeed, maxSpeed))
	case 'l':
		p.eng.SetLoop(!p.eng.Loop())
	case 'm':
		soundOn := p.metronome.ToggleMute()
		p.view.SetMuted(!soundOn)
	case 'r':
		p.eng.Reset()
	}

	return true
}

// dispatchEvents drains the playback queue and sounds the metronome.
// Loop wraps and completion get the accented click
func (p *player) dispatchEvents() {
	for _, ev := range p.eng.PollEvents() {
		switch ev.Type {
		case engine.EventBeatCrossed:
			p.metronome.Click(false)
		case engine.EventLooped, engine.EventCompleted:
			p.metronome.Click(true)
		}
	}
}

func (p *player) cleanup() {
	p.metronome.Cleanup()
	p.screen.Fini()
}
