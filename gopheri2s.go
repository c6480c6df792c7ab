// This file is part of GopherI2S.
//
// GopherI2S is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherI2S is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherI2S.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gopheri2s/gopheri2s/comparison"
	"github.com/gopheri2s/gopheri2s/digest"
	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/hardware/preferences"
	"github.com/gopheri2s/gopheri2s/logger"
	"github.com/gopheri2s/gopheri2s/modalflag"
	"github.com/gopheri2s/gopheri2s/paths"
	"github.com/gopheri2s/gopheri2s/pattern"
	"github.com/gopheri2s/gopheri2s/performance"
	"github.com/gopheri2s/gopheri2s/performance/limiter"
	"github.com/gopheri2s/gopheri2s/prefs"
	"github.com/gopheri2s/gopheri2s/soundload"
	"github.com/gopheri2s/gopheri2s/statsview"
	"github.com/gopheri2s/gopheri2s/stepper"
	"github.com/gopheri2s/gopheri2s/version"
	"github.com/gopheri2s/gopheri2s/wavwriter"
)

// exit values returned by launch()
const (
	exitOK        = 0
	exitFlagError = 10
	exitModeError = 20
)

// the number of frames recovered in a realtime batch
const realtimeBatch = 480

func main() {
	// #ctrlc cancels the context. long running modes check the context
	// regularly and end cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. the returned value
// is suitable for os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TRACE", "STEP", "WAV", "PERFORMANCE", "VERSION")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session (eg. \"i2s.clockDivisor::2; i2s.dataBits::16\")")
	prefsFile := md.AddString("prefsfile", "", "preferences file (default is in the user's configuration directory)")
	echoLog := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFlagError
	}

	if *echoLog {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	if md.Mode() == "VERSION" {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	env, err := newEnvironment(*prefsFile)
	if err == nil {
		switch md.Mode() {
		case "RUN":
			err = run(ctx, md, env)
		case "TRACE":
			err = traceMode(md, env)
		case "STEP":
			err = step(md, env)
		case "WAV":
			err = wav(ctx, md, env)
		case "PERFORMANCE":
			err = perform(md, env)
		}
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(output, "* interrupted")
			return exitOK
		}
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// newEnvironment creates the environment for the main link. the preferences
// are loaded from the named file or from the default resource path
func newEnvironment(prefsFile string) (*environment.Environment, error) {
	if prefsFile == "" {
		var err error
		prefsFile, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p, err := preferences.NewPreferences(prefsFile)
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainLink, p)
}

// addWireFlags adds the flags that control the wire between the transmitter
// and the receiver. the returned function should be called after parsing
func addWireFlags(md *modalflag.Modes) func(lnk *hardware.Link) {
	delay := md.AddInt("delay", 0, "delay the data line by this number of ticks")
	noise := md.AddInt("noise", 0, "flip the data line on average once every this number of ticks")
	return func(lnk *hardware.Link) {
		switch {
		case *noise > 0:
			lnk.SetWire(hardware.NewNoisyWire(lnk.Env().Random, *noise))
		case *delay > 0:
			lnk.SetWire(hardware.NewDelayWire(*delay))
		}
	}
}

// input describes where the frames for the link come from
type input struct {
	frames     []i2s.Frame
	source     hardware.FrameSource
	sampleRate int
}

func (in input) stream(lnk *hardware.Link, sink hardware.FrameSink) error {
	if in.frames != nil {
		return lnk.Stream(in.frames, sink)
	}
	return lnk.StreamFrom(in.source, sink)
}

// newInput returns the frames in the sound file, if one is specified, or
// count frames of the named pattern
func newInput(md *modalflag.Modes, env *environment.Environment, patternName string, count int) (input, error) {
	cfg := env.Prefs.ChannelConfig()

	switch len(md.RemainingArgs()) {
	case 0:
		gen, err := pattern.New(patternName, cfg, env.Random)
		if err != nil {
			return input{}, err
		}
		return input{source: pattern.Source(gen, count), sampleRate: env.Prefs.SampleRate()}, nil
	case 1:
		snd, err := soundload.Load(md.GetArg(0), cfg)
		if err != nil {
			return input{}, err
		}
		logger.Logf(env, "input", "%s", snd)
		if len(snd.Frames) > count && count > 0 {
			snd.Frames = snd.Frames[:count]
		}
		return input{frames: snd.Frames, sampleRate: snd.SampleRate}, nil
	}

	return input{}, fmt.Errorf("too many arguments for %s mode", md)
}

func run(ctx context.Context, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.AdditionalHelp("frames are generated from the pattern unless a WAV or MP3 file is specified")
	frames := md.AddInt("frames", 48000, "maximum number of frames to send through the link")
	pat := md.AddString("pattern", pattern.Names[0], fmt.Sprintf("frame pattern: %s", strings.Join(pattern.Names, ", ")))
	realtime := md.AddBool("realtime", false, "recover frames at the sample rate")
	compare := md.AddBool("compare", false, "compare recovered frames with a reference link")
	wire := addWireFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lnk, err := hardware.NewLink(env)
	if err != nil {
		return err
	}
	wire(lnk)

	in, err := newInput(md, env, *pat, *frames)
	if err != nil {
		return err
	}

	var lim *limiter.Limiter
	if *realtime {
		lim, err = limiter.NewLimiter(in.sampleRate, realtimeBatch)
		if err != nil {
			return err
		}
	}

	dig := digest.NewSamples()
	sink := func(f i2s.Frame) error {
		if lim != nil {
			lim.Wait()
		}
		if dig.Frames%realtimeBatch == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return dig.AddFrame(f)
	}

	var cmp *comparison.Comparison
	if *compare {
		cmp, err = comparison.NewComparison(lnk)
		if err != nil {
			return err
		}

		// the reference link needs its own copy of the frames
		if in.frames == nil {
			gen, err := pattern.New(*pat, env.Prefs.ChannelConfig(), env.Random)
			if err != nil {
				return err
			}
			in.frames = pattern.Frames(gen, *frames)
		}

		cmp.Start(in.frames)
		sink = cmp.Sink(sink)
	}

	err = in.stream(lnk, sink)
	if cmp != nil {
		res, cerr := cmp.End()
		if err == nil {
			err = cerr
		}
		if err == nil {
			fmt.Fprintf(md.Output, "comparison: %s\n", res)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames: %s\n", dig.Frames, dig.Hash())
	return nil
}

func traceMode(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	ticks := md.AddInt("ticks", 0, "number of ticks to trace (default is one frame)")
	pat := md.AddString("pattern", pattern.Ramp, fmt.Sprintf("frame pattern: %s", strings.Join(pattern.Names, ", ")))
	wire := addWireFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gen, err := pattern.New(*pat, env.Prefs.ChannelConfig(), env.Random)
	if err != nil {
		return err
	}

	lnk, err := hardware.NewLink(env)
	if err != nil {
		return err
	}
	wire(lnk)
	lnk.Reset()

	n := *ticks
	if n <= 0 {
		n = 2 * 2 * i2s.SlotWidth * 2 * lnk.Clock.Config().Divisor
	}

	probe := hardware.NewProbe(n)
	var frame int
	for range n {
		out := lnk.Step(hardware.Inputs{Frame: gen(frame)})
		probe.Tick(out)
		if out.RX.RightValid {
			frame++
		}
	}
	probe.Plot(md.Output)

	return nil
}

func step(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	tty := md.AddString("tty", stepper.DefaultTerminal, "terminal to read key presses from")
	left := md.AddInt("left", 0x00a5a5a5, "left sample presented to the transmitter")
	right := md.AddInt("right", 0x005a5a5a, "right sample presented to the transmitter")
	wire := addWireFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env.Label = environment.Stepper

	lnk, err := hardware.NewLink(env)
	if err != nil {
		return err
	}
	wire(lnk)
	lnk.Reset()

	mask := env.Prefs.ChannelConfig().Mask()
	stp := stepper.NewStepper(lnk, md.Output)
	stp.Frame = i2s.Frame{Left: uint32(*left) & mask, Right: uint32(*right) & mask}

	return stp.Interactive(*tty)
}

func wav(ctx context.Context, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.AdditionalHelp("frames are generated from the pattern unless a WAV or MP3 file is specified")
	out := md.AddString("out", "", "output file (default is a unique filename)")
	frames := md.AddInt("frames", 48000, "maximum number of frames to send through the link")
	pat := md.AddString("pattern", pattern.Names[0], fmt.Sprintf("frame pattern: %s", strings.Join(pattern.Names, ", ")))
	wire := addWireFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lnk, err := hardware.NewLink(env)
	if err != nil {
		return err
	}
	wire(lnk)

	in, err := newInput(md, env, *pat, *frames)
	if err != nil {
		return err
	}

	filename := *out
	if filename == "" {
		filename = fmt.Sprintf("%s.wav", paths.UniqueFilename("i2s", ""))
	}

	aw, err := wavwriter.New(filename, in.sampleRate, env.Prefs.ChannelConfig())
	if err != nil {
		return err
	}

	dig := digest.NewSamples()
	err = in.stream(lnk, func(f i2s.Frame) error {
		if dig.Frames%realtimeBatch == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := dig.AddFrame(f); err != nil {
			return err
		}
		return aw.AddFrame(f)
	})
	if err != nil {
		return err
	}

	err = aw.EndMixing()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames written to %s: %s\n", aw.Frames(), filename, dig.Hash())
	return nil
}

func perform(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prf, env, *duration)
}
