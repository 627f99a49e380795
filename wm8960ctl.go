package main

import (
	"flag"
	"fmt"
	"syscall"

	"github.com/grolsen/wm8960ctl/bus"
	"github.com/grolsen/wm8960ctl/codec"
	"github.com/grolsen/wm8960ctl/debugger"
	"github.com/grolsen/wm8960ctl/listing"
	"github.com/grolsen/wm8960ctl/reader"
	"github.com/grolsen/wm8960ctl/settings"
	"github.com/grolsen/wm8960ctl/shell"
	"github.com/grolsen/wm8960ctl/writer"
)

func parseCommandLineParameters() {
	flag.IntVar(&settings.BusNumber, "bus", settings.BusNumber,
		"I2C bus number (-1 = discover and probe)")
	flag.IntVar(&settings.DeviceAddr, "dev", settings.DeviceAddr,
		"Device address (0x1a, or 0x1b with CSB high)")
	flag.StringVar(&settings.RegisterFile, "regs", settings.RegisterFile,
		"Register definition file (txt)")
	flag.StringVar(&settings.Sequence, "seq", settings.Sequence,
		"Run a named write sequence (see -shell 'seqs')")
	flag.BoolVar(&settings.PrintMap, "map", settings.PrintMap,
		"Print the register map and exit")
	flag.BoolVar(&settings.ScanBus, "scan", settings.ScanBus,
		"Scan the bus i2cdetect-style and exit")
	flag.BoolVar(&settings.Shell, "shell", settings.Shell,
		"Interactive shell")
	flag.BoolVar(&settings.Debugger, "debugger", settings.Debugger,
		"Fullscreen register editor")
	flag.BoolVar(&settings.DryRun, "dry-run", settings.DryRun,
		"Print frames instead of writing to the bus")
	flag.BoolVar(&settings.LatchVolumes, "latch", settings.LatchVolumes,
		"Set the volume-update bit (IPVU & friends) on volume writes")
	flag.StringVar(&settings.ToneWav, "tone", settings.ToneWav,
		"Write a test tone to this WAV file")
	flag.Float64Var(&settings.ToneFrequency, "tone-freq", settings.ToneFrequency,
		"Test tone frequency (Hz)")
	flag.Float64Var(&settings.ToneSeconds, "tone-secs", settings.ToneSeconds,
		"Test tone length (seconds)")
	flag.BoolVar(&settings.TonePlayback, "tone-play", settings.TonePlayback,
		"Also play the test tone on the default output")
	flag.BoolVar(&settings.PrintDebug, "debug", settings.PrintDebug,
		"Print extra debug info")
	flag.Parse()
}

func main() {
	fmt.Printf("* WM8960 register tool v%s\n", settings.Version)
	parseCommandLineParameters()

	if settings.PrintMap {
		listing.PrintRegisterMap()
		return
	}

	if settings.ScanBus {
		scanBuses()
		return
	}

	if settings.ToneWav != "" || settings.TonePlayback {
		makeTestTone()
		if !settings.Shell && !settings.Debugger && settings.Sequence == "" {
			return
		}
	}

	conn := openConn()
	defer conn.Close()
	dev := codec.NewDevice(conn)

	var entries []reader.RegEntry
	if settings.RegisterFile != "" {
		var err error
		entries, err = reader.ReadRegisterFile(settings.RegisterFile)
		if err != nil {
			fmt.Printf("Reading register file failed: %s\n", err)
			syscall.Exit(-1)
		}
		fmt.Printf("* Loaded %d registers from '%s'\n",
			len(entries), settings.RegisterFile)
		for _, e := range entries {
			dev.State.Set(e.Addr, e.Value)
		}
	}

	if settings.Sequence != "" {
		err := dev.RunSequence(settings.Sequence, func(s codec.SeqStep) {
			fmt.Printf("  0x%02x <- 0x%03x  ;; %s\n", s.Addr, s.Value, s.Comment)
		})
		if err != nil {
			fmt.Printf("Sequence failed: %s\n", err)
			syscall.Exit(-1)
		}
	}

	if settings.Debugger {
		if err := debugger.Run(dev); err != nil {
			fmt.Printf("Debugger failed: %s\n", err)
			syscall.Exit(-1)
		}
		return
	}

	if settings.Shell {
		shell.Run(dev, entries)
		return
	}

	if settings.Sequence == "" && settings.RegisterFile == "" {
		fmt.Println("Nothing to do. Try -map, -scan, -shell, -debugger or -seq.")
	}
}

func openConn() bus.Conn {
	if settings.DryRun {
		fmt.Println("* Dry-run: frames are printed, the bus is not touched")
		return &bus.Recorder{Echo: true}
	}

	busNumber := settings.BusNumber
	addr := uint8(settings.DeviceAddr)

	if busNumber < 0 {
		n, a, err := bus.FindDevice()
		if err != nil {
			fmt.Printf("Bus discovery failed: %s\n", err)
			fmt.Println("Specify -bus (and maybe -dev), or use -dry-run.")
			syscall.Exit(-1)
		}
		busNumber, addr = n, a
		fmt.Printf("* Found WM8960 on /dev/i2c-%d @ 0x%02x\n", busNumber, addr)
	} else if !bus.Probe(busNumber, addr) {
		fmt.Printf("No response on /dev/i2c-%d @ 0x%02x, continuing anyway\n",
			busNumber, addr)
	}

	conn, err := bus.Open(busNumber, addr)
	if err != nil {
		fmt.Printf("Opening bus failed: %s\n", err)
		syscall.Exit(-1)
	}
	return conn
}

func scanBuses() {
	buses := bus.DiscoverBuses()
	if settings.BusNumber >= 0 {
		buses = []int{settings.BusNumber}
	}
	if len(buses) == 0 {
		fmt.Println("No /dev/i2c-* adapters found.")
		syscall.Exit(-1)
	}
	for _, n := range buses {
		bus.Scan(n)
	}
}

func makeTestTone() {
	samples := writer.MakeTone(settings.ToneFrequency, settings.ToneSeconds,
		settings.SampleRate)

	if settings.ToneWav != "" {
		format := writer.ToneFormat(settings.SampleRate)
		if err := writer.SaveAsWAV(settings.ToneWav, format, samples); err != nil {
			syscall.Exit(-1)
		}
	}

	if settings.TonePlayback {
		fmt.Printf("* Playing %.0f Hz for %.1fs\n",
			settings.ToneFrequency, settings.ToneSeconds)
		if err := writer.PlayTone(samples, settings.SampleRate); err != nil {
			fmt.Printf("Playback failed: %s\n", err)
		}
	}
}
