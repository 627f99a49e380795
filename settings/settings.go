package settings

var Version = "0.1"

// I2C bus number. -1 means "discover and probe".
var BusNumber = -1

// 7-bit device address. 0x1a on most boards, 0x1b when CSB is pulled high.
var DeviceAddr = 0x1a

// Optional register definition file (txt)
var RegisterFile = ""

// Named write sequence to run at startup
var Sequence = ""

// Print the register map and exit
var PrintMap = false

// Scan the bus i2cdetect-style and exit
var ScanBus = false

// Drop into the interactive shell
var Shell = false

// Start the fullscreen register editor
var Debugger = false

// Print frames instead of touching /dev/i2c-*
var DryRun = false

// Set the update-latch bit (IPVU & friends) on volume writes
var LatchVolumes = true

// Test tone
var ToneWav = ""
var ToneFrequency = 440.0
var ToneSeconds = 2.0
var TonePlayback = false

// Current samplerate for the test tone
var SampleRate = 44100.0

// Print extra debug info
var PrintDebug = false
