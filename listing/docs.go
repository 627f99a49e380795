package listing

type RegDoc struct {
	Short string
	Long  string
}

// RegDocs carries datasheet prose for the registers the tool edits
// most. Registers without an entry still show up in listings with
// their field table only.
var RegDocs = map[uint8]RegDoc{
	0x00: {Short: "Left input PGA volume",
		Long: "Analogue gain for the left line/mic input. INVOL runs in " +
			"0.75 dB steps from -17.25 dB (0x00) through 0 dB (0x17) to " +
			"+30 dB (0x3F). A write only reaches the PGA once IPVU is set; " +
			"INMUTE=0 keeps the input muted, IZC delays gain changes to the " +
			"next zero crossing.",
	},
	0x01: {Short: "Right input PGA volume",
		Long: "Right-channel twin of LEFT_IN_VOL, same coding and the same " +
			"IPVU latch. Writing one channel without IPVU and the other with " +
			"it steps both gains in the same instant.",
	},
	0x02: {Short: "LOUT1 (headphone left) volume",
		Long: "1 dB steps, 0x79 = 0 dB, up to +6 dB at 0x7F. Codes below " +
			"0x30 mute the output. OUT1VU latches as IPVU does for the inputs.",
	},
	0x03: {Short: "ROUT1 (headphone right) volume",
		Long: "Right-channel twin of LOUT1_VOL.",
	},
	0x04: {Short: "Clocking (1)",
		Long: "SYSCLK source select (MCLK or PLL) and the SYSCLK/DAC/ADC " +
			"dividers. All zero runs SYSCLK straight from MCLK.",
	},
	0x05: {Short: "ADC & DAC control (1)",
		Long: "DACMU soft-mutes the DAC (set at power-on, clear it to get " +
			"sound), DEEMPH selects de-emphasis, ADCHPD disables the ADC " +
			"high-pass filter.",
	},
	0x07: {Short: "Audio interface (1)",
		Long: "Digital audio format (I2S, left/right justified, DSP), word " +
			"length, LRCLK polarity and master/slave select.",
	},
	0x0A: {Short: "Left DAC digital volume",
		Long: "0.5 dB steps, 0xFF = 0 dB, 0x00 = digital mute. Latched by " +
			"DACVU.",
	},
	0x0B: {Short: "Right DAC digital volume",
		Long: "Right-channel twin of LEFT_DAC_VOL.",
	},
	0x0F: {Short: "Reset",
		Long: "Writing any value resets every register to its power-on " +
			"default. Reads back nothing, like the rest of the chip.",
	},
	0x15: {Short: "Left ADC digital volume",
		Long: "0.5 dB steps, 0xC3 = 0 dB. Latched by ADCVU.",
	},
	0x16: {Short: "Right ADC digital volume",
		Long: "Right-channel twin of LEFT_ADC_VOL.",
	},
	0x19: {Short: "Power management (1)",
		Long: "VREF and the VMID divider string (50k for playback/record, " +
			"250k standby, 5k fast start), plus input PGA, ADC and mic bias " +
			"enables. Bring VREF/VMID up first, everything else hangs off " +
			"them.",
	},
	0x1A: {Short: "Power management (2)",
		Long: "DAC, headphone, speaker and OUT3 enables plus the PLL.",
	},
	0x22: {Short: "Left output mixer",
		Long: "Routes the left DAC and/or the left line input into the left " +
			"output mixer, with a -21..0 dB attenuator on the bypass path.",
	},
	0x25: {Short: "Right output mixer",
		Long: "Right-channel twin of LEFT_OUT_MIX.",
	},
	0x2F: {Short: "Power management (3)",
		Long: "Output mixer and mic PGA enables. The mixers must be powered " +
			"here before anything routed in register 0x22/0x25 is audible.",
	},
	0x34: {Short: "PLL N",
		Long: "Integer part of the PLL ratio, plus prescale and the " +
			"fractional-mode enable.",
	},
}
