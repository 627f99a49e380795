package base

// The WM8960 register file: 56 registers of 9 bits each, addresses
// 0x00..0x37. The control interface is write-only; the chip cannot be
// read back over plain I2C.

// Register addresses
const (
	REG_LEFT_IN_VOL   = 0x00 //!< Left input PGA volume
	REG_RIGHT_IN_VOL  = 0x01 //!< Right input PGA volume
	REG_LOUT1_VOL     = 0x02 //!< LOUT1 (headphone left) volume
	REG_ROUT1_VOL     = 0x03 //!< ROUT1 (headphone right) volume
	REG_CLOCKING1     = 0x04 //!< Clocking (1): SYSCLK source and dividers
	REG_DAC_CTL1      = 0x05 //!< ADC & DAC control (1): soft-mute, de-emphasis
	REG_DAC_CTL2      = 0x06 //!< ADC & DAC control (2)
	REG_AUDIO_IFACE1  = 0x07 //!< Audio interface (1): format, word length
	REG_CLOCKING2     = 0x08 //!< Clocking (2)
	REG_AUDIO_IFACE2  = 0x09 //!< Audio interface (2)
	REG_LEFT_DAC_VOL  = 0x0A //!< Left DAC digital volume
	REG_RIGHT_DAC_VOL = 0x0B //!< Right DAC digital volume
	REG_RESET         = 0x0F //!< Writing any value resets the chip
	REG_3D_CTL        = 0x10 //!< 3D stereo enhancement
	REG_ALC1          = 0x11 //!< Automatic level control (1)
	REG_ALC2          = 0x12 //!< Automatic level control (2)
	REG_ALC3          = 0x13 //!< Automatic level control (3)
	REG_NOISE_GATE    = 0x14 //!< Noise gate
	REG_LEFT_ADC_VOL  = 0x15 //!< Left ADC digital volume
	REG_RIGHT_ADC_VOL = 0x16 //!< Right ADC digital volume
	REG_ADD_CTL1      = 0x17 //!< Additional control (1)
	REG_ADD_CTL2      = 0x18 //!< Additional control (2)
	REG_PWR_MGMT1     = 0x19 //!< Power management (1): VREF, VMID, input stages
	REG_PWR_MGMT2     = 0x1A //!< Power management (2): DACs, outputs, PLL
	REG_ADD_CTL3      = 0x1B //!< Additional control (3)
	REG_ANTI_POP1     = 0x1C //!< Anti-pop (1)
	REG_ANTI_POP2     = 0x1D //!< Anti-pop (2)
	REG_ADCL_PATH     = 0x20 //!< Left ADC signal path (input boost/select)
	REG_ADCR_PATH     = 0x21 //!< Right ADC signal path
	REG_LEFT_OUT_MIX  = 0x22 //!< Left output mixer routing
	REG_RIGHT_OUT_MIX = 0x25 //!< Right output mixer routing
	REG_MONO_OUT_MIX1 = 0x26 //!< Mono output mixer (1)
	REG_MONO_OUT_MIX2 = 0x27 //!< Mono output mixer (2)
	REG_LOUT2_VOL     = 0x28 //!< LOUT2 (speaker left) volume
	REG_ROUT2_VOL     = 0x29 //!< ROUT2 (speaker right) volume
	REG_MONO_OUT_VOL  = 0x2A //!< MONOOUT volume
	REG_IN_BOOST_MIX1 = 0x2B //!< Input boost mixer (1)
	REG_IN_BOOST_MIX2 = 0x2C //!< Input boost mixer (2)
	REG_BYPASS1       = 0x2D //!< Bypass (1)
	REG_BYPASS2       = 0x2E //!< Bypass (2)
	REG_PWR_MGMT3     = 0x2F //!< Power management (3): mixers, mic stages
	REG_ADD_CTL4      = 0x30 //!< Additional control (4)
	REG_CLASSD_CTL1   = 0x31 //!< Class D speaker control (1)
	REG_CLASSD_CTL3   = 0x33 //!< Class D speaker control (3)
	REG_PLL_N         = 0x34 //!< PLL N
	REG_PLL_K1        = 0x35 //!< PLL K (1)
	REG_PLL_K2        = 0x36 //!< PLL K (2)
	REG_PLL_K3        = 0x37 //!< PLL K (3)
)

const NUM_REGISTERS = 0x38

// All registers are 9 bits wide
const REG_VALUE_MASK = 0x1FF

// Left/right input PGA volume (0x00/0x01). Default 0x017 = 0 dB,
// unmuted. A new volume code only takes effect once a write with IPVU
// set latches it into the PGA.
const (
	IN_VOL_IPVU        = 1 << 8 //!< Input PGA volume update (write-only latch)
	IN_VOL_INMUTE      = 1 << 7 //!< Input PGA analogue mute
	IN_VOL_IZC         = 1 << 6 //!< Input PGA zero-cross enable
	IN_VOL_INVOL_MASK  = 0x3F   //!< bits 5:0, volume code
	IN_VOL_INVOL_SHIFT = 0
	IN_VOL_INVOL_0DB   = 0x17 //!< 0 dB reference code
	IN_VOL_INVOL_MAX   = 0x3F //!< +30 dB, 0.75 dB per step
)

// LOUT1/ROUT1 headphone volume (0x02/0x03). 1 dB per step, codes at or
// below 0x2F give analogue mute.
const (
	OUT1_VU       = 1 << 8 //!< Headphone volume update latch
	OUT1_ZC       = 1 << 7 //!< Zero-cross enable
	OUT1_VOL_MASK = 0x7F   //!< bits 6:0, volume code
	OUT1_VOL_0DB  = 0x79
	OUT1_VOL_MIN  = 0x30 //!< -73 dB; below this the output is muted
	OUT1_VOL_MAX  = 0x7F //!< +6 dB
)

// Left/right DAC digital volume (0x0A/0x0B). 0.5 dB per step, 0x00 is
// digital mute. Default 0x0FF = 0 dB.
const (
	DAC_VU       = 1 << 8 //!< DAC volume update latch
	DAC_VOL_MASK = 0xFF
	DAC_VOL_0DB  = 0xFF
)

// Left/right ADC digital volume (0x15/0x16). 0.5 dB per step, default
// 0x0C3 = 0 dB.
const (
	ADC_VU       = 1 << 8
	ADC_VOL_MASK = 0xFF
	ADC_VOL_0DB  = 0xC3
)

// ADC & DAC control (1) (0x05)
const (
	DAC_CTL1_ADCHPD = 1 << 0 //!< ADC high-pass filter disable
	DAC_CTL1_DEEMPH = 0x006  //!< De-emphasis select, bits 2:1
	DAC_CTL1_DACMU  = 1 << 3 //!< DAC digital soft mute (set at power-on)
)

// Audio interface (1) (0x07)
const (
	IFACE1_FORMAT_MASK = 0x003 //!< 00=right-just, 01=left-just, 10=I2S, 11=DSP
	IFACE1_FORMAT_I2S  = 0x002
	IFACE1_WL_MASK     = 0x00C //!< Word length, bits 3:2
	IFACE1_WL_SHIFT    = 2
	IFACE1_WL_16BIT    = 0x000
	IFACE1_WL_24BIT    = 0x008
	IFACE1_WL_32BIT    = 0x00C
	IFACE1_LRP         = 1 << 4 //!< LRCLK polarity invert
	IFACE1_MS          = 1 << 6 //!< Master mode
)

// Power management (1) (0x19)
const (
	PWR1_DIGENB     = 1 << 0 //!< Disable digital core clock
	PWR1_MICB       = 1 << 1 //!< Microphone bias
	PWR1_ADCR       = 1 << 2
	PWR1_ADCL       = 1 << 3
	PWR1_AINR       = 1 << 4 //!< Right input PGA + boost
	PWR1_AINL       = 1 << 5 //!< Left input PGA + boost
	PWR1_VREF       = 1 << 6 //!< Reference voltage
	PWR1_VMID_MASK  = 0x180  //!< VMID divider select, bits 8:7
	PWR1_VMID_SHIFT = 7
	PWR1_VMID_50K   = 0x080 //!< Playback / record
	PWR1_VMID_250K  = 0x100 //!< Low-power standby
	PWR1_VMID_5K    = 0x180 //!< Fast start-up
)

// Power management (2) (0x1A)
const (
	PWR2_PLL_EN = 1 << 0
	PWR2_OUT3   = 1 << 1
	PWR2_SPKR   = 1 << 3
	PWR2_SPKL   = 1 << 4
	PWR2_ROUT1  = 1 << 5
	PWR2_LOUT1  = 1 << 6
	PWR2_DACR   = 1 << 7
	PWR2_DACL   = 1 << 8
)

// Power management (3) (0x2F)
const (
	PWR3_ROMIX = 1 << 2 //!< Right output mixer
	PWR3_LOMIX = 1 << 3 //!< Left output mixer
	PWR3_RMIC  = 1 << 4
	PWR3_LMIC  = 1 << 5
)

// Output mixer routing (0x22/0x25)
const (
	MIX_DAC2OUT     = 1 << 8 //!< DAC to output mixer
	MIX_IN2OUT      = 1 << 7 //!< Line input to output mixer
	MIX_IN2OUT_MASK = 0x070  //!< Line input to mixer volume, bits 6:4
)
