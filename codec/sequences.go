package codec

import (
	"sort"

	"github.com/grolsen/wm8960ctl/base"
)

type SeqStep struct {
	Addr    uint8
	Value   uint16
	Comment string
}

// Sequences are canned register write lists. "hp_i2s_init" brings the
// chip from reset to I2S slave playback on the headphone outputs.
var Sequences = map[string][]SeqStep{
	"hp_i2s_init": {
		{base.REG_RESET, 0x000, "Reset"},
		{base.REG_PWR_MGMT1, base.PWR1_VREF | base.PWR1_VMID_50K,
			"Power1: VREF up + VMID=50k"},
		{base.REG_PWR_MGMT2, base.PWR2_DACL | base.PWR2_DACR |
			base.PWR2_LOUT1 | base.PWR2_ROUT1,
			"Power2: DACL/DACR + LOUT1/ROUT1 on"},
		{base.REG_PWR_MGMT3, base.PWR3_LOMIX | base.PWR3_ROMIX,
			"Power3: enable L/R output mixers"},
		{base.REG_LEFT_OUT_MIX, base.MIX_DAC2OUT,
			"Route left DAC to left out mixer"},
		{base.REG_RIGHT_OUT_MIX, base.MIX_DAC2OUT,
			"Route right DAC to right out mixer"},
		{base.REG_LOUT1_VOL, base.OUT1_VU | base.OUT1_VOL_0DB,
			"LOUT1 volume 0 dB, update"},
		{base.REG_ROUT1_VOL, base.OUT1_VU | base.OUT1_VOL_0DB,
			"ROUT1 volume 0 dB, update"},
		{base.REG_LEFT_DAC_VOL, base.DAC_VU | base.DAC_VOL_0DB,
			"Left DAC volume 0 dB"},
		{base.REG_RIGHT_DAC_VOL, base.DAC_VU | base.DAC_VOL_0DB,
			"Right DAC volume 0 dB"},
		{base.REG_DAC_CTL1, 0x000, "Unmute DAC digital soft mute"},
		{base.REG_AUDIO_IFACE1, base.IFACE1_FORMAT_I2S | base.IFACE1_WL_32BIT,
			"Audio IF: I2S slave, 32-bit"},
		{base.REG_CLOCKING1, 0x000, "CLK1: SYSCLK from MCLK"},
	},
	"line_in_unmute": {
		{base.REG_PWR_MGMT1, base.PWR1_VREF | base.PWR1_VMID_50K |
			base.PWR1_AINL | base.PWR1_AINR | base.PWR1_ADCL | base.PWR1_ADCR,
			"Power1: VREF/VMID + input PGAs + ADCs"},
		{base.REG_LEFT_IN_VOL,
			base.IN_VOL_INMUTE | base.IN_VOL_INVOL_0DB,
			"Left PGA 0 dB, unmuted, no update yet"},
		{base.REG_RIGHT_IN_VOL,
			base.IN_VOL_IPVU | base.IN_VOL_INMUTE | base.IN_VOL_INVOL_0DB,
			"Right PGA 0 dB, unmuted, latch both"},
	},
}

// SequenceNames returns the available sequence names, sorted.
func SequenceNames() []string {
	var names []string
	for name := range Sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
