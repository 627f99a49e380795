package base

import "fmt"

// Field is a named sub-range of a register's 9 bits. Single-bit flags
// have a one-bit mask and their shift is the bit position.
type Field struct {
	Name  string
	Mask  uint16
	Shift uint
}

// Extract returns the field's value from a full register value.
func (f Field) Extract(regValue uint16) uint16 {
	return (regValue & f.Mask) >> f.Shift
}

// Insert places 'value' into the field, replacing the field's previous
// content. Bits which do not fit the mask are discarded.
func (f Field) Insert(regValue uint16, value uint16) uint16 {
	return (regValue &^ f.Mask) | ((value << f.Shift) & f.Mask)
}

// IsFlag reports whether the field is a single-bit toggle.
func (f Field) IsFlag() bool {
	return f.Mask != 0 && f.Mask&(f.Mask-1) == 0 && f.Mask>>f.Shift == 1
}

type RegisterDef struct {
	Addr    uint8
	Name    string
	Default uint16
	Fields  []Field
}

// FieldByName returns the named field, if the register defines it.
func (rd RegisterDef) FieldByName(name string) (Field, bool) {
	for _, f := range rd.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var inVolFields = []Field{
	{"IPVU", IN_VOL_IPVU, 8},
	{"INMUTE", IN_VOL_INMUTE, 7},
	{"IZC", IN_VOL_IZC, 6},
	{"INVOL", IN_VOL_INVOL_MASK, IN_VOL_INVOL_SHIFT},
}

var out1VolFields = []Field{
	{"OUT1VU", OUT1_VU, 8},
	{"O1ZC", OUT1_ZC, 7},
	{"OUT1VOL", OUT1_VOL_MASK, 0},
}

var dacVolFields = []Field{
	{"DACVU", DAC_VU, 8},
	{"DACVOL", DAC_VOL_MASK, 0},
}

var adcVolFields = []Field{
	{"ADCVU", ADC_VU, 8},
	{"ADCVOL", ADC_VOL_MASK, 0},
}

var outMixFields = []Field{
	{"DAC2OUT", MIX_DAC2OUT, 8},
	{"IN2OUT", MIX_IN2OUT, 7},
	{"IN2OUTVOL", MIX_IN2OUT_MASK, 4},
}

// Registers describes every register the tool knows about. Registers
// without a field list are still writable by raw value.
var Registers = map[uint8]RegisterDef{
	REG_LEFT_IN_VOL:  {REG_LEFT_IN_VOL, "LEFT_IN_VOL", 0x017, inVolFields},
	REG_RIGHT_IN_VOL: {REG_RIGHT_IN_VOL, "RIGHT_IN_VOL", 0x017, inVolFields},
	REG_LOUT1_VOL:    {REG_LOUT1_VOL, "LOUT1_VOL", 0x000, out1VolFields},
	REG_ROUT1_VOL:    {REG_ROUT1_VOL, "ROUT1_VOL", 0x000, out1VolFields},
	REG_CLOCKING1:    {REG_CLOCKING1, "CLOCKING1", 0x000, nil},
	REG_DAC_CTL1: {REG_DAC_CTL1, "DAC_CTL1", 0x008, []Field{
		{"DACMU", DAC_CTL1_DACMU, 3},
		{"DEEMPH", DAC_CTL1_DEEMPH, 1},
		{"ADCHPD", DAC_CTL1_ADCHPD, 0},
	}},
	REG_DAC_CTL2: {REG_DAC_CTL2, "DAC_CTL2", 0x000, nil},
	REG_AUDIO_IFACE1: {REG_AUDIO_IFACE1, "AUDIO_IFACE1", 0x00A, []Field{
		{"MS", IFACE1_MS, 6},
		{"LRP", IFACE1_LRP, 4},
		{"WL", IFACE1_WL_MASK, IFACE1_WL_SHIFT},
		{"FORMAT", IFACE1_FORMAT_MASK, 0},
	}},
	REG_CLOCKING2:     {REG_CLOCKING2, "CLOCKING2", 0x000, nil},
	REG_AUDIO_IFACE2:  {REG_AUDIO_IFACE2, "AUDIO_IFACE2", 0x000, nil},
	REG_LEFT_DAC_VOL:  {REG_LEFT_DAC_VOL, "LEFT_DAC_VOL", 0x0FF, dacVolFields},
	REG_RIGHT_DAC_VOL: {REG_RIGHT_DAC_VOL, "RIGHT_DAC_VOL", 0x0FF, dacVolFields},
	REG_RESET:         {REG_RESET, "RESET", 0x000, nil},
	REG_3D_CTL:        {REG_3D_CTL, "3D_CTL", 0x000, nil},
	REG_ALC1:          {REG_ALC1, "ALC1", 0x000, nil},
	REG_ALC2:          {REG_ALC2, "ALC2", 0x000, nil},
	REG_ALC3:          {REG_ALC3, "ALC3", 0x000, nil},
	REG_NOISE_GATE:    {REG_NOISE_GATE, "NOISE_GATE", 0x000, nil},
	REG_LEFT_ADC_VOL:  {REG_LEFT_ADC_VOL, "LEFT_ADC_VOL", 0x0C3, adcVolFields},
	REG_RIGHT_ADC_VOL: {REG_RIGHT_ADC_VOL, "RIGHT_ADC_VOL", 0x0C3, adcVolFields},
	REG_ADD_CTL1:      {REG_ADD_CTL1, "ADD_CTL1", 0x000, nil},
	REG_ADD_CTL2:      {REG_ADD_CTL2, "ADD_CTL2", 0x000, nil},
	REG_PWR_MGMT1: {REG_PWR_MGMT1, "PWR_MGMT1", 0x000, []Field{
		{"VMIDSEL", PWR1_VMID_MASK, PWR1_VMID_SHIFT},
		{"VREF", PWR1_VREF, 6},
		{"AINL", PWR1_AINL, 5},
		{"AINR", PWR1_AINR, 4},
		{"ADCL", PWR1_ADCL, 3},
		{"ADCR", PWR1_ADCR, 2},
		{"MICB", PWR1_MICB, 1},
		{"DIGENB", PWR1_DIGENB, 0},
	}},
	REG_PWR_MGMT2: {REG_PWR_MGMT2, "PWR_MGMT2", 0x000, []Field{
		{"DACL", PWR2_DACL, 8},
		{"DACR", PWR2_DACR, 7},
		{"LOUT1", PWR2_LOUT1, 6},
		{"ROUT1", PWR2_ROUT1, 5},
		{"SPKL", PWR2_SPKL, 4},
		{"SPKR", PWR2_SPKR, 3},
		{"OUT3", PWR2_OUT3, 1},
		{"PLL_EN", PWR2_PLL_EN, 0},
	}},
	REG_ADD_CTL3:      {REG_ADD_CTL3, "ADD_CTL3", 0x000, nil},
	REG_ANTI_POP1:     {REG_ANTI_POP1, "ANTI_POP1", 0x000, nil},
	REG_ANTI_POP2:     {REG_ANTI_POP2, "ANTI_POP2", 0x000, nil},
	REG_ADCL_PATH:     {REG_ADCL_PATH, "ADCL_PATH", 0x000, nil},
	REG_ADCR_PATH:     {REG_ADCR_PATH, "ADCR_PATH", 0x000, nil},
	REG_LEFT_OUT_MIX:  {REG_LEFT_OUT_MIX, "LEFT_OUT_MIX", 0x000, outMixFields},
	REG_RIGHT_OUT_MIX: {REG_RIGHT_OUT_MIX, "RIGHT_OUT_MIX", 0x000, outMixFields},
	REG_MONO_OUT_MIX1: {REG_MONO_OUT_MIX1, "MONO_OUT_MIX1", 0x000, nil},
	REG_MONO_OUT_MIX2: {REG_MONO_OUT_MIX2, "MONO_OUT_MIX2", 0x000, nil},
	REG_LOUT2_VOL:     {REG_LOUT2_VOL, "LOUT2_VOL", 0x000, nil},
	REG_ROUT2_VOL:     {REG_ROUT2_VOL, "ROUT2_VOL", 0x000, nil},
	REG_MONO_OUT_VOL:  {REG_MONO_OUT_VOL, "MONO_OUT_VOL", 0x000, nil},
	REG_IN_BOOST_MIX1: {REG_IN_BOOST_MIX1, "IN_BOOST_MIX1", 0x000, nil},
	REG_IN_BOOST_MIX2: {REG_IN_BOOST_MIX2, "IN_BOOST_MIX2", 0x000, nil},
	REG_BYPASS1:       {REG_BYPASS1, "BYPASS1", 0x000, nil},
	REG_BYPASS2:       {REG_BYPASS2, "BYPASS2", 0x000, nil},
	REG_PWR_MGMT3: {REG_PWR_MGMT3, "PWR_MGMT3", 0x000, []Field{
		{"LMIC", PWR3_LMIC, 5},
		{"RMIC", PWR3_RMIC, 4},
		{"LOMIX", PWR3_LOMIX, 3},
		{"ROMIX", PWR3_ROMIX, 2},
	}},
	REG_ADD_CTL4:    {REG_ADD_CTL4, "ADD_CTL4", 0x000, nil},
	REG_CLASSD_CTL1: {REG_CLASSD_CTL1, "CLASSD_CTL1", 0x000, nil},
	REG_CLASSD_CTL3: {REG_CLASSD_CTL3, "CLASSD_CTL3", 0x000, nil},
	REG_PLL_N:       {REG_PLL_N, "PLL_N", 0x000, nil},
	REG_PLL_K1:      {REG_PLL_K1, "PLL_K1", 0x000, nil},
	REG_PLL_K2:      {REG_PLL_K2, "PLL_K2", 0x000, nil},
	REG_PLL_K3:      {REG_PLL_K3, "PLL_K3", 0x000, nil},
}

// DefaultValue returns the power-on value for a register, zero for
// addresses outside the table.
func DefaultValue(addr uint8) uint16 {
	if rd, ok := Registers[addr]; ok {
		return rd.Default
	}
	return 0
}

// RegisterName returns the table name for an address, or a REG_XX
// placeholder for unnamed ones.
func RegisterName(addr uint8) string {
	if rd, ok := Registers[addr]; ok {
		return rd.Name
	}
	return fmt.Sprintf("REG_%02X", addr)
}
