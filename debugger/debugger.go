package debugger

import (
	"fmt"
	"sort"
	"strings"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/grolsen/wm8960ctl/base"
	"github.com/grolsen/wm8960ctl/codec"
	"github.com/grolsen/wm8960ctl/listing"
	"github.com/grolsen/wm8960ctl/settings"
)

var lastDevice *codec.Device

var cursor int = 0
var showHelpScreen bool = false

var boxTitleStyle = termui.NewStyle(termui.ColorRed, termui.ColorBlue)

var sortedAddrs []uint8

func init() {
	var addrs []int
	for addr := range base.Registers {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)
	for _, a := range addrs {
		sortedAddrs = append(sortedAddrs, uint8(a))
	}
}

// Run owns the terminal until the user quits. Every edit is staged in
// the shadow bank; nothing reaches the bus until 'w' or 'W'.
func Run(dev *codec.Device) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	UpdateScreen(dev)
	for {
		if WaitForInput(dev) == "quit" {
			return nil
		}
	}
}

func UpdateScreen(dev *codec.Device) {
	lastDevice = dev

	if showHelpScreen {
		renderHelpScreen()
		return
	}

	updateRegisterListView(dev)
	updateFieldView(dev)
	updateDocView(dev)

	width, height := termui.TerminalDimensions()
	helpLine := widgets.NewParagraph()
	helpLine.Text =
		"[ESC/q:](fg:black) Quit [|](fg:white,bg:black) " +
			"[F1/h/?:](fg:black) Help [|](fg:white,bg:black) " +
			"[+/-:](fg:black) Volume [|](fg:white,bg:black) " +
			"[w/W:](fg:black) Write reg/all "
	helpLine.Border = false
	helpLine.TextStyle = boxTitleStyle
	helpLine.SetRect(0, height-1, width, height)

	ui.Render(helpLine)
}

/*
Returns the Event.ID string for events which is relevant for others
(quit etc.)
*/
func WaitForInput(dev *codec.Device) string {
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			if showHelpScreen {
				showHelpScreen = false
				UpdateScreen(dev)
			} else {
				return "quit"
			}
		case "j", "<Down>":
			moveCursor(1)
		case "k", "<Up>":
			moveCursor(-1)
		case "<PageDown>":
			moveCursor(8)
		case "<PageUp>":
			moveCursor(-8)
		case "+", "=":
			bumpVolume(dev, 1)
		case "-":
			bumpVolume(dev, -1)
		case "m":
			toggleFlag(dev, "INMUTE")
		case "z":
			toggleFlag(dev, "IZC")
		case "u":
			settings.LatchVolumes = !settings.LatchVolumes
			UpdateScreen(dev)
		case "w":
			writeCursorRegister(dev)
		case "W":
			for _, addr := range sortedAddrs {
				if dev.State.Dirty[addr] {
					if dev.WriteRegister(addr) != nil {
						break
					}
				}
			}
			UpdateScreen(dev)
		case "h", "<F1>", "?":
			showHelpScreen = !showHelpScreen
			UpdateScreen(dev)
		case "<Resize>":
			UpdateScreen(dev)
		}
	}

	return ""
}

func moveCursor(delta int) {
	cursor += delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(sortedAddrs) {
		cursor = len(sortedAddrs) - 1
	}
	UpdateScreen(lastDevice)
}

// bumpVolume steps the cursor register's volume field, if it has one.
func bumpVolume(dev *codec.Device, delta int) {
	addr := sortedAddrs[cursor]
	rd := base.Registers[addr]

	for _, name := range []string{"INVOL", "OUT1VOL", "DACVOL", "ADCVOL"} {
		field, ok := rd.FieldByName(name)
		if !ok {
			continue
		}
		reg := dev.State.Get(addr)
		code := int(reg.Field(field)) + delta
		if code < 0 {
			code = 0
		}
		if code > int(field.Mask>>field.Shift) {
			code = int(field.Mask >> field.Shift)
		}
		reg.SetField(field, uint16(code))
		dev.State.Dirty[addr] = true
		break
	}
	UpdateScreen(dev)
}

func toggleFlag(dev *codec.Device, name string) {
	addr := sortedAddrs[cursor]
	field, ok := base.Registers[addr].FieldByName(name)
	if !ok {
		return
	}
	reg := dev.State.Get(addr)
	reg.SetField(field, reg.Field(field)^1)
	dev.State.Dirty[addr] = true
	UpdateScreen(dev)
}

func writeCursorRegister(dev *codec.Device) {
	addr := sortedAddrs[cursor]
	if settings.LatchVolumes {
		// Set the update latch if this register has one
		for _, name := range []string{"IPVU", "OUT1VU", "DACVU", "ADCVU"} {
			if field, ok := base.Registers[addr].FieldByName(name); ok {
				dev.State.Get(addr).SetField(field, 1)
				break
			}
		}
	}
	dev.WriteRegister(addr)
	UpdateScreen(dev)
}

// Register list with a highlighted cursor line
func updateRegisterListView(dev *codec.Device) {
	width, height := termui.TerminalDimensions()
	width = width / 2
	height = height - 1

	list := widgets.NewParagraph()
	list.Title = fmt.Sprintf("  Registers (%d, * = staged)  ", len(sortedAddrs))
	list.TitleStyle = boxTitleStyle
	list.Text = generateRegisterListing(dev)
	list.SetRect(0, 0, width, height)

	ui.Render(list)
}

func generateRegisterListing(dev *codec.Device) string {
	_, screenHeight := termui.TerminalDimensions()
	var lines []string

	lineNo := 0
	if cursor > (screenHeight / 2) {
		lineNo = cursor - (screenHeight / 2)
	}

	for i := 0; i < screenHeight; i++ {
		if (lineNo + i) > (len(sortedAddrs) - 1) {
			break
		}

		addr := sortedAddrs[lineNo+i]
		codeColor := "fg:white"
		numColor := "fg:yellow"
		if (lineNo + i) == cursor { // Cursor line?
			codeColor = "fg:red,bg:white,mod:bold"
			numColor = "fg:black,bg:white,mod:bold"
		}

		marker := " "
		if dev.State.Dirty[addr] {
			marker = "*"
		}

		str := fmt.Sprintf("[0x%02X](%s)[%s 0x%03X  %-14s](%s)",
			addr, numColor,
			marker, dev.State.Get(addr).Value,
			base.RegisterName(addr), codeColor)
		lines = append(lines, str)
	}
	return strings.Join(lines, "\n")
}

// Field breakdown of the cursor register
func updateFieldView(dev *codec.Device) {
	twidth, _ := termui.TerminalDimensions()

	addr := sortedAddrs[cursor]
	rd := base.Registers[addr]
	reg := dev.State.Get(addr)

	fieldStr := fmt.Sprintf(" [Value:](fg:yellow,mod:bold) 0x%03X  [0b%09b](fg:gray)\n",
		reg.Value, reg.Value)

	for _, f := range rd.Fields {
		v := f.Extract(reg.Value)
		if f.IsFlag() {
			fieldStr += fmt.Sprintf(" [%-8s](fg:cyan) %d       [bit %d](fg:gray)\n",
				f.Name, v, f.Shift)
		} else {
			fieldStr += fmt.Sprintf(" [%-8s](fg:cyan) 0x%02X    [mask 0x%03X](fg:gray)\n",
				f.Name, v, f.Mask)
		}
	}
	if len(rd.Fields) == 0 {
		fieldStr += " [No field table for this register](fg:gray)\n"
	}

	latch := "off"
	if settings.LatchVolumes {
		latch = "on"
	}
	fieldStr += fmt.Sprintf("\n [Volume latching:](fg:cyan) %s [(toggle with 'u')](fg:gray)\n", latch)

	fieldP := widgets.NewParagraph()
	fieldP.Title = fmt.Sprintf("  %s (0x%02X)  ", rd.Name, addr)
	fieldP.TitleStyle = boxTitleStyle
	fieldP.BorderStyle = termui.NewStyle(termui.ColorGreen)
	fieldP.Text = fieldStr
	fieldP.SetRect(twidth/2-1, 0, twidth, 14)

	ui.Render(fieldP)
}

// Datasheet prose for the cursor register
func updateDocView(dev *codec.Device) {
	twidth, theight := termui.TerminalDimensions()
	theight = theight - 1

	addr := sortedAddrs[cursor]

	infoStr := "[No documentation for this register](fg:gray)"
	if doc, ok := listing.RegDocs[addr]; ok {
		infoStr = fmt.Sprintf("[%s](fg:yellow)\n[%s](fg:cyan)", doc.Short, doc.Long)
	}

	infoP := widgets.NewParagraph()
	infoP.Title = "  Info  "
	infoP.TitleStyle = boxTitleStyle
	infoP.Text = infoStr
	infoP.SetRect(twidth/2-1, 14, twidth, theight)

	versionP := widgets.NewParagraph()
	versionP.Border = false
	versionP.Text = fmt.Sprintf("[v%s](fg:blue)", settings.Version)
	versionP.SetRect(twidth-len(settings.Version)-6, theight-1,
		twidth-3, theight)

	ui.Render(infoP)
	ui.Render(versionP)
}

func renderHelpScreen() {
	width, height := termui.TerminalDimensions()
	ypos := 0

	frame := widgets.NewParagraph()
	frame.Title = "  Help / Keys  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, width, height)
	ypos += 1

	keys := widgets.NewList()
	keys.Border = false
	keys.TextStyle = termui.NewStyle(termui.ColorYellow)
	keys.SelectedRowStyle = termui.NewStyle(termui.ColorCyan)

	keys.Rows = append(keys.Rows, "Keys:")
	keys.Rows = append(keys.Rows, " h, F1, ?:          [This help-page](fg:white)")
	keys.Rows = append(keys.Rows, " ESC, q, CTRL-C:    [Quit / exit help](fg:white)")
	keys.Rows = append(keys.Rows, " j/k, Down/Up:      [Move register cursor](fg:white)")
	keys.Rows = append(keys.Rows, " PgDn/PgUp:         [Move cursor 8 registers](fg:white)")
	keys.Rows = append(keys.Rows, " +, -:              [Step the volume field of the cursor register](fg:white)")
	keys.Rows = append(keys.Rows, " m:                 [Toggle INMUTE (0 = muted)](fg:white)")
	keys.Rows = append(keys.Rows, " z:                 [Toggle zero-cross enable](fg:white)")
	keys.Rows = append(keys.Rows, " u:                 [Toggle update-latch on writes](fg:white)")
	keys.Rows = append(keys.Rows, " w:                 [Write cursor register to the chip](fg:white)")
	keys.Rows = append(keys.Rows, " W:                 [Write all staged registers](fg:white)")

	keys.SetRect(1, ypos, width-1, ypos+len(keys.Rows)+2)
	ypos += len(keys.Rows) + 1

	help := widgets.NewParagraph()
	help.Border = false
	help.Text = "[Keywords:](fg:cyan)\n" +
		" [staged](fg:yellow):   Edited in the shadow bank, not yet written.\n" +
		" [latch](fg:yellow):    IPVU/OUT1VU/DACVU bit set on writes so the\n" +
		"           chip applies the new gain.\n" +
		" [IZC](fg:yellow):      Gain changes wait for a zero crossing.\n"
	help.SetRect(1, ypos, width-1, height-1)

	ui.Render(frame)
	ui.Render(keys)
	ui.Render(help)
}
