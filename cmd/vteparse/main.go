// Command vteparse is a line-oriented diagnostic tool that drives the
// low-level govte.Parser/Performer state machine directly and logs every
// callback it fires. Useful for inspecting the raw dispatch stream a given
// byte sequence produces, independent of the Output/AnsiSequence view
// ansiseq.Parser builds on top of the same state machine. Adapted from the
// teacher's examples/parselog, with the import path updated for this
// module's rename and the performer renamed to reflect its diagnostic
// role rather than the teacher's "log" framing.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vteterm/engine"
)

// tracePerformer prints every Performer callback it receives, one line
// per callback, so a user can see exactly how govte.Parser tokenises
// raw input.
type tracePerformer struct {
	govte.NoopPerformer
}

func (t *tracePerformer) Print(c rune) {
	fmt.Printf("[print] %q\n", c)
}

func (t *tracePerformer) Execute(b byte) {
	fmt.Printf("[execute] 0x%02x%s\n", b, controlName(b))
}

func controlName(b byte) string {
	switch b {
	case 0x08:
		return " (BS)"
	case 0x09:
		return " (HT)"
	case 0x0A:
		return " (LF)"
	case 0x0D:
		return " (CR)"
	case 0x1B:
		return " (ESC)"
	default:
		return ""
	}
}

func (t *tracePerformer) Hook(params *govte.Params, intermediates []byte, ignore bool, action rune) {
	fmt.Printf("[hook] params=%v, intermediates=%v, ignore=%v, action=%q\n",
		params, intermediates, ignore, action)
}

func (t *tracePerformer) Put(b byte) {
	fmt.Printf("[put] 0x%02x\n", b)
}

func (t *tracePerformer) Unhook() {
	fmt.Println("[unhook]")
}

func (t *tracePerformer) OscDispatch(params [][]byte, bellTerminated bool) {
	fmt.Printf("[osc_dispatch] params=%v, bell_terminated=%v\n", params, bellTerminated)
}

func (t *tracePerformer) CsiDispatch(params *govte.Params, intermediates []byte, ignore bool, action rune) {
	fmt.Printf("[csi_dispatch] params=%v, intermediates=%v, ignore=%v, action=%q\n",
		params, intermediates, ignore, action)
}

func (t *tracePerformer) EscDispatch(intermediates []byte, ignore bool, b byte) {
	fmt.Printf("[esc_dispatch] intermediates=%v, ignore=%v, byte=0x%02x\n",
		intermediates, ignore, b)
}

func main() {
	fmt.Println("=== vteparse: byte-level parser trace ===")
	fmt.Println("Type or pipe input to see parsed actions")
	fmt.Println("Press Ctrl+D (Unix) or Ctrl+Z (Windows) to exit")
	fmt.Println()

	parser := govte.NewParser()
	performer := &tracePerformer{}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := scanner.Bytes()
		fmt.Printf("Input: %q\n", input)
		parser.Advance(performer, input)
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}
}
