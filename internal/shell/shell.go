package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/thermoshade/internal/datadog"
	"github.com/thatsimonsguy/thermoshade/internal/display"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
	"github.com/thatsimonsguy/thermoshade/internal/session"
)

const helpText = `commands:
  value <v>      set the temperature (a bare number works too)
  nudge <delta>  move the value like the slider, kept inside its range
  scale <name>   read the current number in another scale (c, f, k, r or °C, °F, K, °R)
  show           print conversions and gradient
  domain         print the slider range for the current scale
  help           this text
  quit           leave
`

// Run drives sess from line-oriented input until quit or EOF. Bad input is
// reported on out and never ends the loop.
func Run(in io.Reader, out io.Writer, sess *session.Session) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, render(sess))
	for {
		fmt.Fprintf(out, "%s> ", sess.Scale().Symbol())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprint(out, helpText)
		case "show":
			fmt.Fprint(out, render(sess))
		case "domain":
			fmt.Fprint(out, display.RenderDomain(sess.Scale(), sess.Domain()))
			if !sess.InDomain() {
				fmt.Fprintf(out, "%s %s is outside the slider range\n",
					display.FormatValue(sess.Value()), sess.Scale().Symbol())
			}
		case "nudge", "n":
			if len(args) != 1 {
				fmt.Fprint(out, display.RenderError(fmt.Errorf("usage: nudge <delta>")))
				continue
			}
			nudge(out, sess, args[0])
		case "value", "v":
			if len(args) != 1 {
				fmt.Fprint(out, display.RenderError(fmt.Errorf("usage: value <number>")))
				continue
			}
			setValue(out, sess, args[0])
		case "scale", "s":
			if len(args) != 1 {
				fmt.Fprint(out, display.RenderError(fmt.Errorf("usage: scale <name>")))
				continue
			}
			setScale(out, sess, args[0])
		default:
			if _, err := strconv.ParseFloat(cmd, 64); err == nil {
				setValue(out, sess, cmd)
				continue
			}
			fmt.Fprint(out, display.RenderError(fmt.Errorf("unknown command %q, try help", cmd)))
		}
	}
}

func setValue(out io.Writer, sess *session.Session, raw string) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprint(out, display.RenderError(fmt.Errorf("%q is not a number", raw)))
		return
	}
	if err := sess.SetValue(v); err != nil {
		fmt.Fprint(out, display.RenderError(err))
		return
	}
	fmt.Fprint(out, render(sess))
}

func nudge(out io.Writer, sess *session.Session, raw string) {
	delta, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprint(out, display.RenderError(fmt.Errorf("%q is not a number", raw)))
		return
	}
	if err := sess.Nudge(delta); err != nil {
		fmt.Fprint(out, display.RenderError(err))
		return
	}
	fmt.Fprint(out, render(sess))
}

func setScale(out io.Writer, sess *session.Session, raw string) {
	s, err := scale.Parse(raw)
	if err != nil {
		fmt.Fprint(out, display.RenderError(err))
		return
	}
	if err := sess.SetScale(s); err != nil {
		fmt.Fprint(out, display.RenderError(err))
		return
	}
	log.Info().Str("scale", s.String()).Float64("value", sess.Value()).Msg("Session scale changed")
	fmt.Fprint(out, render(sess))
}

func render(sess *session.Session) string {
	values, err := sess.DisplayValues()
	if err != nil {
		return display.RenderError(err)
	}
	g, err := sess.Gradient()
	if err != nil {
		return display.RenderError(err)
	}
	ratio, _ := sess.Ratio()

	tag := "scale:" + sess.Scale().String()
	datadog.Count("conversions", 1, tag)
	datadog.Gauge("warmth.ratio", ratio, tag)

	return display.RenderConversions(values, sess.Scale()) + display.RenderGradient(g, ratio)
}
