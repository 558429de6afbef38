package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/thermoshade/internal/scale"
	"github.com/thatsimonsguy/thermoshade/internal/session"
)

func runScript(t *testing.T, sess *session.Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, sess)
	require.NoError(t, err)
	return out.String()
}

func newSession(t *testing.T, v float64, s scale.Scale) *session.Session {
	t.Helper()
	sess, err := session.New(v, s)
	require.NoError(t, err)
	return sess
}

func TestRun_InitialRender(t *testing.T) {
	sess := newSession(t, 212, scale.Fahrenheit)
	out := runScript(t, sess, "quit")

	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "373.15")
	assert.Contains(t, out, "671.67")
	assert.Contains(t, out, "warmth 1.00")
}

func TestRun_SetValue(t *testing.T) {
	sess := newSession(t, 0, scale.Celsius)
	out := runScript(t, sess, "value 10", "quit")

	assert.Equal(t, 10.0, sess.Value())
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "warmth 0.50")
}

func TestRun_BareNumber(t *testing.T) {
	sess := newSession(t, 0, scale.Celsius)
	runScript(t, sess, "-40")

	assert.Equal(t, -40.0, sess.Value())
}

func TestRun_RejectsNonFinite(t *testing.T) {
	sess := newSession(t, 25, scale.Celsius)
	out := runScript(t, sess, "value NaN", "inf", "value abc", "quit")

	assert.Equal(t, 25.0, sess.Value())
	assert.Contains(t, out, "must be finite")
	assert.Contains(t, out, `"abc" is not a number`)
}

func TestRun_ScaleSwitchKeepsNumber(t *testing.T) {
	sess := newSession(t, 100, scale.Celsius)
	runScript(t, sess, "scale f", "quit")

	assert.Equal(t, scale.Fahrenheit, sess.Scale())
	assert.Equal(t, 100.0, sess.Value())
}

func TestRun_UnknownInput(t *testing.T) {
	sess := newSession(t, 0, scale.Kelvin)
	out := runScript(t, sess, "scale reaumur", "frobnicate", "value", "quit")

	assert.Equal(t, scale.Kelvin, sess.Scale())
	assert.Contains(t, out, "unknown temperature scale")
	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, "usage: value <number>")
}

func TestRun_DomainAndHelp(t *testing.T) {
	sess := newSession(t, 0, scale.Rankine)
	out := runScript(t, sess, "domain", "help", "exit")

	assert.Contains(t, out, "0.00 .. 671.67")
	assert.Contains(t, out, "scale <name>")
}

func TestRun_EOFEndsLoop(t *testing.T) {
	sess := newSession(t, 0, scale.Celsius)
	var out bytes.Buffer
	err := Run(strings.NewReader("value 5"), &out, sess)

	require.NoError(t, err)
	assert.Equal(t, 5.0, sess.Value())
}

func TestRun_Nudge(t *testing.T) {
	sess := newSession(t, 95, scale.Celsius)
	out := runScript(t, sess, "nudge 2.5", "nudge 10", "nudge x", "nudge", "quit")

	assert.Equal(t, 100.0, sess.Value(), "nudging stops at the top of the slider")
	assert.Contains(t, out, `"x" is not a number`)
	assert.Contains(t, out, "usage: nudge <delta>")
}

func TestRun_DomainFlagsOutOfRange(t *testing.T) {
	sess := newSession(t, 150, scale.Celsius)
	out := runScript(t, sess, "domain", "quit")
	assert.Contains(t, out, "150.00 °C is outside the slider range")

	sess = newSession(t, 50, scale.Celsius)
	out = runScript(t, sess, "domain", "quit")
	assert.NotContains(t, out, "outside the slider range")
}

func TestRun_ScaleBySymbol(t *testing.T) {
	sess := newSession(t, 0, scale.Celsius)
	runScript(t, sess, "scale °F")
	assert.Equal(t, scale.Fahrenheit, sess.Scale())

	runScript(t, sess, "scale K")
	assert.Equal(t, scale.Kelvin, sess.Scale())
}
