// Package platohook implements the stdio event protocol between a Plato
// fetch hook and the Plato reader process.
//
// Outgoing messages are compact JSON objects written to the sink with no
// trailing delimiter; incoming network events arrive one JSON object per
// line. The host application is https://github.com/baskerville/plato.
package platohook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Channel is a duplex endpoint for the hook protocol. It owns its sink and
// source exclusively for its lifetime and is not safe for concurrent use
// without external synchronization.
type Channel struct {
	w io.Writer
	r *bufio.Reader
}

// New binds a channel to an arbitrary sink and source. Tests substitute
// in-memory buffers here; hook programs normally use Stdio.
func New(w io.Writer, r io.Reader) *Channel {
	return &Channel{w: w, r: bufio.NewReader(r)}
}

// Stdio binds a channel to the process standard streams, the wiring Plato
// gives a fetch hook.
func Stdio() *Channel {
	return New(os.Stdout, os.Stdin)
}

// Notify asks the reader to display message on the device. No
// acknowledgment is awaited.
func (c *Channel) Notify(message string) error {
	return c.writeJSON("notification", notification{Type: typeNotify, Message: message})
}

// SetWifi asks the reader to turn the device's Wi-Fi radio on or off.
func (c *Channel) SetWifi(state WifiState) error {
	return c.writeJSON("wifi toggle", wifiToggle{Type: typeSetWifi, Enable: state == WifiEnabled})
}

// WaitForNetwork blocks until the reader announces a network status change
// or the source fails. Lines that do not decode as a network event are
// discarded and reading continues, with no bound on how many lines are
// skipped and no timeout. A closed source is an error, never a zero event.
//
// Callers needing bounded waiting must compose it externally, for example
// by running this call on a goroutine that is abandoned on context expiry.
func (c *Channel) WaitForNetwork() (NetworkEvent, error) {
	for {
		line, err := c.r.ReadBytes('\n')
		if ev, ok := decodeNetworkEvent(line); ok {
			return ev, nil
		}
		if err != nil {
			return NetworkEvent{}, fmt.Errorf("read network event: %w", err)
		}
	}
}

// writeJSON marshals v compactly and writes the raw bytes to the sink. No
// trailing newline is appended: the host does not require one, and adding
// it would change the emitted bytes.
func (c *Channel) writeJSON(what string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", what, err)
	}
	if _, err := c.w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	return nil
}
