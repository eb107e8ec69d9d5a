package platohook

import "encoding/json"

// Outbound discriminator values fixed by the Plato hook protocol.
const (
	typeNotify  = "notify"
	typeSetWifi = "setWifi"
)

// WifiState describes the device's Wi-Fi radio.
type WifiState int

const (
	// WifiDisabled means the radio is off and no network connections can be made.
	WifiDisabled WifiState = iota
	// WifiEnabled means the radio is on.
	WifiEnabled
)

func (s WifiState) String() string {
	if s == WifiEnabled {
		return "enabled"
	}
	return "disabled"
}

// notification asks the reader to display a message on the device.
type notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// wifiToggle asks the reader to switch the device's Wi-Fi radio.
type wifiToggle struct {
	Type   string `json:"type"`
	Enable bool   `json:"enable"`
}

// NetworkEvent reports a change in the device's network status, for example
// {"type":"network","status":"up"}. The protocol fixes the field names but
// not their values.
type NetworkEvent struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// decodeNetworkEvent reports whether line holds a JSON object carrying both
// network event fields as strings. Anything else, including an empty object
// or a bare newline, is not an event.
func decodeNetworkEvent(line []byte) (NetworkEvent, bool) {
	var probe struct {
		Type   *string `json:"type"`
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return NetworkEvent{}, false
	}
	if probe.Type == nil || probe.Status == nil {
		return NetworkEvent{}, false
	}
	return NetworkEvent{Type: *probe.Type, Status: *probe.Status}, true
}
