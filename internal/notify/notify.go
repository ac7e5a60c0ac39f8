package notify

import (
	"fmt"
	"runtime"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = "org.freedesktop.Notifications.Notify"
)

// Send posts a transient desktop notification on the session bus.
// Only supported on Linux desktops; callers treat failure as advisory.
func Send(summary, body string) error {
	if runtime.GOOS != "linux" {
		return nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	// Signature per the Desktop Notifications spec: app_name, replaces_id,
	// app_icon, summary, body, actions, hints, expire_timeout.
	obj := conn.Object(busName, dbus.ObjectPath(objectPath))
	call := obj.Call(method, 0,
		"autoenv",
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(5000),
	)
	if call.Err != nil {
		return fmt.Errorf("notify call: %w", call.Err)
	}
	return nil
}
