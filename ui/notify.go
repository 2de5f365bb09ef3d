// Package ui provides the interactive terminal user interface.
// This file contains the desktop notification system for connection events.
package ui

import (
	"github.com/godbus/dbus/v5"

	"github.com/yllada/wirewarden/common"
)

// Urgency levels defined by the freedesktop notification spec.
const (
	urgencyLow      byte = 0
	urgencyCritical byte = 2
)

// DBusNotifier sends desktop notifications over the session bus
// (org.freedesktop.Notifications). All delivery is best-effort: a
// missing bus or a rejected call is logged and otherwise ignored.
// It implements common.Notifier.
type DBusNotifier struct {
	conn *dbus.Conn
}

var _ common.Notifier = (*DBusNotifier)(nil)

// NewDBusNotifier connects to the session bus. When enabled is false,
// or no session bus is reachable, the notifier silently drops every
// notification.
func NewDBusNotifier(enabled bool) *DBusNotifier {
	n := &DBusNotifier{}
	if !enabled {
		return n
	}

	conn, err := dbus.SessionBusPrivate()
	if err == nil {
		if err = conn.Auth(nil); err == nil {
			err = conn.Hello()
		}
		if err != nil {
			_ = conn.Close()
			conn = nil
		}
	}
	if err != nil {
		common.LogWarn("desktop notifications unavailable: %v", err)
		return n
	}
	n.conn = conn
	return n
}

// Close releases the bus connection.
func (n *DBusNotifier) Close() {
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}

func (n *DBusNotifier) notify(summary, body, icon string, urgency byte) {
	if n.conn == nil {
		return
	}

	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		common.AppName,
		uint32(0), // no notification to replace
		icon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)},
		int32(5000),
	)
	if call.Err != nil {
		common.LogWarn("failed to send notification: %v", call.Err)
	}
}

// NotifyConnected announces that an interface came up.
func (n *DBusNotifier) NotifyConnected(name string) {
	n.notify("VPN Connected", name+" is up", "network-vpn", urgencyLow)
}

// NotifyDisconnected announces that an interface went down.
func (n *DBusNotifier) NotifyDisconnected(name string) {
	n.notify("VPN Disconnected", name+" is down", "network-vpn-disconnected", urgencyLow)
}

// NotifyError announces a failed transition with its diagnostic.
func (n *DBusNotifier) NotifyError(name, diagnostic string) {
	n.notify("Connection Error", name+": "+diagnostic, "network-vpn-error", urgencyCritical)
}
