// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	perrors "github.com/zhubert/simshare/internal/errors"
	"github.com/zhubert/simshare/internal/logger"
	"github.com/zhubert/simshare/internal/share"
)

// AppName is the title used for every notification.
const AppName = "simshare"

// notifyFunc matches beeep.Notify so tests can swap it out.
type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn notifyFunc) {
	notify = fn
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	if err := notify(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return perrors.NotificationFailed(err)
	}
	return nil
}

// SendNotice delivers a share or invite notice as a desktop notification.
func SendNotice(n share.Notice) error {
	return Send(AppName, n.Summary())
}
