// Package desktop renders reminders with the host's own notification,
// dialog and speech tools, or into the structured log on headless hosts.
package desktop
