package main

// Autostart is the platform-specific start-on-login registration.
type Autostart interface {
	// IsEnabled returns whether start-on-login is currently configured
	IsEnabled() bool

	// Enable sets up the application to start on login
	Enable() error

	// Disable removes the start-on-login configuration
	Disable() error
}
