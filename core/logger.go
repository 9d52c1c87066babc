package core

// Logger is the application-wide logging contract. Implementations may ship
// records to an error tracker in addition to printing them.
//
// args may include an error, a map of extra fields and an Identity; how they
// are rendered is up to the implementation.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
