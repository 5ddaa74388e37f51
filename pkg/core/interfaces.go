package core

// Logger interface for raytracer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
