// Package viewer is the quiz core's side channel to the 3D anatomical model
// renderer. The renderer itself is a separate subsystem; the core only opens
// and closes it and hands over part visibility toggles.
package viewer

// PartToggles maps named model parts to their visibility.
type PartToggles map[string]bool

type Viewer interface {
	Open(modelID string, parts PartToggles)
	Close()
}

// Noop satisfies Viewer for sessions without a model renderer attached.
type Noop struct{}

func (Noop) Open(string, PartToggles) {}
func (Noop) Close()                   {}
