// Package scene provides the host side of scene switching: the Manager that
// loads named scenes for the state controller, and the Drawer capability
// through which the active state renders.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Drawer is implemented by states that render something.
//
// The game loop calls Draw on the controller's current state once per frame
// if it implements Drawer; states without it leave the screen cleared.
type Drawer interface {
	// Draw renders the state to the screen.
	Draw(screen *ebiten.Image)
}
