/*
Package overlay provides retained debug and configuration widgets for
real-time loops: labels, readouts, buttons, switches, text and numeric
fields, sliders, dropdowns and draggable windows.

# Overview

Widgets are created once and live in groups. Every tick the application
builds an InputSnapshot, hands it to the GUI, and then renders. Widgets
keep their own state between ticks and expose per-tick edges such as
Pressed, Moved or Activated that the application polls after dispatch.

# Quick Start

	clock := overlay.NewClock(overlay.NewSystemClock())
	tracker := overlay.NewInputTracker(clock)
	ui := overlay.New(overlay.WithFontSize(18))

	hud := ui.NewGroup(1)
	fps := overlay.NewDataLabel(hud, overlay.Vec2{X: 8, Y: 8}, theme.Data, "FPS")
	quit := overlay.NewButton(hud, overlay.Vec2{X: 8, Y: 40}, theme.Danger, "Exit")
	ui.Activate(hud)

	for running {
	    clock.Update()
	    in := tracker.Update(device)
	    ui.HandleInput(in)
	    if quit.Pressed() || in.Quit() {
	        running = false
	    }
	    fps.SetValue(1 / in.Delta())

	    ui.Render(canvas)
	}

# Groups, layers and focus

A Group is activated, deactivated and focused as a unit. Input goes to
every active group unless something holds focus, in which case only the
focused items see it. Items are visited in descending layer order, so a
lower layer is handled last and painted on top. Anything holding focus
reports layer -1.

Focus is requested by widgets themselves: an open Dropdown, a
FloatingWindow that was clicked, a TextInput being edited. Releasing
focus with a snapshot replays that snapshot once, so the click that
ended an edit still reaches the widget it landed on.

# Registers

A Register is a named value cell owned by the GUI. Widgets constructed
with WithRegister share their value through it: two sliders with the
same register move together, and a Label bound to a register shows
whatever the application stores there.

# Backends

The package draws through the Canvas interface. DrawList batches
vertices for the OpenGL renderer in backend/opengl; backend/ebiten draws
straight onto an ebiten image. Both backends also provide a Device that
feeds InputTracker.
*/
package overlay
