// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tui hosts a controller.Page in a Bubble Tea terminal program.

The model translates key presses into control dispatches and renders the
page state. All page mutation happens inside Update; the only work done
off the loop is the network call, which runs in a tea.Cmd and comes back
as a message that settles the request.

# Keys

	d, w, m   generate the daily, weekly or monthly query
	c         copy the result to the clipboard
	o         open the result as a search on the image board
	?         toggle the help view
	q         quit

# Deep Links

When the initial fragment names a period, that period is generated as
soon as the program starts.
*/
package tui
