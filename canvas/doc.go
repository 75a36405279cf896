// Package canvas is the immediate-mode drawing backend for tilekit widgets.
//
// A Canvas wraps a tcell.Screen. Region is a clipped rectangular view of it;
// every drawing call is relative to the region origin and silently clipped to
// its bounds. Regions are small values and nest via Sub.
//
//	c := canvas.New(screen)
//	r := c.RegionOf(rect)          // float layout rect -> cell region
//	inner := r.Card("title", canvas.LineRounded, theme.Border)
//	inner.Text(0, 0, "hello", theme.Text)
//	c.Show()
package canvas
