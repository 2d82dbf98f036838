// Package sim provides a terminal simulator window for developing
// sparklines interactively without embedded hardware.
//
// A Window paints any image.Image onto the terminal using half-block
// cells, two pixels per character cell, through a pluggable ScreenDriver.
// Color themes map pixel colors onto display-like palettes (OLED blue,
// LCD green) so a demo looks close to the target device.
//
//	win, err := sim.New(sim.WithTheme(sim.ThemeOledBlue))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	for {
//		select {
//		case <-win.Quit():
//			return
//		default:
//		}
//		// ... render into a sparkline.Pixmap ...
//		win.Update(pm)
//	}
//
// The ScreenDriver interface mirrors the subset of tcell.Screen the
// window needs, so tests can substitute a recording stub and the real
// terminal is only touched by the default driver.
package sim
