// Package demo holds the stock scenes used by the gallery and preview
// commands. Each scene is a single draw pass against an already cleared
// screen, mirroring how a device firmware frame loop would call the widget
// API.
package demo

import "roundel/screen"

// Scene is a named draw pass.
type Scene struct {
	Name string
	Draw func(s *screen.Screen)
}

// Scenes returns the stock scene list in display order.
func Scenes() []Scene {
	return []Scene{
		{"temperature", func(s *screen.Screen) {
			s.Title("Temperature")
			s.Value("21.4", screen.ValueStyle{Unit: "°C"})
			s.Subtitle("HTS221 sensor")
		}},
		{"battery", func(s *screen.Screen) {
			s.Title("Battery")
			s.Value("62%", screen.ValueStyle{YOffset: -15})
			s.Bar(62, 100, -12, screen.Green)
			s.Subtitle("3842 mV", "BQ27441")
		}},
		{"comfort", func(s *screen.Screen) {
			s.Title("Comfort")
			cx, cy := s.Center()
			s.Line(cx, cy-32, cx, cy+32, screen.Dark)
			s.Value("21", screen.ValueStyle{Unit: "°C", Label: "TEMP", At: screen.West})
			s.Value("47", screen.ValueStyle{Unit: "%", Label: "HUM", At: screen.East})
			s.SubtitleColor(screen.Green, "COMFY", "HTS221")
		}},
		{"gauge", func(s *screen.Screen) {
			s.Gauge(342, 0, 500, "mm")
			s.Title("Distance")
			s.Subtitle("VL53L1X ToF")
		}},
		{"graph", func(s *screen.Screen) {
			s.Title("Light (lux)")
			s.Graph([]int{180, 240, 310, 560, 820, 760, 540, 420, 300, 280}, 0, 1000)
			s.Subtitle("APDS9960", "20s window")
		}},
		{"menu", func(s *screen.Screen) {
			items := []string{"Sensors", "Display", "Radio", "Sound", "About", "Reboot"}
			s.Title("Settings")
			s.Menu(items, 2)
		}},
		{"compass", func(s *screen.Screen) {
			s.Compass(90)
		}},
		{"watch", func(s *screen.Screen) {
			s.Watch(10, 8, 42)
		}},
	}
}

// FaceScenes returns one scene per named expression, compact with a mood
// caption like the reactive smiley tutorial.
func FaceScenes() []Scene {
	var scenes []Scene
	for _, name := range screen.FaceNames() {
		name := name
		scenes = append(scenes, Scene{
			Name: "smiley_" + name,
			Draw: func(s *screen.Screen) {
				s.Title("Mood")
				s.Face(name, screen.Yellow, true)
				s.Subtitle(name, "dist:120mm")
			},
		})
	}
	return scenes
}
