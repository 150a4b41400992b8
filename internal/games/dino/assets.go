package dino

import (
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/scene/world"
)

// Player assets and animations.
const (
	AssetDinoIdle    = "dino-idle"
	AssetDinoRun     = "dino-run"
	AssetDinoDown    = "dino-down"
	AssetDinoDownRun = "dino-down-run"
	AssetDinoHurt    = "dino-hurt"

	AnimDinoRun     = "dino-run"
	AnimDinoDownRun = "dino-down-run"

	dinoFrameRate = 10
)

var dinoStanding = []string{
	"    ▄██▀█▄",
	"    ██████",
	"    ███▀▀ ",
	"▄  ▄████▄ ",
	"▀███████  ",
	"  ▀███▀   ",
}

func dinoLegs(frame int) []string {
	art := append([]string(nil), dinoStanding...)
	switch frame {
	case 1:
		return append(art, "   █  ▀▀  ")
	case 2:
		return append(art, "   ▀▀  █  ")
	default:
		return append(art, "   █   █  ")
	}
}

var dinoDucking = []string{
	"▄        ▄███▀█▄",
	"▀██████████████▀",
	"  ▀████████▀▀▀  ",
}

func dinoDuckLegs(frame int) []string {
	art := append([]string(nil), dinoDucking...)
	if frame == 1 {
		return append(art, "   ▀▀  █        ")
	}
	return append(art, "   █  ▀▀        ")
}

var cactus = [][]string{
	1: {
		" ▐▌ ",
		"▌▐▌▐",
		"▀▜▛▀",
		" ▐▌ ",
	},
	2: {
		" ▐▌  ▐▌ ",
		"▌▐▌▐▌▐▌▐",
		"▀▜▛▀▀▜▛▀",
		" ▐▌  ▐▌ ",
	},
	3: {
		" ▐▌  ▐▌  ▐▌ ",
		"▌▐▌▐▌▐▌▐▌▐▌▐",
		"▀▜▛▀▀▜▛▀▀▜▛▀",
		" ▐▌  ▐▌  ▐▌ ",
	},
	4: {
		"  ▐█▌  ",
		"▐▌▐█▌  ",
		"▐▌▐█▌▐▌",
		"▝▀▜█▛▀▘",
		"  ▐█▌  ",
	},
	5: {
		"  ▐█▌    ▐█▌  ",
		"▐▌▐█▌  ▐▌▐█▌  ",
		"▐▌▐█▌▐▌▐▌▐█▌▐▌",
		"▝▀▜█▛▀▘▝▀▜█▛▀▘",
		"  ▐█▌    ▐█▌  ",
	},
	6: {
		"  ▐█▌  ▐▌ ▐█▌    ▐█▌  ",
		"▐▌▐█▌▐▌▐▌ ▐█▌  ▐▌▐█▌  ",
		"▐▌▐█▌▐▌▐▌▐▐█▌▐▌▐▌▐█▌▐▌",
		"▝▀▜█▛▀▘▀▀▀▜█▛▀▘▝▀▜█▛▀▘",
		"  ▐█▌    ▐█▌     ▐█▌  ",
	},
}

// Assets returns the catalog for the runner. Sizes are in world units of
// the 1000x340 playfield.
func Assets() world.Catalog {
	c := world.Catalog{
		AssetDinoIdle: {Width: 88, Height: 94, Frames: [][]string{dinoLegs(0)}, Color: core.ColorBrightWhite},
		AssetDinoRun: {Width: 88, Height: 94, Frames: [][]string{dinoLegs(1), dinoLegs(2)},
			Color: core.ColorBrightWhite},
		AssetDinoDown: {Width: 118, Height: 58, Frames: [][]string{dinoDuckLegs(0)}, Color: core.ColorBrightWhite},
		AssetDinoDownRun: {Width: 118, Height: 58, Frames: [][]string{dinoDuckLegs(0), dinoDuckLegs(1)},
			Color: core.ColorBrightWhite},
		AssetDinoHurt: {Width: 88, Height: 94, Frames: [][]string{{
			"    ▄██▀█▄",
			"    ██X███",
			"    ██▄▄▄ ",
			"▄  ▄████▄ ",
			"▀███████  ",
			"  ▀███▀   ",
			"   █   █  ",
		}}, Color: core.ColorBrightRed},

		runner.AssetGround: {Width: 88, Height: 26, Tiled: true, Color: core.ColorYellow, Frames: [][]string{{
			"▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁",
			"  .    ,      ˙    .       ,   .   ˙    ",
		}}},
		runner.AssetCloud: {Width: 92, Height: 27, Color: core.ColorGray, Frames: [][]string{{
			"  ▁▂▃▂▁ ",
			"▁▂▃▃▃▃▃▂",
		}}},
		runner.AssetBird: {Width: 92, Height: 77, Color: core.ColorOrange, Frames: [][]string{
			{
				"  ▄       ",
				"▄███▄▄▄▄▄▄",
				"   ▀██▀▀  ",
				"    ▀     ",
			},
			{
				"          ",
				"▄██▄▄▄▄▄▄▄",
				"   ▀████▀ ",
				"     ▀▀   ",
			},
		}},
		runner.AssetGameOver: {Width: 381, Height: 21, Color: core.ColorBrightRed, Frames: [][]string{{
			"G A M E   O V E R",
		}}},
		runner.AssetRestart: {Width: 72, Height: 64, Color: core.ColorBrightWhite, Frames: [][]string{{
			"╭────╮",
			"│ ⟲  │",
			"╰────╯",
		}}},
	}

	sizes := [][2]float64{1: {34, 70}, 2: {68, 70}, 3: {102, 70}, 4: {50, 100}, 5: {100, 100}, 6: {150, 100}}
	for n := 1; n < len(cactus); n++ {
		c[runner.ObstacleAsset(n)] = world.Asset{
			Width:  sizes[n][0],
			Height: sizes[n][1],
			Frames: [][]string{cactus[n]},
			Color:  core.ColorGreen,
		}
	}
	return c
}
