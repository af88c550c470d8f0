package game

import "image/color"

// Biome is the stage palette picked at each reset. Ground is the centre colour
// of the radial gradient, Rim the edge colour.
type Biome struct {
	Name   string
	Ground color.RGBA
	Rim    color.RGBA
}

var biomes = []Biome{
	{Name: "Frozen Plain", Ground: color.RGBA{R: 0xbf, G: 0xdb, B: 0xfe, A: 0xff}, Rim: color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}},
	{Name: "Amethyst Forest", Ground: color.RGBA{R: 0xc4, G: 0xb5, B: 0xfd, A: 0xff}, Rim: color.RGBA{R: 0x6d, G: 0x28, B: 0xd9, A: 0xff}},
	{Name: "Twilight Desert", Ground: color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}, Rim: color.RGBA{R: 0xc2, G: 0x41, B: 0x0c, A: 0xff}},
	{Name: "Deep Basin", Ground: color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}, Rim: color.RGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}},
}

// lerp blends the ground colour toward the rim; t=0 is ground, t=1 rim.
func (b Biome) lerp(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, c uint8) uint8 {
		return uint8(float64(a) + (float64(c)-float64(a))*t)
	}
	return color.RGBA{
		R: mix(b.Ground.R, b.Rim.R),
		G: mix(b.Ground.G, b.Rim.G),
		B: mix(b.Ground.B, b.Rim.B),
		A: 0xff,
	}
}
